package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
)

// IdentityAPI is the slice of the identity service the auth handler needs.
type IdentityAPI interface {
	Register(ctx context.Context, email, password string) (*domain.Account, string, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, string, error)
}

type AuthHandler struct {
	identity IdentityAPI
	timeout  time.Duration
}

func NewAuthHandler(identity IdentityAPI, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		timeout:  timeout,
	}
}

type CredentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Account *domain.Account `json:"account"`
	Token   string          `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, token, err := h.identity.Register(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{Account: account, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, token, err := h.identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{Account: account, Token: token})
}
