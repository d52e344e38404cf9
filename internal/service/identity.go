package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/auth"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/repository"
)

// MinPasswordLength matches the storage-level minimum of the account schema.
const MinPasswordLength = 6

// IdentityService registers accounts, verifies credentials and issues
// bearer tokens. Verification is pure computation; nothing about a token is
// persisted server-side.
type IdentityService struct {
	accounts      repository.AccountRepository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewIdentityService(accounts repository.AccountRepository, jwtSecret []byte, tokenValidity time.Duration) *IdentityService {
	return &IdentityService{
		accounts:      accounts,
		jwtSecret:     jwtSecret,
		tokenValidity: tokenValidity,
	}
}

// Register creates an account with a bcrypt-hashed password and returns it
// with a fresh token. A duplicate email surfaces as ErrEmailTaken; the
// unique index on email is the authoritative guard, so concurrent signups
// cannot slip through.
func (s *IdentityService) Register(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.accounts.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return account, token, nil
}

// Authenticate verifies credentials and issues a token. Unknown email and
// wrong password return the identical ErrUnauthorized value so the two
// cases cannot be told apart.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, "", ErrUnauthorized
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return account, token, nil
}

// VerifyToken returns the account ID a valid token was issued for.
// Malformed, tampered and expired tokens are all the same ErrUnauthorized
// externally; callers never special-case expiry.
func (s *IdentityService) VerifyToken(token string) (string, error) {
	accountID, err := auth.AccountIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", ErrUnauthorized
	}
	return accountID, nil
}

// GetAccount loads an account by ID, for callers that must confirm a token
// still refers to a live account.
func (s *IdentityService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// NormalizeEmail lowercases and trims an email so lookups and the unique
// index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
