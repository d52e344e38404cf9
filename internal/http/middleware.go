package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// TokenVerifier is the slice of the identity service the middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}

// Authenticator validates the bearer token on protected routes and puts the
// account ID into the request context. A valid token whose account no
// longer exists is rejected the same way as an invalid one.
func Authenticator(identity TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			accountID, err := identity.VerifyToken(token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			if _, err := identity.GetAccount(r.Context(), accountID); err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accountIDFromContext(ctx context.Context) string {
	if accountID, ok := ctx.Value(accountIDKey).(string); ok {
		return accountID
	}
	return ""
}

// ContextWithAccountID exists for tests that exercise handlers without the
// middleware.
func ContextWithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}
