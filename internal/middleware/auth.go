package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/auth"
	"github.com/careercompass/backend/internal/httpx"
)

type contextKey struct{}

var userIDKey contextKey

// Authenticator resolves an access token to a user id. auth.Strategy
// implements it; invalid tokens must be reported as auth.ErrInvalidToken.
type Authenticator interface {
	Authenticate(ctx context.Context, access string) (string, error)
}

const msgNoToken = "Authentication credentials were not provided."

// RequireAuth is middleware that validates the bearer token and injects the
// user id into the request context.
func RequireAuth(authn Authenticator, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, msgNoToken)
				return
			}

			userID, err := authn.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrInvalidToken) {
				httpx.WriteError(w, http.StatusUnauthorized, "Given token not valid or expired.")
				return
			}
			if err != nil {
				log.Error("token lookup failed", zap.Error(err))
				httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user id, or "" outside RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
