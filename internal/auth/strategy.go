package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careercompass/backend/internal/config"
	"github.com/careercompass/backend/internal/models"
)

// ErrInvalidToken covers malformed, expired, revoked and wrong-type tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Strategy issues and verifies bearer tokens. The jwt and session
// strategies are interchangeable behind it.
type Strategy interface {
	// Issue creates an access/refresh pair for userID.
	Issue(ctx context.Context, userID string) (models.TokenPair, error)
	// Authenticate returns the user id an access token was issued to.
	Authenticate(ctx context.Context, access string) (string, error)
	// Refresh exchanges a live refresh token for a new access token.
	Refresh(ctx context.Context, refresh string) (string, error)
	// Revoke invalidates a refresh token.
	Revoke(ctx context.Context, refresh string) error
}

// NewStrategy builds the strategy named by cfg.AuthStrategy.
func NewStrategy(cfg *config.Config, tokens *TokenStore) (Strategy, error) {
	switch cfg.AuthStrategy {
	case config.StrategyJWT:
		return NewJWTStrategy([]byte(cfg.JWTSecret), tokens, cfg.AccessTokenTTL, cfg.RefreshTokenTTL), nil
	case config.StrategySession:
		return NewSessionStrategy(tokens, cfg.AccessTokenTTL, cfg.RefreshTokenTTL), nil
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.AuthStrategy)
	}
}

type lifetimes struct {
	access  time.Duration
	refresh time.Duration
}
