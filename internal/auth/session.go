package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careercompass/backend/internal/models"
)

// SessionStrategy issues opaque random tokens whose only meaning is the
// Redis entry they point at.
type SessionStrategy struct {
	tokens *TokenStore
	ttl    lifetimes
}

func NewSessionStrategy(tokens *TokenStore, accessTTL, refreshTTL time.Duration) *SessionStrategy {
	return &SessionStrategy{tokens: tokens, ttl: lifetimes{access: accessTTL, refresh: refreshTTL}}
}

func (s *SessionStrategy) newSession(ctx context.Context, userID string) (string, error) {
	sid := uuid.NewString()
	if err := s.tokens.Put(ctx, kindSession, sid, userID, s.ttl.access); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

func (s *SessionStrategy) Issue(ctx context.Context, userID string) (models.TokenPair, error) {
	access, err := s.newSession(ctx, userID)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh := uuid.NewString()
	if err := s.tokens.Put(ctx, kindRefresh, refresh, userID, s.ttl.refresh); err != nil {
		return models.TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *SessionStrategy) Authenticate(ctx context.Context, access string) (string, error) {
	return s.lookup(ctx, kindSession, access)
}

func (s *SessionStrategy) Refresh(ctx context.Context, refresh string) (string, error) {
	userID, err := s.lookup(ctx, kindRefresh, refresh)
	if err != nil {
		return "", err
	}
	return s.newSession(ctx, userID)
}

func (s *SessionStrategy) Revoke(ctx context.Context, refresh string) error {
	return s.tokens.Delete(ctx, kindRefresh, refresh)
}

func (s *SessionStrategy) lookup(ctx context.Context, kind, id string) (string, error) {
	if id == "" {
		return "", ErrInvalidToken
	}
	userID, err := s.tokens.Get(ctx, kind, id)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", kind, err)
	}
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
