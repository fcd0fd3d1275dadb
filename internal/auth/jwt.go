package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/careercompass/backend/internal/models"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTStrategy issues HS256 tokens. Access tokens are stateless; a refresh
// token is only honoured while its jti is present in the token store.
type JWTStrategy struct {
	secret []byte
	tokens *TokenStore
	ttl    lifetimes
	now    func() time.Time
}

func NewJWTStrategy(secret []byte, tokens *TokenStore, accessTTL, refreshTTL time.Duration) *JWTStrategy {
	return &JWTStrategy{
		secret: secret,
		tokens: tokens,
		ttl:    lifetimes{access: accessTTL, refresh: refreshTTL},
		now:    time.Now,
	}
}

func (s *JWTStrategy) sign(userID, tokenType string, ttl time.Duration) (string, string, error) {
	now := s.now()
	jti := uuid.NewString()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, jti, nil
}

func (s *JWTStrategy) parse(raw, tokenType string) (*claims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || c.TokenType != tokenType || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &c, nil
}

func (s *JWTStrategy) Issue(ctx context.Context, userID string) (models.TokenPair, error) {
	access, _, err := s.sign(userID, tokenTypeAccess, s.ttl.access)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, jti, err := s.sign(userID, tokenTypeRefresh, s.ttl.refresh)
	if err != nil {
		return models.TokenPair{}, err
	}
	if err := s.tokens.Put(ctx, kindRefresh, jti, userID, s.ttl.refresh); err != nil {
		return models.TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *JWTStrategy) Authenticate(_ context.Context, access string) (string, error) {
	c, err := s.parse(access, tokenTypeAccess)
	if err != nil {
		return "", err
	}
	return c.Subject, nil
}

func (s *JWTStrategy) Refresh(ctx context.Context, refresh string) (string, error) {
	c, err := s.parse(refresh, tokenTypeRefresh)
	if err != nil {
		return "", err
	}

	owner, err := s.tokens.Get(ctx, kindRefresh, c.ID)
	if err != nil {
		return "", fmt.Errorf("lookup refresh token: %w", err)
	}
	if owner != c.Subject {
		return "", ErrInvalidToken
	}

	access, _, err := s.sign(c.Subject, tokenTypeAccess, s.ttl.access)
	return access, err
}

func (s *JWTStrategy) Revoke(ctx context.Context, refresh string) error {
	c, err := s.parse(refresh, tokenTypeRefresh)
	if err != nil {
		// already unusable
		return nil
	}
	return s.tokens.Delete(ctx, kindRefresh, c.ID)
}
