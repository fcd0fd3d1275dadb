package chat

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/gemini"
	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
)

// Store defines the interface for chat record persistence.
type Store interface {
	Insert(ctx context.Context, rec *models.ChatRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.ChatRecord, error)
}

// Responder produces a reply or fails.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// Service answers chat messages and records every exchange.
type Service struct {
	store    Store
	ai       Responder
	fallback FallbackResponder
	log      *zap.Logger
}

func NewService(store Store, ai Responder, log *zap.Logger) *Service {
	return &Service{store: store, ai: ai, log: log}
}

// Send answers message for userID and persists exactly one record. A blank
// message is rejected before anything is called or written. AI failures are
// never returned: the fallback reply is used instead.
func (s *Service) Send(ctx context.Context, userID, message string) (*models.ChatRecord, error) {
	if strings.TrimSpace(message) == "" {
		return nil, httpx.Validationf("Message field is required.")
	}

	rec := &models.ChatRecord{
		UserID:   userID,
		Message:  message,
		Response: s.respond(ctx, message),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) respond(ctx context.Context, message string) string {
	reply, err := s.ai.Respond(ctx, message)
	if err == nil {
		return reply
	}

	fields := []zap.Field{zap.Error(err)}
	var f *gemini.Failure
	if errors.As(err, &f) {
		fields = append(fields, zap.Stringer("kind", f.Kind))
	}
	s.log.Warn("ai responder failed, using fallback reply", fields...)

	return s.fallback.Respond(message)
}

// History returns every record owned by userID, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]models.ChatRecord, error) {
	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []models.ChatRecord{}
	}
	return recs, nil
}
