package colleges

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/gemini"
	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
)

const defaultLocation = "India"

// Generator produces text for a prompt. *gemini.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Archive keeps AI output that could not be parsed. *store.MinioStore
// implements it.
type Archive interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// Service recommends colleges, preferring AI output and falling back to a
// static list.
type Service struct {
	gen     Generator
	archive Archive
	log     *zap.Logger
}

// NewService builds a Service. archive may be nil.
func NewService(gen Generator, archive Archive, log *zap.Logger) *Service {
	return &Service{gen: gen, archive: archive, log: log}
}

// Search returns recommendations for field near location. The only error is
// a 400 for an empty field; every AI problem is answered from the fallback.
func (s *Service) Search(ctx context.Context, field, location string) (*models.CollegeSearchResponse, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, httpx.Validationf("Field of study is required")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		location = defaultLocation
	}

	text, err := s.gen.Generate(ctx, buildPrompt(field, location))
	if err == nil {
		items, perr := extractArray(text)
		if perr == nil {
			return &models.CollegeSearchResponse{Status: "success", Count: len(items), Data: items}, nil
		}
		s.archiveRejected(ctx, text)
		err = perr
	}

	fields := []zap.Field{zap.String("field", field), zap.Error(err)}
	var f *gemini.Failure
	if errors.As(err, &f) {
		fields = append(fields, zap.Stringer("kind", f.Kind))
	}
	s.log.Warn("college recommendations unavailable, using fallback", fields...)

	data := toRaw(fallbackFor(field))
	return &models.CollegeSearchResponse{
		Status: "success",
		Count:  len(data),
		Data:   data,
		Note:   fallbackNote,
	}, nil
}

func (s *Service) archiveRejected(ctx context.Context, text string) {
	if s.archive == nil {
		return
	}
	key := "colleges/rejected/" + uuid.NewString() + ".txt"
	if err := s.archive.Upload(ctx, key, []byte(text), "text/plain; charset=utf-8"); err != nil {
		s.log.Warn("archive rejected college output", zap.String("key", key), zap.Error(err))
		return
	}
	s.log.Info("archived rejected college output", zap.String("key", key))
}
