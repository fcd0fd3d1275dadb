package jobs

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
)

// Searcher looks up job listings. *Client implements it.
type Searcher interface {
	Search(ctx context.Context, jobTitle, location string) ([]json.RawMessage, error)
}

type Handler struct {
	jobs Searcher
	log  *zap.Logger
}

func NewHandler(jobs Searcher, log *zap.Logger) *Handler {
	return &Handler{jobs: jobs, log: log}
}

// Search handles POST /api/jobs/search. Upstream failures keep the
// {status, message} body clients already parse instead of {error}.
func (h *Handler) Search(r *http.Request) (int, any, error) {
	req, err := httpx.ParseRequest[models.JobSearchRequest](r)
	if err != nil {
		return 0, nil, err
	}

	listings, err := h.jobs.Search(r.Context(), req.JobTitle, req.Location)
	if err != nil {
		if code := httpx.StatusCode(err); code < http.StatusInternalServerError {
			return 0, nil, err
		}
		h.log.Warn("job search failed", zap.String("job_title", req.JobTitle), zap.Error(err))
		return http.StatusInternalServerError, models.UpstreamErrorResponse{
			Status:  "error",
			Message: err.Error(),
		}, nil
	}

	return http.StatusOK, models.JobSearchResponse{
		Status: "success",
		Count:  len(listings),
		Data:   listings,
	}, nil
}
