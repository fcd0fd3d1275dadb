package colleges

import (
	"net/http"

	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles POST /api/colleges/search.
func (h *Handler) Search(r *http.Request) (int, any, error) {
	req, err := httpx.ParseRequest[models.CollegeSearchRequest](r)
	if err != nil {
		return 0, nil, err
	}

	res, err := h.svc.Search(r.Context(), req.Field, req.Location)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, res, nil
}
