package chat

import (
	"net/http"

	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/middleware"
	"github.com/careercompass/backend/internal/models"
)

// Handler holds chat HTTP handlers. Both routes require an authenticated user.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Send handles POST /api/chat.
func (h *Handler) Send(r *http.Request) (int, any, error) {
	userID := middleware.UserID(r.Context())

	req, err := httpx.ParseRequest[models.ChatRequest](r)
	if err != nil {
		return 0, nil, err
	}

	rec, err := h.svc.Send(r.Context(), userID, req.Message)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, rec, nil
}

// History handles GET /api/chat/history.
func (h *Handler) History(r *http.Request) (int, any, error) {
	recs, err := h.svc.History(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, recs, nil
}
