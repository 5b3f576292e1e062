package guide

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/middleware"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type GuidePositions interface {
	ReportPosition(ctx context.Context, req domain.GuideLocationRequest, caller domain.Identity) (*domain.GuidePosition, error)
	Dashboard(ctx context.Context, caller domain.Identity) ([]domain.DashboardSubject, error)
}

type Handler struct {
	logger *slog.Logger
	Guides GuidePositions
}

func NewHandler(logger *slog.Logger, guides GuidePositions) *Handler {
	return &Handler{
		logger: logger,
		Guides: guides,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	var req domain.GuideLocationRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coordinates"})
		return
	}

	pos, err := h.Guides.ReportPosition(r.Context(), req, identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("guide location reported", slog.String("guide_id", identity.UserID.String()))
	h.writeJSON(w, http.StatusOK, pos)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	subjects, err := h.Guides.Dashboard(r.Context(), identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"subjects": subjects,
		"count":    len(subjects),
	})
}
