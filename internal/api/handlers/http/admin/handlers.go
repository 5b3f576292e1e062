package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Overview interface {
	AdminDashboard(ctx context.Context) ([]domain.DashboardSubject, error)
	ListIncidents(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error)
}

type Handler struct {
	logger   *slog.Logger
	Overview Overview
}

func NewHandler(logger *slog.Logger, overview Overview) *Handler {
	return &Handler{
		logger:   logger,
		Overview: overview,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminDashboard", slog.String("remote", r.RemoteAddr))

	subjects, err := h.Overview.AdminDashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func (h *Handler) Incidents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminIncidents", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	incidents, total, err := h.Overview.ListIncidents(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incidents listed", slog.Int("count", len(incidents)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	return i
}
