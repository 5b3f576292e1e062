package tourist

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/middleware"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LocationIngest interface {
	ReportPosition(ctx context.Context, req domain.LocationUpdateRequest, caller domain.Identity) (domain.LocationUpdateResponse, error)
	ChangeDestination(ctx context.Context, req domain.ChangeDestinationRequest, caller domain.Identity) (domain.LocationUpdateResponse, error)
}

type TripManager interface {
	StartTrip(ctx context.Context, req domain.StartTripRequest, caller domain.Identity) (*domain.TrackedSubject, error)
	CloseTrip(ctx context.Context, subjectID uuid.UUID, caller domain.Identity) error
	MapData(ctx context.Context, subjectID uuid.UUID, caller domain.Identity) (*domain.MapDataResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Ingest LocationIngest
	Trips  TripManager
}

func NewHandler(logger *slog.Logger, ingest LocationIngest, trips TripManager) *Handler {
	return &Handler{
		logger: logger,
		Ingest: ingest,
		Trips:  trips,
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

	var req domain.LocationUpdateRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	resp, err := h.Ingest.ReportPosition(r.Context(), req, identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("location reported",
		slog.String("subject_id", req.SubjectID),
		slog.String("status", string(resp.Status)),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ChangeDestination(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	var req domain.ChangeDestinationRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	resp, err := h.Ingest.ChangeDestination(r.Context(), req, identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) StartTrip(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	var req domain.StartTripRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
		return
	}

	subject, err := h.Trips.StartTrip(r.Context(), req, identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("trip started",
		slog.String("subject_id", subject.ID.String()),
		slog.Int("place_id", subject.PlaceID),
	)
	h.writeJSON(w, http.StatusCreated, subject)
}

func (h *Handler) CloseTrip(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid trip id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Trips.CloseTrip(r.Context(), id, identity); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MapData(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	idStr := chi.URLParam(r, "subjectID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid subject id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	data, err := h.Trips.MapData(r.Context(), id, identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, data)
}

// decodeStrict decodes a single JSON object and rejects unknown fields and
// trailing data. Writes the error response itself and reports success.
func (h *Handler) decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
