package system

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
)

type Handler struct {
	logger *slog.Logger
	places *geo.Index
}

func NewHandler(logger *slog.Logger, places *geo.Index) *Handler {
	return &Handler{logger: logger, places: places}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Places serves the static geofence catalog. No authentication: the catalog
// holds public landmarks only.
func (h *Handler) Places(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{"places": h.places.All()})
}
