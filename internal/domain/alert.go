package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertPayload is the envelope enqueued for every new geofence incident
// and drained by the alert sender worker.
type AlertPayload struct {
	IncidentID  uuid.UUID        `json:"incident_id"`
	SubjectID   uuid.UUID        `json:"subject_id"`
	SubjectName string           `json:"subject_name"`
	Severity    IncidentSeverity `json:"severity"`
	Lat         float64          `json:"lat"`
	Lng         float64          `json:"lng"`
	CreatedAt   time.Time        `json:"created_at"`
}
