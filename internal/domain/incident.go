package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentOpen         IncidentStatus = "Open"
	IncidentAcknowledged IncidentStatus = "Acknowledged"
	IncidentResolved     IncidentStatus = "Resolved"
)

type IncidentSeverity string

const SeverityCritical IncidentSeverity = "Critical"

// Incident is appended exactly once per Safe -> Critical transition of a
// subject. Recovery back to Safe is silent.
type Incident struct {
	ID        uuid.UUID        `json:"id"`
	SubjectID uuid.UUID        `json:"subject_id"`
	Severity  IncidentSeverity `json:"severity"`
	Status    IncidentStatus   `json:"status"`
	Lat       float64          `json:"lat"`
	Lng       float64          `json:"lng"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewIncident(subjectID uuid.UUID, lat, lng float64) *Incident {
	return &Incident{
		ID:        uuid.New(),
		SubjectID: subjectID,
		Severity:  SeverityCritical,
		Status:    IncidentOpen,
		Lat:       lat,
		Lng:       lng,
		CreatedAt: time.Now().UTC(),
	}
}
