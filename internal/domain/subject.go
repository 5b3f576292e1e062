package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubjectStatus string

const (
	StatusSafe     SubjectStatus = "Safe"
	StatusCritical SubjectStatus = "Critical"
)

// TrackedSubject is an active trip being monitored against its assigned
// place's geofence. The position starts at the destination center; the
// initial status assignment is a baseline write and never emits an incident.
type TrackedSubject struct {
	ID        uuid.UUID     `json:"id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	GuideID   *uuid.UUID    `json:"guide_id,omitempty"`
	Name      string        `json:"name"`
	PlaceID   int           `json:"place_id"`
	Lat       *float64      `json:"lat"`
	Lng       *float64      `json:"lng"`
	Status    SubjectStatus `json:"status"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	ClosedAt  *time.Time    `json:"closed_at,omitempty"`
}

// GuidePosition is the last reported position of a guide. Guides are not
// geofenced; their positions exist only to be streamed to entitled viewers.
type GuidePosition struct {
	GuideID   uuid.UUID `json:"guide_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}
