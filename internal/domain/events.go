package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outbound websocket payloads. Fields stay snake_case on the wire so the
// dashboard clients consume them directly.

const (
	EventLocationUpdate      = "location_update"
	EventGuideLocationUpdate = "guide_location_update"
	EventTouristStatusChange = "tourist_status_change"
)

const (
	ActionTripStarted = "trip_started"
	ActionTripEnded   = "trip_ended"
)

type LocationUpdateEvent struct {
	Type        string        `json:"type"`
	SubjectID   uuid.UUID     `json:"subject_id"`
	Name        string        `json:"name"`
	Lat         float64       `json:"lat"`
	Lng         float64       `json:"lng"`
	Status      SubjectStatus `json:"status"`
	InsideFence bool          `json:"inside_fence"`
}

type GuideLocationEvent struct {
	Type      string    `json:"type"`
	GuideID   uuid.UUID `json:"guide_id"`
	GuideName string    `json:"guide_name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

type TouristStatusChangeEvent struct {
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	SubjectID uuid.UUID `json:"subject_id"`
	Name      string    `json:"name"`
	PlaceID   int       `json:"place_id"`
}
