package domain

import "github.com/google/uuid"

type LocationUpdateRequest struct {
	SubjectID string  `json:"subject_id" validate:"required,uuid"`
	Lat       float64 `json:"lat" validate:"lat"`
	Lng       float64 `json:"lng" validate:"lng"`
}

type LocationUpdateResponse struct {
	Status      SubjectStatus `json:"status"`
	InsideFence bool          `json:"inside_fence"`
}

type ChangeDestinationRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	PlaceID   int    `json:"place_id" validate:"required,min=1"`
}

type GuideLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type StartTripRequest struct {
	PlaceID int        `json:"place_id" validate:"required,min=1"`
	Name    string     `json:"name" validate:"required"`
	GuideID *uuid.UUID `json:"guide_id,omitempty"`
}

type MapDataResponse struct {
	Subject  *TrackedSubject    `json:"subject"`
	Geofence GeofenceDescriptor `json:"geofence"`
}

type GeofenceDescriptor struct {
	Name      string  `json:"name"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	RadiusM   float64 `json:"radius_m"`
}

type DashboardSubject struct {
	Subject   TrackedSubject `json:"subject"`
	PlaceName string         `json:"place_name"`
}
