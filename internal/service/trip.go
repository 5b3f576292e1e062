package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

// TripService manages subject lifecycle and the read-side views: admin
// dashboard, incident listing, tourist map data.
type TripService struct {
	subjects  SubjectRepository
	incidents IncidentRepository
	places    *geo.Index
	notifier  Notifier
	logger    *slog.Logger
}

func NewTripService(subjects SubjectRepository, incidents IncidentRepository, places *geo.Index, notifier Notifier, logger *slog.Logger) *TripService {
	return &TripService{
		subjects:  subjects,
		incidents: incidents,
		places:    places,
		notifier:  notifier,
		logger:    logger,
	}
}

// StartTrip creates a tracked subject seeded at the destination's center.
// The initial Safe status is a baseline write: no incident, whatever the
// coordinates.
func (t *TripService) StartTrip(ctx context.Context, req domain.StartTripRequest, caller domain.Identity) (*domain.TrackedSubject, error) {
	const op = "trip.StartTrip"

	if caller.Role != domain.RoleTourist {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if !t.places.Contains(req.PlaceID) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnknownPlace)
	}

	place := t.places.ByID(req.PlaceID)
	subject := &domain.TrackedSubject{
		ID:        uuid.New(),
		OwnerID:   caller.UserID,
		GuideID:   req.GuideID,
		Name:      req.Name,
		PlaceID:   req.PlaceID,
		Lat:       &place.Lat,
		Lng:       &place.Lng,
		Status:    domain.StatusSafe,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := t.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}

	t.notifier.NotifyRoleBroadcast(domain.TouristStatusChangeEvent{
		Type:      domain.EventTouristStatusChange,
		Action:    domain.ActionTripStarted,
		SubjectID: subject.ID,
		Name:      subject.Name,
		PlaceID:   subject.PlaceID,
	}, domain.RoleAdmin, domain.RoleGuide)

	t.logger.Info("trip started",
		slog.String("subject_id", subject.ID.String()),
		slog.String("place", place.Name),
	)
	return subject, nil
}

// CloseTrip deactivates the subject. Closed subjects reject further
// reports and drop out of dashboards and fan-out.
func (t *TripService) CloseTrip(ctx context.Context, subjectID uuid.UUID, caller domain.Identity) error {
	const op = "trip.CloseTrip"

	subject, err := t.subjects.Get(ctx, subjectID)
	if err != nil {
		return err
	}

	switch caller.Role {
	case domain.RoleAdmin:
	case domain.RoleTourist:
		if subject.OwnerID != caller.UserID {
			return fmt.Errorf("%s: %w", op, e.ErrForbidden)
		}
	default:
		return fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	if err := t.subjects.Close(ctx, subjectID, time.Now().UTC()); err != nil {
		return err
	}

	t.notifier.NotifyRoleBroadcast(domain.TouristStatusChangeEvent{
		Type:      domain.EventTouristStatusChange,
		Action:    domain.ActionTripEnded,
		SubjectID: subject.ID,
		Name:      subject.Name,
		PlaceID:   subject.PlaceID,
	}, domain.RoleAdmin, domain.RoleGuide)

	t.logger.Info("trip closed", slog.String("subject_id", subjectID.String()))
	return nil
}

// AdminDashboard lists every active subject with its place name.
func (t *TripService) AdminDashboard(ctx context.Context) ([]domain.DashboardSubject, error) {
	subjects, err := t.subjects.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DashboardSubject, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, domain.DashboardSubject{
			Subject:   *s,
			PlaceName: t.places.ByID(s.PlaceID).Name,
		})
	}
	return out, nil
}

func (t *TripService) ListIncidents(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error) {
	return t.incidents.List(ctx, page, limit)
}

// MapData returns the subject and its geofence descriptor, subject to the
// same visibility rules as fan-out.
func (t *TripService) MapData(ctx context.Context, subjectID uuid.UUID, caller domain.Identity) (*domain.MapDataResponse, error) {
	const op = "trip.MapData"

	subject, err := t.subjects.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case domain.RoleAdmin:
	case domain.RoleTourist:
		if subject.OwnerID != caller.UserID {
			return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
		}
	case domain.RoleGuide:
		if subject.GuideID == nil || *subject.GuideID != caller.UserID {
			return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	place := t.places.ByID(subject.PlaceID)
	return &domain.MapDataResponse{
		Subject: subject,
		Geofence: domain.GeofenceDescriptor{
			Name:      place.Name,
			CenterLat: place.Lat,
			CenterLng: place.Lng,
			RadiusM:   place.RadiusM,
		},
	}, nil
}

func (t *TripService) Places() []geo.Place {
	return t.places.All()
}
