package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
)

// Repository contracts, satisfied by the postgres and memory drivers.

type SubjectRepository interface {
	Create(ctx context.Context, s *domain.TrackedSubject) error
	Get(ctx context.Context, id uuid.UUID) (*domain.TrackedSubject, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.TrackedSubject, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, lat, lng float64, status domain.SubjectStatus) error
	UpdateDestination(ctx context.Context, id uuid.UUID, placeID int, lat, lng float64, status domain.SubjectStatus) error
	Close(ctx context.Context, id uuid.UUID, at time.Time) error
	ListActive(ctx context.Context) ([]*domain.TrackedSubject, error)
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*domain.TrackedSubject, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, inc *domain.Incident) error
	List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*domain.Incident, error)
}

type GuidePositionRepository interface {
	Upsert(ctx context.Context, p *domain.GuidePosition) error
	Get(ctx context.Context, guideID uuid.UUID) (*domain.GuidePosition, error)
}

// Notifier is the fan-out surface of the connection registry.
type Notifier interface {
	NotifySubjectUpdate(subjectID uuid.UUID, payload any)
	NotifyGuidePosition(guideID uuid.UUID, payload any)
	NotifyRoleBroadcast(payload any, roles ...domain.Role)
}

// AlertEnqueuer pushes incident alerts for out-of-band delivery. May be a
// no-op when alerting is disabled.
type AlertEnqueuer interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type Service struct {
	Ingest *LocationIngest
	Guides *GuideService
	Trips  *TripService
}

func NewService(ingest *LocationIngest, guides *GuideService, trips *TripService) *Service {
	return &Service{
		Ingest: ingest,
		Guides: guides,
		Trips:  trips,
	}
}
