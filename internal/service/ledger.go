package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

// LocationLedger owns every mutation of a subject's position and status.
// All writes for one subject are serialized through a per-subject lock;
// reports for different subjects proceed in parallel.
type LocationLedger struct {
	subjects  SubjectRepository
	incidents IncidentRepository
	places    *geo.Index
	logger    *slog.Logger

	locks keyedMutex
}

func NewLocationLedger(subjects SubjectRepository, incidents IncidentRepository, places *geo.Index, logger *slog.Logger) *LocationLedger {
	return &LocationLedger{
		subjects:  subjects,
		incidents: incidents,
		places:    places,
		logger:    logger,
	}
}

// ReportResult is the outcome of a ledger write. Incident is non-nil only
// when this particular report crossed the Safe -> Critical edge.
type ReportResult struct {
	Subject     domain.TrackedSubject
	Status      domain.SubjectStatus
	InsideFence bool
	Incident    *domain.Incident
}

// ReportPosition applies one position report: existence, then default-deny
// authorization, then coordinate validation, then the geofence evaluation
// and edge-triggered incident append. Nothing is mutated on any rejection.
func (l *LocationLedger) ReportPosition(ctx context.Context, subjectID uuid.UUID, lat, lng float64, caller domain.Identity) (*ReportResult, error) {
	const op = "ledger.ReportPosition"

	unlock := l.locks.lock(subjectID)
	defer unlock()

	subject, err := l.subjects.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.Active {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	if err := l.authorizeReport(subject, caller); err != nil {
		return nil, err
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	return l.applyPosition(ctx, subject, lat, lng, subject.PlaceID, false)
}

// ChangeDestination reassigns the subject to a new place with teleport
// semantics: the position re-seeds to the new center before re-evaluation.
// Unknown place ids are rejected outright, never silently substituted.
func (l *LocationLedger) ChangeDestination(ctx context.Context, subjectID uuid.UUID, placeID int, caller domain.Identity) (*ReportResult, error) {
	const op = "ledger.ChangeDestination"

	if !l.places.Contains(placeID) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnknownPlace)
	}

	unlock := l.locks.lock(subjectID)
	defer unlock()

	subject, err := l.subjects.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.Active {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	// reassignment is owner-only; the guide variant does not extend here
	if caller.Role != domain.RoleTourist || subject.OwnerID != caller.UserID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	center := l.places.ByID(placeID)
	return l.applyPosition(ctx, subject, center.Lat, center.Lng, placeID, true)
}

// applyPosition runs steps shared by both mutations: geofence evaluation,
// the edge-triggered incident append, and the atomic position write. The
// caller holds the subject lock.
func (l *LocationLedger) applyPosition(ctx context.Context, subject *domain.TrackedSubject, lat, lng float64, placeID int, reassign bool) (*ReportResult, error) {
	place := l.places.ByID(placeID)
	inside := geo.IsInside(lat, lng, place)

	newStatus := domain.StatusCritical
	if inside {
		newStatus = domain.StatusSafe
	}

	var incident *domain.Incident
	if subject.Status != domain.StatusCritical && newStatus == domain.StatusCritical {
		incident = domain.NewIncident(subject.ID, lat, lng)
		if err := l.incidents.Create(ctx, incident); err != nil {
			return nil, err
		}
		l.logger.Warn("subject left safe zone, incident logged",
			slog.String("subject_id", subject.ID.String()),
			slog.String("incident_id", incident.ID.String()),
			slog.String("place", place.Name),
		)
	}

	if reassign {
		if err := l.subjects.UpdateDestination(ctx, subject.ID, placeID, lat, lng, newStatus); err != nil {
			return nil, err
		}
		subject.PlaceID = placeID
	} else {
		if err := l.subjects.UpdatePosition(ctx, subject.ID, lat, lng, newStatus); err != nil {
			return nil, err
		}
	}

	subject.Lat, subject.Lng = &lat, &lng
	subject.Status = newStatus

	return &ReportResult{
		Subject:     *subject,
		Status:      newStatus,
		InsideFence: inside,
		Incident:    incident,
	}, nil
}

func (l *LocationLedger) authorizeReport(subject *domain.TrackedSubject, caller domain.Identity) error {
	const op = "ledger.authorizeReport"

	// default-deny: every role needs an explicit allow rule
	switch caller.Role {
	case domain.RoleTourist:
		if subject.OwnerID == caller.UserID {
			return nil
		}
	case domain.RoleGuide:
		if subject.GuideID != nil && *subject.GuideID == caller.UserID {
			return nil
		}
	case domain.RoleAdmin:
		// admins observe, they do not report positions for subjects
	}
	return fmt.Errorf("%s: %w", op, e.ErrForbidden)
}

// keyedMutex hands out one mutex per subject id. Entries are never
// reclaimed; the map is bounded by the number of subjects ever reported.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
