// Package memory holds in-process repository implementations used by the
// local storage driver and the service test suites.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type SubjectRepo struct {
	mu       sync.RWMutex
	subjects map[uuid.UUID]*domain.TrackedSubject
}

func NewSubjectRepo() *SubjectRepo {
	return &SubjectRepo{subjects: make(map[uuid.UUID]*domain.TrackedSubject)}
}

func (r *SubjectRepo) Create(ctx context.Context, s *domain.TrackedSubject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subjects[s.ID]; ok {
		return fmt.Errorf("memory.Subject.Create: %w", e.ErrConflict)
	}
	cp := *s
	r.subjects[s.ID] = &cp
	return nil
}

func (r *SubjectRepo) Get(ctx context.Context, id uuid.UUID) (*domain.TrackedSubject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subjects[id]
	if !ok {
		return nil, fmt.Errorf("memory.Subject.Get: %w", e.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *SubjectRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.TrackedSubject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.TrackedSubject
	for _, s := range r.subjects {
		if s.OwnerID != ownerID || !s.Active {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("memory.Subject.GetByOwner: %w", e.ErrNotFound)
	}
	cp := *latest
	return &cp, nil
}

func (r *SubjectRepo) UpdatePosition(ctx context.Context, id uuid.UUID, lat, lng float64, status domain.SubjectStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subjects[id]
	if !ok {
		return fmt.Errorf("memory.Subject.UpdatePosition: %w", e.ErrNotFound)
	}
	s.Lat, s.Lng = &lat, &lng
	s.Status = status
	return nil
}

func (r *SubjectRepo) UpdateDestination(ctx context.Context, id uuid.UUID, placeID int, lat, lng float64, status domain.SubjectStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subjects[id]
	if !ok {
		return fmt.Errorf("memory.Subject.UpdateDestination: %w", e.ErrNotFound)
	}
	s.PlaceID = placeID
	s.Lat, s.Lng = &lat, &lng
	s.Status = status
	return nil
}

func (r *SubjectRepo) Close(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subjects[id]
	if !ok || !s.Active {
		return fmt.Errorf("memory.Subject.Close: %w", e.ErrNotFound)
	}
	s.Active = false
	s.ClosedAt = &at
	return nil
}

func (r *SubjectRepo) ListActive(ctx context.Context) ([]*domain.TrackedSubject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.TrackedSubject, 0, len(r.subjects))
	for _, s := range r.subjects {
		if s.Active {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *SubjectRepo) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*domain.TrackedSubject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.TrackedSubject, 0, 4)
	for _, s := range r.subjects {
		if s.Active && s.GuideID != nil && *s.GuideID == guideID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}
