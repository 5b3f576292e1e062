package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
)

type IncidentRepo struct {
	mu        sync.RWMutex
	incidents []*domain.Incident
}

func NewIncidentRepo() *IncidentRepo {
	return &IncidentRepo{}
}

func (r *IncidentRepo) Create(ctx context.Context, inc *domain.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inc
	r.incidents = append(r.incidents, &cp)
	return nil
}

func (r *IncidentRepo) List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.incidents))
	start := (page - 1) * limit
	if start >= len(r.incidents) {
		return []*domain.Incident{}, total, nil
	}
	end := start + limit
	if end > len(r.incidents) {
		end = len(r.incidents)
	}

	// newest first, matching the postgres repo ordering
	out := make([]*domain.Incident, 0, end-start)
	for i := len(r.incidents) - 1 - start; i >= 0 && len(out) < limit; i-- {
		cp := *r.incidents[i]
		out = append(out, &cp)
	}
	return out, total, nil
}

func (r *IncidentRepo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*domain.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Incident, 0, 4)
	for i := len(r.incidents) - 1; i >= 0; i-- {
		if r.incidents[i].SubjectID == subjectID {
			cp := *r.incidents[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
