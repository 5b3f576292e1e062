package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type GuidePositionRepo struct {
	mu        sync.RWMutex
	positions map[uuid.UUID]domain.GuidePosition
}

func NewGuidePositionRepo() *GuidePositionRepo {
	return &GuidePositionRepo{positions: make(map[uuid.UUID]domain.GuidePosition)}
}

func (r *GuidePositionRepo) Upsert(ctx context.Context, p *domain.GuidePosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions[p.GuideID] = *p
	return nil
}

func (r *GuidePositionRepo) Get(ctx context.Context, guideID uuid.UUID) (*domain.GuidePosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[guideID]
	if !ok {
		return nil, fmt.Errorf("memory.GuidePosition.Get: %w", e.ErrNotFound)
	}
	return &p, nil
}
