package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

// GuideService covers the guide-side surface: own position reports and
// the assigned-subjects dashboard. Guides are not geofenced.
type GuideService struct {
	positions GuidePositionRepository
	subjects  SubjectRepository
	places    *geo.Index
	notifier  Notifier
	logger    *slog.Logger
}

func NewGuideService(positions GuidePositionRepository, subjects SubjectRepository, places *geo.Index, notifier Notifier, logger *slog.Logger) *GuideService {
	return &GuideService{
		positions: positions,
		subjects:  subjects,
		places:    places,
		notifier:  notifier,
		logger:    logger,
	}
}

func (g *GuideService) ReportPosition(ctx context.Context, req domain.GuideLocationRequest, caller domain.Identity) (*domain.GuidePosition, error) {
	const op = "guide.ReportPosition"

	if caller.Role != domain.RoleGuide {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	pos := &domain.GuidePosition{
		GuideID:   caller.UserID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		UpdatedAt: time.Now().UTC(),
	}
	if err := g.positions.Upsert(ctx, pos); err != nil {
		return nil, err
	}

	g.notifier.NotifyGuidePosition(caller.UserID, domain.GuideLocationEvent{
		Type:      domain.EventGuideLocationUpdate,
		GuideID:   caller.UserID,
		GuideName: caller.FullName,
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Timestamp: pos.UpdatedAt,
	})

	g.logger.Info("guide position updated", slog.String("guide_id", caller.UserID.String()))
	return pos, nil
}

// Dashboard returns the guide's assigned active subjects only.
func (g *GuideService) Dashboard(ctx context.Context, caller domain.Identity) ([]domain.DashboardSubject, error) {
	const op = "guide.Dashboard"

	if caller.Role != domain.RoleGuide {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	subjects, err := g.subjects.ListByGuide(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DashboardSubject, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, domain.DashboardSubject{
			Subject:   *s,
			PlaceName: g.places.ByID(s.PlaceID).Name,
		})
	}
	return out, nil
}
