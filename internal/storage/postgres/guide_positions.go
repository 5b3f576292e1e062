package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type GuidePositionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGuidePositionRepo(pool *pgxpool.Pool, logger *slog.Logger) *GuidePositionRepo {
	return &GuidePositionRepo{pool: pool, logger: logger}
}

func (r *GuidePositionRepo) Upsert(ctx context.Context, p *domain.GuidePosition) error {
	const op = "postgres.GuidePosition.Upsert"

	const query = `
INSERT INTO guide_positions (guide_id, lat, lng, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (guide_id) DO UPDATE SET lat = $2, lng = $3, updated_at = $4
`
	_, err := r.pool.Exec(ctx, query, p.GuideID, p.Lat, p.Lng, p.UpdatedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *GuidePositionRepo) Get(ctx context.Context, guideID uuid.UUID) (*domain.GuidePosition, error) {
	const op = "postgres.GuidePosition.Get"

	const query = `SELECT guide_id, lat, lng, updated_at FROM guide_positions WHERE guide_id = $1`
	var p domain.GuidePosition
	err := r.pool.QueryRow(ctx, query, guideID).Scan(&p.GuideID, &p.Lat, &p.Lng, &p.UpdatedAt)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &p, nil
}
