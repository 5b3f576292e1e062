package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

func (r *IncidentRepo) Create(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Create"

	const query = `
INSERT INTO incidents (id, subject_id, severity, status, lat, lng, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.pool.Exec(ctx, query,
		inc.ID, inc.SubjectID, inc.Severity, inc.Status, inc.Lat, inc.Lng, inc.CreatedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *IncidentRepo) List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error) {
	const op = "postgres.Incident.List"

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM incidents`).Scan(&total); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const query = `
SELECT id, subject_id, severity, status, lat, lng, created_at
FROM incidents
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, limit)
	for rows.Next() {
		var inc domain.Incident
		if err := rows.Scan(&inc.ID, &inc.SubjectID, &inc.Severity, &inc.Status,
			&inc.Lat, &inc.Lng, &inc.CreatedAt); err != nil {
			return nil, 0, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, &inc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}
	return incidents, total, nil
}

func (r *IncidentRepo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*domain.Incident, error) {
	const op = "postgres.Incident.ListBySubject"

	const query = `
SELECT id, subject_id, severity, status, lat, lng, created_at
FROM incidents
WHERE subject_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, query, subjectID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, 8)
	for rows.Next() {
		var inc domain.Incident
		if err := rows.Scan(&inc.ID, &inc.SubjectID, &inc.Severity, &inc.Status,
			&inc.Lat, &inc.Lng, &inc.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, &inc)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return incidents, nil
}
