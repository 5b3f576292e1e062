package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type SubjectRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubjectRepo(pool *pgxpool.Pool, logger *slog.Logger) *SubjectRepo {
	return &SubjectRepo{pool: pool, logger: logger}
}

const subjectColumns = `id, owner_id, guide_id, name, place_id, lat, lng, status, active, created_at, closed_at`

func scanSubject(row pgx.Row) (*domain.TrackedSubject, error) {
	var s domain.TrackedSubject
	err := row.Scan(&s.ID, &s.OwnerID, &s.GuideID, &s.Name, &s.PlaceID,
		&s.Lat, &s.Lng, &s.Status, &s.Active, &s.CreatedAt, &s.ClosedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubjectRepo) Create(ctx context.Context, s *domain.TrackedSubject) error {
	const op = "postgres.Subject.Create"

	const query = `
INSERT INTO subjects (id, owner_id, guide_id, name, place_id, lat, lng, status, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.OwnerID, s.GuideID, s.Name, s.PlaceID, s.Lat, s.Lng, s.Status, s.Active, s.CreatedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *SubjectRepo) Get(ctx context.Context, id uuid.UUID) (*domain.TrackedSubject, error) {
	const op = "postgres.Subject.Get"

	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE id = $1`, subjectColumns)
	s, err := scanSubject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *SubjectRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.TrackedSubject, error) {
	const op = "postgres.Subject.GetByOwner"

	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE owner_id = $1 AND active ORDER BY created_at DESC LIMIT 1`, subjectColumns)
	s, err := scanSubject(r.pool.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *SubjectRepo) UpdatePosition(ctx context.Context, id uuid.UUID, lat, lng float64, status domain.SubjectStatus) error {
	const op = "postgres.Subject.UpdatePosition"

	const query = `UPDATE subjects SET lat = $2, lng = $3, status = $4 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, lat, lng, status)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *SubjectRepo) UpdateDestination(ctx context.Context, id uuid.UUID, placeID int, lat, lng float64, status domain.SubjectStatus) error {
	const op = "postgres.Subject.UpdateDestination"

	const query = `UPDATE subjects SET place_id = $2, lat = $3, lng = $4, status = $5 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, placeID, lat, lng, status)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *SubjectRepo) Close(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "postgres.Subject.Close"

	const query = `UPDATE subjects SET active = false, closed_at = $2 WHERE id = $1 AND active`
	tag, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *SubjectRepo) ListActive(ctx context.Context) ([]*domain.TrackedSubject, error) {
	const op = "postgres.Subject.ListActive"

	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE active ORDER BY created_at`, subjectColumns)
	return r.list(ctx, op, query)
}

func (r *SubjectRepo) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*domain.TrackedSubject, error) {
	const op = "postgres.Subject.ListByGuide"

	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE guide_id = $1 AND active ORDER BY created_at`, subjectColumns)
	return r.list(ctx, op, query, guideID)
}

func (r *SubjectRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.TrackedSubject, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	subjects := make([]*domain.TrackedSubject, 0, 8)
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return subjects, nil
}
