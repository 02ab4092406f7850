package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// ApplicationRepository manages job application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	Delete(ctx context.Context, jobID int64, username string) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository constructs repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, username)
        VALUES ($1, $2)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query, app.JobID, app.Username).Scan(&app.ID, &app.CreatedAt)
	return mapPgError(err)
}

func (r *applicationRepository) Delete(ctx context.Context, jobID int64, username string) (*domain.Application, error) {
	const query = `
        DELETE FROM applications WHERE job_id=$1 AND username=$2
        RETURNING id, job_id, username, created_at`
	var app domain.Application
	if err := r.pool.QueryRow(ctx, query, jobID, username).Scan(
		&app.ID,
		&app.JobID,
		&app.Username,
		&app.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	const query = `
        SELECT id, job_id, username, created_at
        FROM applications WHERE job_id=$1 ORDER BY created_at`
	return r.list(ctx, query, jobID)
}

func (r *applicationRepository) ListByUsername(ctx context.Context, username string) ([]domain.Application, error) {
	const query = `
        SELECT id, job_id, username, created_at
        FROM applications WHERE username=$1 ORDER BY created_at`
	return r.list(ctx, query, username)
}

func (r *applicationRepository) list(ctx context.Context, query string, arg any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		var app domain.Application
		err := row.Scan(&app.ID, &app.JobID, &app.Username, &app.CreatedAt)
		return app, err
	})
}
