package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// JobRepository defines persistence access for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	Update(ctx context.Context, id int64, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id int64) (*domain.Job, error)
}

const jobColumns = "id, title, salary, equity, company, created_at"

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates the repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, salary, equity, company)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		job.Title,
		job.Salary,
		job.Equity,
		job.Company,
	).Scan(&job.ID, &job.CreatedAt)
	return mapPgError(err)
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

func (r *jobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	builder := psql.Select(jobColumns).From("jobs").OrderBy("created_at DESC", "id DESC")

	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.MinSalary != nil {
		builder = builder.Where(sq.GtOrEq{"salary": *filter.MinSalary})
	}
	if filter.MinEquity != nil {
		builder = builder.Where(sq.GtOrEq{"equity": *filter.MinEquity})
	}
	if filter.Company != nil {
		builder = builder.Where(sq.Eq{"company": *filter.Company})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, id int64, patch domain.JobPatch) (*domain.Job, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]any{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Salary != nil {
		set["salary"] = *patch.Salary
	}
	if patch.Equity != nil {
		set["equity"] = *patch.Equity
	}

	query, args, err := psql.Update("jobs").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + jobColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanJob(r.pool.QueryRow(ctx, query, args...))
}

func (r *jobRepository) Delete(ctx context.Context, id int64) (*domain.Job, error) {
	query := `DELETE FROM jobs WHERE id=$1 RETURNING ` + jobColumns
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Salary,
		&job.Equity,
		&job.Company,
		&job.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
