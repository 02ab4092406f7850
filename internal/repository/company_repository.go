package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// CompanyRepository defines persistence access for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByHandle(ctx context.Context, handle string) (*domain.Company, error)
	List(ctx context.Context, filter CompanyFilter) ([]domain.Company, error)
	Update(ctx context.Context, handle string, patch domain.CompanyPatch) (*domain.Company, error)
	Delete(ctx context.Context, handle string) (*domain.Company, error)
}

// CompanyFilter defines query params for company listing.
type CompanyFilter struct {
	Search string
	Limit  int
	Offset int
}

const companyColumns = "id, handle, password_hash, name, logo, email, created_at"

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository instantiates the repository.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (handle, password_hash, name, logo, email)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		company.Handle,
		company.PasswordHash,
		company.Name,
		company.Logo,
		company.Email,
	).Scan(&company.ID, &company.CreatedAt)
	return mapPgError(err)
}

func (r *companyRepository) GetByHandle(ctx context.Context, handle string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE handle=$1`
	return scanCompany(r.pool.QueryRow(ctx, query, handle))
}

func (r *companyRepository) List(ctx context.Context, filter CompanyFilter) ([]domain.Company, error) {
	builder := psql.Select(companyColumns).From("companies").OrderBy("handle")
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"name": "%" + filter.Search + "%"})
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

	var companies []domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *company)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, handle string, patch domain.CompanyPatch) (*domain.Company, error) {
	if patch.Empty() {
		return r.GetByHandle(ctx, handle)
	}

	set := map[string]any{}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Logo != nil {
		set["logo"] = *patch.Logo
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}

	query, args, err := psql.Update("companies").
		SetMap(set).
		Where(sq.Eq{"handle": handle}).
		Suffix("RETURNING " + companyColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	company, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	return company, mapPgError(err)
}

func (r *companyRepository) Delete(ctx context.Context, handle string) (*domain.Company, error) {
	query := `DELETE FROM companies WHERE handle=$1 RETURNING ` + companyColumns
	return scanCompany(r.pool.QueryRow(ctx, query, handle))
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var company domain.Company
	if err := row.Scan(
		&company.ID,
		&company.Handle,
		&company.PasswordHash,
		&company.Name,
		&company.Logo,
		&company.Email,
		&company.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}
