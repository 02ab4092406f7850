package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// UserRepository defines persistence access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, username string) (*domain.User, error)
}

const userColumns = "id, username, password_hash, first_name, last_name, email, photo, current_company, created_at"

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, password_hash, first_name, last_name, email, photo, current_company)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Photo,
		user.CurrentCompany,
	).Scan(&user.ID, &user.CreatedAt)
	return mapPgError(err)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query, args, err := psql.Select(userColumns).
		From("users").
		OrderBy("username").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return r.GetByUsername(ctx, username)
	}

	set := map[string]any{}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Photo != nil {
		set["photo"] = *patch.Photo
	}
	if patch.CurrentCompany != nil {
		set["current_company"] = *patch.CurrentCompany
	}

	query, args, err := psql.Update("users").
		SetMap(set).
		Where("username = ?", username).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	return user, mapPgError(err)
}

func (r *userRepository) Delete(ctx context.Context, username string) (*domain.User, error) {
	query := `DELETE FROM users WHERE username=$1 RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, username))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Photo,
		&user.CurrentCompany,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
