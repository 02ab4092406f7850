package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenceMissing is returned when a foreign key target does not exist.
	ErrReferenceMissing = errors.New("referenced record does not exist")
)

// psql builds Postgres statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mapPgError translates constraint violations into repository errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errors.Join(ErrDuplicate, err)
	case pgerrcode.ForeignKeyViolation:
		return errors.Join(ErrReferenceMissing, err)
	default:
		return err
	}
}
