package service

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jobboard/jobboard-api/internal/repository"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// Messages surfaced to API callers.
const (
	MsgInvalidCredentials   = "Invalid credentials."
	MsgTooManyLoginAttempts = "Too many login attempts. Try again later."
	MsgUsernameExists       = "Username already exists."
	MsgHandleExists         = "Handle already exists."
	MsgEmailExists          = "Email already in use."
	MsgCompanyMissing       = "Company does not exist."
	MsgAlreadyApplied       = "Already applied to this job."
	MsgNotAllowed           = "You are not allowed to access this resource."
)

// notFound maps missing rows to a 404 for resource and passes other errors through.
func notFound(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	return err
}

// companyReference maps foreign key failures on current_company to a 400.
func companyReference(err error) error {
	if errors.Is(err, repository.ErrReferenceMissing) {
		return apperrors.NewValidationError(MsgCompanyMissing, nil)
	}
	return err
}
