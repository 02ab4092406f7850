package domain

import "time"

// Company is an employer account identified by its handle.
type Company struct {
	ID           int64
	Handle       string
	PasswordHash string
	Name         string
	Logo         *string
	Email        string
	CreatedAt    time.Time
}

// CompanyPatch carries the fields of a partial company update.
type CompanyPatch struct {
	PasswordHash *string
	Name         *string
	Logo         *string
	Email        *string
}

// Empty reports whether the patch changes nothing.
func (p CompanyPatch) Empty() bool {
	return p.PasswordHash == nil && p.Name == nil && p.Logo == nil && p.Email == nil
}
