package domain

import "time"

// User is the domain model for job seekers.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string
	FirstName      string
	LastName       string
	Email          string
	Photo          *string
	CurrentCompany *string
	CreatedAt      time.Time
}

// UserPatch carries the fields of a partial user update. Nil fields are left untouched.
type UserPatch struct {
	PasswordHash   *string
	FirstName      *string
	LastName       *string
	Email          *string
	Photo          *string
	CurrentCompany *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.PasswordHash == nil && p.FirstName == nil && p.LastName == nil &&
		p.Email == nil && p.Photo == nil && p.CurrentCompany == nil
}
