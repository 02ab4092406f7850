package dto

import (
	"time"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// CreateUserRequest payload for POST /users.
type CreateUserRequest struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Photo          *string `json:"photo"`
	CurrentCompany *string `json:"current_company"`
}

// UpdateUserRequest payload for PATCH /users/:username.
type UpdateUserRequest struct {
	Password       *string `json:"password"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Photo          *string `json:"photo"`
	CurrentCompany *string `json:"current_company"`
}

// UserResponse is the public view of a user; the password hash is never exposed.
type UserResponse struct {
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Photo          *string   `json:"photo"`
	CurrentCompany *string   `json:"current_company"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Photo:          u.Photo,
		CurrentCompany: u.CurrentCompany,
		CreatedAt:      u.CreatedAt,
	}
}

// NewUserList maps a slice of users.
func NewUserList(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
