package dto

import "time"

// UserLoginRequest payload for POST /user-auth.
type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CompanyLoginRequest payload for POST /company-auth.
type CompanyLoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
