package dto

import "github.com/spec-kit/job-board/internal/domain"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returned on successful registration.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    domain.Profile `json:"user"`
}

// LoginResponse returned on successful login. The token is the sole
// credential for protected routes.
type LoginResponse struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}
