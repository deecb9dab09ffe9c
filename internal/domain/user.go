package domain

import "time"

// Role partitions accounts into job seekers and employers.
// It is fixed at registration and gates every write operation.
type Role string

const (
	RoleUser     Role = "USER"
	RoleEmployer Role = "EMPLOYER"
)

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public-safe projection of a user. The password hash
// never leaves the server.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// PublicProfile projects the user for API responses.
func (u *User) PublicProfile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
