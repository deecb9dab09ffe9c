package domain

import "time"

// Job is a posting created by an employer. Immutable after creation in
// the current scope.
type Job struct {
	ID          string
	Title       string
	Description string
	Location    string
	EmployerID  string
	CreatedAt   time.Time

	// Employer is populated by joined queries.
	Employer *Profile
}
