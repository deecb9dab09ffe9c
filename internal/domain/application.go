package domain

import "time"

// ApplicationStatus enumerates the lifecycle states of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ValidApplicationStatus reports whether s is one of the enumerated
// values. Any enumerated value may follow any prior one; there is no
// transition table.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a seeker's request to be considered for a job. Created
// with status PENDING; mutated only by the employer owning the job.
type Application struct {
	ID        string
	UserID    string
	JobID     string
	Status    ApplicationStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Job and User are populated by joined queries.
	Job  *Job
	User *Profile
}
