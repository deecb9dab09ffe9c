// Package client is a programmatic client for the job board API. It
// carries the authenticated session as explicit state with an init
// (hydrate from the session store) and teardown (clear on logout)
// lifecycle, and guards protected calls before they reach the wire.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotAuthenticated is returned by protected calls when no session is
// present.
var ErrNotAuthenticated = errors.New("not authenticated")

// User is the public projection of an account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Job is a posting with its employer projection. The detail endpoint
// also returns the job's applications.
type Job struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	EmployerID   string        `json:"employerId"`
	CreatedAt    time.Time     `json:"createdAt"`
	Employer     *User         `json:"employer,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}

// Application is a seeker's application with its lifecycle status.
type Application struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	JobID     string    `json:"jobId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Job       *Job      `json:"job,omitempty"`
	User      *User     `json:"user,omitempty"`
}

// APIError carries a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the job board API.
type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore
	session *Session
}

// New builds a client and hydrates any persisted session from store.
// store may be nil for a purely in-memory session.
func New(baseURL string, store *SessionStore) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
	if store != nil {
		session, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		c.session = session
	}
	return c, nil
}

// CurrentUser returns the user of the active session, if any.
func (c *Client) CurrentUser() (*User, bool) {
	if c.session == nil {
		return nil, false
	}
	user := c.session.User
	return &user, true
}

// Register creates a new account. Does not log in.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (*User, error) {
	var resp struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	body := map[string]string{"name": name, "email": email, "password": password, "role": role}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &resp, false); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and installs the session, persisting it when a
// store is configured.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp, false); err != nil {
		return nil, err
	}
	c.session = &Session{Token: resp.Token, User: resp.User}
	if c.store != nil {
		if err := c.store.Save(c.session); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}
	user := resp.User
	return &user, nil
}

// Logout drops the session locally. The server keeps no session state,
// so nothing is sent on the wire.
func (c *Client) Logout() error {
	c.session = nil
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}

// Jobs lists all postings. Public.
func (c *Client) Jobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &jobs, false); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job fetches one posting with employer and applications. Public.
func (c *Client) Job(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+id, nil, &job, false); err != nil {
		return nil, err
	}
	return &job, nil
}

// PostJob creates a posting owned by the authenticated employer.
func (c *Client) PostJob(ctx context.Context, title, description, location string) (*Job, error) {
	var job Job
	body := map[string]string{"title": title, "description": description, "location": location}
	if err := c.do(ctx, http.MethodPost, "/api/jobs", body, &job, true); err != nil {
		return nil, err
	}
	return &job, nil
}

// Apply submits an application for the authenticated seeker.
func (c *Client) Apply(ctx context.Context, jobID string) (*Application, error) {
	var app Application
	body := map[string]string{"jobId": jobID}
	if err := c.do(ctx, http.MethodPost, "/api/applications", body, &app, true); err != nil {
		return nil, err
	}
	return &app, nil
}

// MyApplications lists the authenticated user's applications.
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.do(ctx, http.MethodGet, "/api/applications", nil, &apps, true); err != nil {
		return nil, err
	}
	return apps, nil
}

// ReceivedApplications lists applications for the authenticated
// employer's jobs.
func (c *Client) ReceivedApplications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.do(ctx, http.MethodGet, "/api/applications/employer/received", nil, &apps, true); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus transitions an application's status.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*Application, error) {
	var app Application
	body := map[string]string{"status": status}
	path := "/api/applications/" + applicationID + "/status"
	if err := c.do(ctx, http.MethodPatch, path, body, &app, true); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	if authed && c.session == nil {
		return ErrNotAuthenticated
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
