package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Session is the client-side authentication state: the bearer token and
// the user projection returned at login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionStore persists a session as a JSON file so state survives
// process restarts. Clearing the store is the whole of logout; the
// token itself stays valid server-side until it expires.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store writing to path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load hydrates a previously saved session. Returns nil without error
// when no session has been saved.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, nil
	}
	return &session, nil
}

// Save writes the session to disk.
func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted session.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
