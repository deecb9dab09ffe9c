package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/pkg/client"
)

func newStore(t *testing.T) *client.SessionStore {
	t.Helper()
	return client.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := newStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "absent file yields no session")

	session := &client.Session{
		Token: "tok",
		User:  client.User{ID: "u1", Name: "John", Email: "john@example.com", Role: "USER"},
	}
	require.NoError(t, store.Save(session))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.Token, loaded.Token)
	assert.Equal(t, session.User, loaded.User)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// clearing twice is not an error
	require.NoError(t, store.Clear())
}

func TestProtectedCallsRequireSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil)
	require.NoError(t, err)

	_, err = c.MyApplications(context.Background())
	assert.ErrorIs(t, err, client.ErrNotAuthenticated)

	_, err = c.PostJob(context.Background(), "T", "D", "L")
	assert.ErrorIs(t, err, client.ErrNotAuthenticated)

	_, ok := c.CurrentUser()
	assert.False(t, ok)
}

func TestLoginInstallsAndPersistsSession(t *testing.T) {
	var sawAuthorization string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": "issued-token",
			"user":  map[string]string{"id": "u1", "name": "John", "email": "john@example.com", "role": "USER"},
		})
	})
	mux.HandleFunc("GET /api/applications", func(w http.ResponseWriter, r *http.Request) {
		sawAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := newStore(t)
	c, err := client.New(server.URL, store)
	require.NoError(t, err)

	user, err := c.Login(context.Background(), "john@example.com", "seeker123")
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)

	current, ok := c.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "u1", current.ID)

	_, err = c.MyApplications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer issued-token", sawAuthorization)

	// a fresh client hydrates the persisted session
	rehydrated, err := client.New(server.URL, store)
	require.NoError(t, err)
	current, ok = rehydrated.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "john@example.com", current.Email)

	// logout clears both memory and disk
	require.NoError(t, rehydrated.Logout())
	_, ok = rehydrated.CurrentUser()
	assert.False(t, ok)
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Job not found"})
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil)
	require.NoError(t, err)

	_, err = c.Job(context.Background(), "missing")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Job not found", apiErr.Message)
}
