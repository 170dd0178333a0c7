package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"failfund/dto"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, mess string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]interface{}{"code": 1, "mess": mess}
	if status >= 400 {
		payload["code"] = 0
	}
	if data != nil {
		payload["data"] = data
	}
	json.NewEncoder(w).Encode(payload)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, "Success", []map[string]interface{}{})
	}))
	defer server.Close()

	session := NewSession(NewMemoryStore())
	require.NoError(t, session.SetCredentials(dto.UserResponse{ID: 1}, "tok-abc"))

	cl := New(server.URL, session)
	_, err := cl.MyStartups()
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestClientDecodesListFromEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/startups", r.URL.Path)
		assert.Equal(t, "Finance", r.URL.Query().Get("category"))
		writeEnvelope(w, http.StatusOK, "Success", []map[string]interface{}{
			{"id": 1, "title": "LedgerLite", "category": "Finance"},
		})
	}))
	defer server.Close()

	cl := New(server.URL, nil)
	startups, err := cl.ListStartups(dto.StartupFilters{Category: "Finance"})
	require.NoError(t, err)

	require.Len(t, startups, 1)
	assert.Equal(t, "LedgerLite", startups[0].Title)
}

func TestClientMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "Startup not found", nil)
	}))
	defer server.Close()

	cl := New(server.URL, nil)
	_, err := cl.GetStartup(99)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "Startup not found", apiErr.Message)
}

func TestClientLoginStoresCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var input dto.LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "ada@example.com", input.Email)

		writeEnvelope(w, http.StatusOK, "Success", dto.AuthResponse{
			User:        dto.UserResponse{ID: 7, Name: "Ada", Email: "ada@example.com"},
			AccessToken: "tok-xyz",
		})
	}))
	defer server.Close()

	session := NewSession(NewMemoryStore())
	cl := New(server.URL, session)

	auth, err := cl.Login("ada@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "tok-xyz", auth.AccessToken)
	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok-xyz", session.Token())
}

func TestClientLoginFailureLeavesSessionLoggedOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
	}))
	defer server.Close()

	session := NewSession(NewMemoryStore())
	cl := New(server.URL, session)

	_, err := cl.Login("ada@example.com", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, session.Authenticated())
}

func TestClientLogoutClearsSession(t *testing.T) {
	session := NewSession(NewMemoryStore())
	require.NoError(t, session.SetCredentials(dto.UserResponse{ID: 1}, "tok"))

	cl := New("http://unused", session)
	require.NoError(t, cl.Logout())

	assert.False(t, session.Authenticated())
}

func TestClientHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cl := New(server.URL, nil)
	assert.NoError(t, cl.Health())
}
