package client

import (
	"errors"
	"testing"

	"failfund/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore fails writes to a single key.
type flakyStore struct {
	*MemoryStore
	failKey string
}

func (s *flakyStore) Set(key, value string) error {
	if key == s.failKey {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(key, value)
}

func TestSessionSetCredentialsPersistsBothKeys(t *testing.T) {
	store := NewMemoryStore()
	session := NewSession(store)

	user := dto.UserResponse{ID: 7, Name: "Ada", Email: "ada@example.com", Role: "founder"}
	require.NoError(t, session.SetCredentials(user, "tok-123"))

	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok-123", session.Token())

	token, ok := store.Get("failfund_token")
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)

	rawUser, ok := store.Get("failfund_user")
	require.True(t, ok)
	assert.Contains(t, rawUser, "ada@example.com")
}

func TestSessionRestoresFromStore(t *testing.T) {
	store := NewMemoryStore()
	first := NewSession(store)
	require.NoError(t, first.SetCredentials(dto.UserResponse{ID: 7, Name: "Ada"}, "tok-123"))

	second := NewSession(store)
	assert.True(t, second.Authenticated())
	assert.Equal(t, "tok-123", second.Token())
	require.NotNil(t, second.User())
	assert.Equal(t, uint(7), second.User().ID)
}

func TestSessionClearWipesStateAndStorage(t *testing.T) {
	store := NewMemoryStore()
	session := NewSession(store)
	require.NoError(t, session.SetCredentials(dto.UserResponse{ID: 7}, "tok-123"))

	require.NoError(t, session.Clear())

	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User())
	assert.Empty(t, session.Token())

	_, ok := store.Get("failfund_token")
	assert.False(t, ok)
	_, ok = store.Get("failfund_user")
	assert.False(t, ok)
}

func TestSessionFailedUserWriteRollsBackToken(t *testing.T) {
	store := &flakyStore{MemoryStore: NewMemoryStore(), failKey: "failfund_user"}
	session := NewSession(store)

	err := session.SetCredentials(dto.UserResponse{ID: 7, Name: "Ada"}, "tok-123")
	require.Error(t, err)

	// The pair persists together or not at all: no token may linger once
	// the user write has failed.
	_, ok := store.Get("failfund_token")
	assert.False(t, ok)
	assert.False(t, session.Authenticated())
	assert.Empty(t, session.Token())
}

func TestSessionNilUserMeansLoggedOut(t *testing.T) {
	store := NewMemoryStore()
	// Token without a stored user must not count as authenticated.
	require.NoError(t, store.Set("failfund_token", "dangling"))

	session := NewSession(store)
	assert.False(t, session.Authenticated())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("failfund_token", "tok"))
	v, ok := store.Get("failfund_token")
	require.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, store.Delete("failfund_token"))
	_, ok = store.Get("failfund_token")
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete("failfund_token"))
}
