package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkwork-app/linkwork_be/internal/models"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkwork_session_user.json")
	s := NewSessionStore(path, zerolog.Nop())

	u := &models.User{
		ID:     "u1",
		Email:  "a@b.c",
		Role:   models.RoleFreelancer,
		Name:   "A",
		Skills: []string{"Design"},
	}
	require.NoError(t, s.Set(u))

	restored := NewSessionStore(path, zerolog.Nop()).Restore()
	require.NotNil(t, restored)
	assert.Equal(t, u, restored)
}

func TestSessionClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkwork_session_user.json")
	s := NewSessionStore(path, zerolog.Nop())

	require.NoError(t, s.Set(&models.User{ID: "u1"}))
	require.NoError(t, s.Set(nil))
	assert.Nil(t, s.Restore())

	// clearing an already-empty slot stays fine
	require.NoError(t, s.Set(nil))
}

func TestSessionRestoreMissingSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkwork_session_user.json")
	assert.Nil(t, NewSessionStore(path, zerolog.Nop()).Restore())
}

func TestSessionRestoreIgnoresGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkwork_session_user.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))
	assert.Nil(t, NewSessionStore(path, zerolog.Nop()).Restore())
}
