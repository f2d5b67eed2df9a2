package auth

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkwork-app/linkwork_be/internal/models"
	"github.com/linkwork-app/linkwork_be/internal/store"
)

func setupAuth(t *testing.T) (*AuthService, *store.Store, string) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "data.json"), zerolog.Nop())
	require.NoError(t, err)
	sessionPath := filepath.Join(dir, "session.json")
	svc := NewAuthService(st, store.NewSessionStore(sessionPath, zerolog.Nop()), zerolog.Nop())
	return svc, st, sessionPath
}

func TestSignupSuccess(t *testing.T) {
	svc, st, _ := setupAuth(t)

	u, err := svc.Signup(SignupInput{
		Email:    "new@user.com",
		Password: "secret",
		Role:     models.RoleFreelancer,
		Name:     "New User",
		Bio:      "bio",
		Skills:   []string{"Writing"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	// the new user is the current session
	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, u.ID, current.ID)

	// and the record persisted
	assert.Len(t, st.Users(), 3)

	// a later login with the same credentials works
	logged, err := svc.Login("new@user.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, st, _ := setupAuth(t)

	_, err := svc.Signup(SignupInput{
		Email:    store.DemoClientEmail,
		Password: "whatever",
		Role:     models.RoleClient,
		Name:     "Imposter",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	// session and user collection are untouched
	assert.Nil(t, svc.Current())
	assert.Len(t, st.Users(), 2)
}

func TestSignupEmailMatchIsCaseSensitive(t *testing.T) {
	svc, _, _ := setupAuth(t)

	// differs from the seeded demo email only by case, so it is a new user
	_, err := svc.Signup(SignupInput{
		Email:    "Client@client.com",
		Password: "pw",
		Role:     models.RoleClient,
		Name:     "Other Client",
	})
	assert.NoError(t, err)
}

func TestLoginDemoCredentials(t *testing.T) {
	svc, _, _ := setupAuth(t)

	u, err := svc.Login(store.DemoClientEmail, store.DemoClientPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, u.Role)

	f, err := svc.Login(store.DemoFreelancerEmail, store.DemoFreelancerPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFreelancer, f.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, err := svc.Login(store.DemoClientEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, svc.Current())

	_, err = svc.Login("nobody@nowhere.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, svc.Current())
}

func TestLoginPasswordIsCaseSensitive(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, err := svc.Login(store.DemoClientEmail, "Client")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutIdempotent(t *testing.T) {
	svc, _, sessionPath := setupAuth(t)

	_, err := svc.Login(store.DemoClientEmail, store.DemoClientPassword)
	require.NoError(t, err)
	require.NotNil(t, svc.Current())

	svc.Logout()
	assert.Nil(t, svc.Current())
	assert.Nil(t, store.NewSessionStore(sessionPath, zerolog.Nop()).Restore())

	// logging out while anonymous does nothing and does not fail
	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestSessionRestoredOnStart(t *testing.T) {
	svc, st, sessionPath := setupAuth(t)

	u, err := svc.Login(store.DemoFreelancerEmail, store.DemoFreelancerPassword)
	require.NoError(t, err)

	// a fresh service over the same slots starts authenticated
	restarted := NewAuthService(st, store.NewSessionStore(sessionPath, zerolog.Nop()), zerolog.Nop())
	current := restarted.Current()
	require.NotNil(t, current)
	assert.Equal(t, u.ID, current.ID)
}

func TestUserByID(t *testing.T) {
	svc, st, _ := setupAuth(t)

	want := st.Users()[0]
	got, err := svc.UserByID(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	_, err = svc.UserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
