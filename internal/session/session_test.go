package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/session"
	"github.com/foodipy/foodipy/internal/store"
)

func newManager(t *testing.T) (*session.Manager, store.Driver, *directory.Directory) {
	t.Helper()

	d := store.NewMemory()
	users := directory.New(d)
	_, err := users.Create(directory.CreateInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	m := session.New(d, users)
	m.Hydrate()
	return m, d, users
}

func TestHydrateEmptyStoreIsAnonymous(t *testing.T) {
	m, _, _ := newManager(t)

	assert.False(t, m.Loading())
	_, ok := m.Current()
	assert.False(t, ok)
	assert.False(t, m.IsAdmin())
}

func TestLogin(t *testing.T) {
	m, _, _ := newManager(t)

	user, err := m.Login("asha@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", user.Email)
	assert.Empty(t, user.Password, "session user must never carry the hash")

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m, _, _ := newManager(t)

	_, err := m.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, err = m.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestSessionSurvivesRestart(t *testing.T) {
	m, d, users := newManager(t)

	_, err := m.Login("asha@example.com", "secret123")
	require.NoError(t, err)

	// A fresh manager on the same store plays the part of a restart.
	next := session.New(d, users)
	assert.True(t, next.Loading())
	next.Hydrate()
	assert.False(t, next.Loading())

	current, ok := next.Current()
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", current.Email)
}

func TestHydrateRejectsTamperedToken(t *testing.T) {
	m, d, users := newManager(t)

	_, err := m.Login("asha@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, store.SaveRecord(d, "foodipy_user", "not-a-signed-token"))

	next := session.New(d, users)
	next.Hydrate()
	_, ok := next.Current()
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	m, d, users := newManager(t)

	_, err := m.Login("asha@example.com", "secret123")
	require.NoError(t, err)
	m.Logout()

	_, ok := m.Current()
	assert.False(t, ok)

	// The persisted session is gone too.
	next := session.New(d, users)
	next.Hydrate()
	_, ok = next.Current()
	assert.False(t, ok)

	// The account itself still exists and can sign back in.
	_, err = m.Login("asha@example.com", "secret123")
	assert.NoError(t, err)
}

func TestRegisterSignsIn(t *testing.T) {
	m, _, users := newManager(t)

	user, err := m.Register(directory.RegisterInput{
		Name: "Ravi Iyer", Email: "ravi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, directory.RoleUser, user.Role)
	assert.Empty(t, user.Password)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)

	_, found := users.FindByEmail("ravi@example.com")
	assert.True(t, found)
}

func TestRegisterValidationDoesNotStartSession(t *testing.T) {
	m, _, _ := newManager(t)

	_, err := m.Register(directory.RegisterInput{Name: "X", Email: "bad", Password: "123"})
	require.Error(t, err)

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	m, _, users := newManager(t)

	logged, err := m.Login("asha@example.com", "secret123")
	require.NoError(t, err)

	phone := "9876543210"
	require.NoError(t, m.UpdateProfile(directory.Patch{Phone: &phone}))

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "9876543210", current.Phone)
	assert.Empty(t, current.Password)

	stored, ok := users.FindByID(logged.ID)
	require.True(t, ok)
	assert.Equal(t, "9876543210", stored.Phone)
}

func TestUpdateProfileAnonymousIsNoOp(t *testing.T) {
	m, _, _ := newManager(t)

	phone := "9876543210"
	assert.NoError(t, m.UpdateProfile(directory.Patch{Phone: &phone}))
}

func TestUpdateProfilePropagatesDirectoryErrors(t *testing.T) {
	m, _, users := newManager(t)

	_, err := users.Create(directory.CreateInput{
		Name: "Ravi Iyer", Email: "ravi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = m.Login("asha@example.com", "secret123")
	require.NoError(t, err)

	taken := "ravi@example.com"
	err = m.UpdateProfile(directory.Patch{Email: &taken})
	assert.ErrorIs(t, err, directory.ErrDuplicateEmail)

	// The session user keeps its old email after the failed move.
	current, _ := m.Current()
	assert.Equal(t, "asha@example.com", current.Email)
}
