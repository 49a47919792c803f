// Package session tracks the currently signed-in user. The session
// survives restarts: on login the password-stripped user record is
// wrapped in a signed token and written to the record store, and
// startup hydration unwraps it again. A missing, tampered or expired
// token simply hydrates to the anonymous state.
package session

import (
	"errors"

	"github.com/foodipy/foodipy/internal/auth"
	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/store"
	"github.com/foodipy/foodipy/pkg/logger"
)

const sessionKey = "foodipy_user"

// ErrInvalidCredentials signals a login whose email/password pair
// matches no account. Unknown email and wrong password are deliberately
// indistinguishable.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Manager is the session state machine: Anonymous ⇄ Authenticated.
type Manager struct {
	store   store.Driver
	users   *directory.Directory
	user    *directory.User
	loading bool
}

func New(s store.Driver, users *directory.Directory) *Manager {
	return &Manager{store: s, users: users, loading: true}
}

// Hydrate restores the persisted session, if any. It always clears the
// loading flag, and never fails: a bad token just means anonymous.
func (m *Manager) Hydrate() {
	defer func() { m.loading = false }()

	token, ok := store.LoadRecord[string](m.store, sessionKey)
	if !ok {
		return
	}

	user, err := auth.ParseSession[directory.User](token)
	if err != nil {
		logger.Debug("stored session rejected", "error", err)
		return
	}
	m.user = &user
}

// Loading reports whether startup hydration has not yet run.
func (m *Manager) Loading() bool { return m.loading }

// Current returns the signed-in user, password stripped.
func (m *Manager) Current() (directory.User, bool) {
	if m.user == nil {
		return directory.User{}, false
	}
	return *m.user, true
}

// IsAdmin reports whether the signed-in user carries the admin role.
func (m *Manager) IsAdmin() bool {
	return m.user != nil && m.user.IsAdmin()
}

// Login authenticates against the directory. On success the session is
// started and persisted.
func (m *Manager) Login(email, password string) (directory.User, error) {
	account, ok := m.users.FindByEmail(email)
	if !ok || !m.users.CheckPassword(account, password) {
		return directory.User{}, ErrInvalidCredentials
	}
	return m.start(account)
}

// Register creates an account through the self-service path — which,
// unlike the admin path, does not enforce email uniqueness — and signs
// the new user in.
func (m *Manager) Register(in directory.RegisterInput) (directory.User, error) {
	account, err := m.users.Register(in)
	if err != nil {
		return directory.User{}, err
	}
	return m.start(account)
}

// Logout clears the session. The directory record stays untouched.
func (m *Manager) Logout() {
	m.user = nil
	if err := m.store.Delete(sessionKey); err != nil {
		logger.Warn("session record not removed", "error", err)
	}
}

// UpdateProfile merges patch into both the session user and the
// matching directory record. With no active session it is a silent
// no-op.
func (m *Manager) UpdateProfile(patch directory.Patch) error {
	if m.user == nil {
		return nil
	}

	updated, err := m.users.Update(m.user.ID, patch)
	if err != nil {
		return err
	}

	sanitized := updated.Sanitized()
	m.user = &sanitized
	return m.persist(sanitized)
}

func (m *Manager) start(account directory.User) (directory.User, error) {
	sanitized := account.Sanitized()
	if err := m.persist(sanitized); err != nil {
		return directory.User{}, err
	}
	m.user = &sanitized
	return sanitized, nil
}

func (m *Manager) persist(user directory.User) error {
	token, err := auth.SignSession(user)
	if err != nil {
		return err
	}
	return store.SaveRecord(m.store, sessionKey, token)
}
