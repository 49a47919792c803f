// Package directory is the user account collection: CRUD, the unique
// email rule, role derivation, and the bootstrap admin.
package directory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/foodipy/foodipy/internal/auth"
	"github.com/foodipy/foodipy/internal/store"
	"github.com/foodipy/foodipy/pkg/collection"
	"github.com/foodipy/foodipy/pkg/logger"
	"github.com/foodipy/foodipy/pkg/validate"
)

const usersKey = "foodipy_users"

var (
	// ErrDuplicateEmail signals an email already held by another account.
	ErrDuplicateEmail = errors.New("directory: email already exists")

	// ErrNotFound signals an unknown user id.
	ErrNotFound = errors.New("directory: user not found")
)

// Directory owns the users collection in the record store.
type Directory struct {
	store store.Driver
}

func New(s store.Driver) *Directory {
	return &Directory{store: s}
}

func (d *Directory) load() []User {
	return store.LoadCollection[User](d.store, usersKey)
}

func (d *Directory) save(users []User) error {
	return store.SaveCollection(d.store, usersKey, users)
}

// List returns every account, stored password hashes included. Only the
// admin surface may render these, behind its reveal toggle; the data
// layer does not filter.
func (d *Directory) List() []User {
	return d.load()
}

// FindByID looks up an account by id.
func (d *Directory) FindByID(id string) (User, bool) {
	return collection.First(d.load(), func(u User) bool { return u.ID == id })
}

// FindByEmail looks up an account by email.
func (d *Directory) FindByEmail(email string) (User, bool) {
	return collection.First(d.load(), func(u User) bool { return u.Email == email })
}

// Create adds an account the admin way: validated, unique email
// enforced, role derived from the email.
func (d *Directory) Create(in CreateInput) (User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Check(in); err != nil {
		return User{}, err
	}

	users := d.load()
	if collection.Contains(users, func(u User) bool { return u.Email == in.Email }) {
		return User{}, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("directory: hash password: %w", err)
	}

	user := User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Phone:     in.Phone,
		Address:   in.Address,
		Role:      deriveRole(in.Email, in.Role),
		CreatedAt: time.Now().UTC(),
	}

	if err := d.save(append(users, user)); err != nil {
		return User{}, err
	}
	return user, nil
}

// Register adds an account the self-service way. It deliberately skips
// the duplicate-email check: self-registration never enforced
// uniqueness, only the admin create path does. Role is derived, never
// taken from the caller.
func (d *Directory) Register(in RegisterInput) (User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Check(in); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("directory: hash password: %w", err)
	}

	user := User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Phone:     in.Phone,
		Address:   in.Address,
		Role:      deriveRole(in.Email, ""),
		CreatedAt: time.Now().UTC(),
	}

	if err := d.save(append(d.load(), user)); err != nil {
		return User{}, err
	}
	return user, nil
}

// Update merges patch into the account with the given id. Set fields
// overwrite, nil fields leave the stored value untouched. Moving the
// email onto the reserved admin address re-forces the admin role.
func (d *Directory) Update(id string, patch Patch) (User, error) {
	if err := validate.Check(patch); err != nil {
		return User{}, err
	}

	users := d.load()
	idx := collection.IndexOf(users, func(u User) bool { return u.ID == id })
	if idx == -1 {
		return User{}, ErrNotFound
	}

	if patch.Email != nil && *patch.Email != users[idx].Email {
		taken := collection.Contains(users, func(u User) bool {
			return u.Email == *patch.Email && u.ID != id
		})
		if taken {
			return User{}, ErrDuplicateEmail
		}
	}

	user := users[idx]
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return User{}, fmt.Errorf("directory: hash password: %w", err)
		}
		user.Password = hash
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	// The reserved address always wins over any requested role.
	if user.Email == AdminEmail {
		user.Role = RoleAdmin
	}

	users[idx] = user
	if err := d.save(users); err != nil {
		return User{}, err
	}
	return user, nil
}

// Delete removes an account. Unknown ids are a no-op: delete is
// idempotent. Orders placed by the account are never touched.
func (d *Directory) Delete(id string) error {
	users := d.load()
	remaining := collection.Reject(users, func(u User) bool { return u.ID == id })
	if len(remaining) == len(users) {
		return nil
	}
	return d.save(remaining)
}

// CheckPassword verifies a login candidate against the stored hash.
func (d *Directory) CheckPassword(u User, plain string) bool {
	return auth.CheckPassword(u.Password, plain)
}

// EnsureBootstrapAdmin creates the default admin account when no record
// holds the reserved address. It runs at startup, before any login, so
// the default admin can always authenticate.
func (d *Directory) EnsureBootstrapAdmin() error {
	if _, ok := d.FindByEmail(AdminEmail); ok {
		return nil
	}

	hash, err := auth.HashPassword(bootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("directory: hash bootstrap password: %w", err)
	}

	admin := User{
		ID:        bootstrapAdminID,
		Name:      bootstrapAdminName,
		Email:     AdminEmail,
		Password:  hash,
		Role:      RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}

	if err := d.save(append(d.load(), admin)); err != nil {
		return err
	}
	logger.Info("bootstrap admin created", "email", AdminEmail)
	return nil
}
