package directory

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// AdminEmail is the reserved bootstrap address. Any account created
	// or updated onto this email is forced into the admin role.
	AdminEmail = "admin@foodipy.com"
)

// Bootstrap admin record, created on first run so the store always has
// an account that can administer it.
const (
	bootstrapAdminID       = "admin-001"
	bootstrapAdminName     = "Admin User"
	bootstrapAdminPassword = "admin123"
)

// User is a storefront account. Password holds the bcrypt hash as
// stored; session code strips it before the record leaves the data
// layer.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Sanitized returns a copy with the password hash stripped, the only
// form a user record may take outside admin surfaces.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// CreateInput is the admin "create user" payload.
type CreateInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"nullable,max=20"`
	Address  string `json:"address"  validate:"nullable,max=255"`
	Role     string `json:"role"     validate:"nullable,in=user,admin"`
}

// RegisterInput is the self-registration payload. Role is never taken
// from the caller: it is derived from the email.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"nullable,max=20"`
	Address  string `json:"address"  validate:"nullable,max=255"`
}

// Patch is a partial update. Nil means "leave unchanged"; a set field
// overwrites the stored value.
type Patch struct {
	Name     *string `json:"name,omitempty"     validate:"nullable,min=2,max=100"`
	Email    *string `json:"email,omitempty"    validate:"nullable,email"`
	Password *string `json:"password,omitempty" validate:"nullable,min=6"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Role     *string `json:"role,omitempty"     validate:"nullable,in=user,admin"`
}

// deriveRole forces the admin role onto the reserved address and
// otherwise honours the requested role, defaulting to a plain user.
func deriveRole(email, requested string) string {
	if email == AdminEmail {
		return RoleAdmin
	}
	if requested != "" {
		return requested
	}
	return RoleUser
}
