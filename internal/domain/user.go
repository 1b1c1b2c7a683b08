package domain

import (
	"strings"
	"time"
)

// User represents a registered learner.
// It contains essential account information and authentication details.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and password.
// The username is trimmed of surrounding whitespace. The ID is assigned
// by the store on insert.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username:  strings.TrimSpace(username),
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}

	// Existing users loaded from the database carry only the hash.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// Admin represents an administrator account. Admins live in a separate
// identity space from regular users and are matched by username at login
// before the user table is consulted.
type Admin struct {
	ID             int64
	Username       string
	HashedPassword string
}

// SentinelPasswordHash is the literal stored value meaning "password not
// yet set". An admin row carrying it accepts any password on first login,
// at which point the caller's password is adopted.
const SentinelPasswordHash = "admin"

// PasswordIsSentinel reports whether the admin's stored hash is the
// first-login bootstrap marker.
func (a *Admin) PasswordIsSentinel() bool {
	return a.HashedPassword == SentinelPasswordHash
}
