// Package auth gates the local single-account profile. This is a demo
// gate for an offline app, not security: the hash below is a trivial,
// reversible-by-brute-force checksum kept only for data compatibility.
// Nothing here should ever guard real credentials.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/tracker"
)

var (
	// ErrUserExists is returned when registering over an existing account.
	ErrUserExists = errors.New("an account is already registered")
	// ErrNoUser is returned when no account is registered.
	ErrNoUser = errors.New("no account registered")
	// ErrBadCredentials is returned when the email or passphrase does not
	// match the stored account.
	ErrBadCredentials = errors.New("email or passphrase does not match")
)

// DemoHash is the original 32-bit string checksum, kept so documents
// written by other frontends of the same format remain readable. It is not
// a password hash in any security sense.
func DemoHash(s string) string {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return strconv.FormatInt(int64(h), 10)
}

// Register creates the local account. Fails if one already exists.
func Register(t *tracker.Tracker, name, email, passphrase string) (*models.User, error) {
	if t.User() != nil {
		return nil, ErrUserExists
	}
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
		Password:  DemoHash(passphrase),
	}
	if err := t.SetUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Verify checks the email and passphrase against the stored account.
func Verify(t *tracker.Tracker, email, passphrase string) (*models.User, error) {
	user := t.User()
	if user == nil {
		return nil, ErrNoUser
	}
	if user.Email != email || user.Password != DemoHash(passphrase) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Remove deletes the local account, leaving habit data untouched.
func Remove(t *tracker.Tracker) error {
	if t.User() == nil {
		return ErrNoUser
	}
	return t.SetUser(nil)
}
