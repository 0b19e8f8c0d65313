package models

import "errors"

// ReservedAdminID is the account that can never be deleted.
const ReservedAdminID = "admin"

// UserAccount is a login for the application.
//
// Passwords are stored in plaintext for snapshot compatibility with the
// data this system migrates. This is a known security gap, not a feature:
// do not reuse these accounts across any other trust boundary.
type UserAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

var (
	ErrUserNameMissing     = errors.New("user accounts must have a display name")
	ErrUsernameMissing     = errors.New("user accounts must have a username")
	ErrUserPasswordMissing = errors.New("user accounts must have a password")
)

// Validate checks the account as submitted by a caller.
func (u UserAccount) Validate() error {
	if u.Name == "" {
		return ErrUserNameMissing
	}

	if u.Username == "" {
		return ErrUsernameMissing
	}

	if u.Password == "" {
		return ErrUserPasswordMissing
	}

	return nil
}
