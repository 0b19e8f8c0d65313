package store

import (
	"slices"
	"strings"

	"github.com/financa-pro/backend/internal/models"
	"github.com/google/uuid"
)

// Login matches the username case-insensitively and the password
// exactly. On success the matched account becomes the session
// principal. The error does not reveal whether the username or the
// password was wrong.
func (s *Store) Login(username, password string) (models.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.state.Users {
		if strings.EqualFold(user.Username, username) && user.Password == password {
			s.authenticated = true
			s.currentUser = user
			return user, nil
		}
	}

	return models.UserAccount{}, ErrLoginFailed
}

// Logout clears the session principal.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.currentUser = models.UserAccount{}
}

// CurrentUser returns the session principal, if any.
func (s *Store) CurrentUser() (models.UserAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentUser, s.authenticated
}

// AddUser adds a login account, assigning an id when none is set.
func (s *Store) AddUser(user models.UserAccount) (models.UserAccount, error) {
	if err := user.Validate(); err != nil {
		return models.UserAccount{}, err
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Users = append(slices.Clone(s.state.Users), user)
	return user, s.persist()
}

// RemoveUser deletes an account. The reserved admin account is
// protected; every other account can be deleted, including the one
// currently logged in.
func (s *Store) RemoveUser(id string) error {
	if id == models.ReservedAdminID {
		return ErrReservedAccount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Users = remove(s.state.Users, func(u models.UserAccount) bool { return u.ID == id })
	return s.persist()
}
