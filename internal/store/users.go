package store

import (
	"github.com/google/uuid"

	"github.com/rgopal/chitfund/internal/models"
)

// Users returns a copy of all operator accounts.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.state.Users...)
}

// UserByUsername finds an active operator account by username.
func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.Username == username && u.IsActive {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser registers an operator account, assigning an ID.
func (s *Store) AddUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	s.state.Users = append(s.state.Users, user)
	s.markDirty("add_user")
	return user
}

// EnsureAdminUser seeds the bootstrap admin account when the user set is
// empty, e.g. on first startup against a fresh store.
func (s *Store) EnsureAdminUser(name, username, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Users) > 0 {
		return
	}
	s.state.Users = append(s.state.Users, models.User{
		UserID:       uuid.New().String(),
		Name:         name,
		Role:         models.RoleAdmin,
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
	})
	s.markDirty("seed_admin")
}
