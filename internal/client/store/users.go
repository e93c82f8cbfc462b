package store

import (
	"context"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/dmitrijs2005/hydroforum/internal/common"
)

// RegisterUser creates a user unless the username is already taken
// (exact, case-sensitive match).
func (s *Store) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	if _, ok := s.UserByName(username); ok {
		return models.User{}, common.ErrDuplicateUsername
	}

	var last int64
	for _, u := range s.users {
		last = max(last, u.ID)
	}

	user := models.User{
		ID:           s.nextID(last),
		Username:     username,
		Password:     password,
		RegisteredAt: s.timestamp(),
	}

	prev := s.users
	s.users = append(append(make([]models.User, 0, len(prev)+1), prev...), user)
	if err := s.save(ctx, KeyUsers, s.users); err != nil {
		s.users = prev
		return models.User{}, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// LoginUser returns the stored user whose username and password both match
// exactly.
func (s *Store) LoginUser(_ context.Context, username, password string) (models.User, error) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, common.ErrInvalidCredentials
}

func (s *Store) UserByID(id int64) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByName(username string) (models.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// Users returns a copy of all users in registration order.
func (s *Store) Users() []models.User {
	return append([]models.User{}, s.users...)
}
