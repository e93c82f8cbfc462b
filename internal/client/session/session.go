// Package session tracks who is logged in and which category filter is
// active. Only the current user's identity outlives the process; it is
// stored under the "current_user" key of the metadata repository.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/dmitrijs2005/hydroforum/internal/client/repositories/metadata"
)

const KeyCurrentUser = "current_user"

// State is either Anonymous or Authenticated.
type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

// UserLookup resolves a persisted identity against the live user collection.
type UserLookup interface {
	UserByID(id int64) (models.User, bool)
}

type Manager struct {
	repo   metadata.Repository
	user   *models.User
	filter string
}

func NewManager(repo metadata.Repository) *Manager {
	return &Manager{repo: repo}
}

// Restore loads the persisted identity. It becomes the current user only if
// lookup still knows a user with the same id and username; otherwise the
// stale entry is removed and the session stays anonymous.
func (m *Manager) Restore(ctx context.Context, lookup UserLookup) error {
	m.user = nil

	raw, err := m.repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	var saved models.User
	if err := json.Unmarshal(raw, &saved); err == nil {
		if live, ok := lookup.UserByID(saved.ID); ok && live.Username == saved.Username {
			m.user = &live
			return nil
		}
	}

	if err := m.repo.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("drop stale session: %w", err)
	}
	return nil
}

// SignIn makes u the current user and persists the identity. On failure the
// session is left unchanged.
func (m *Manager) SignIn(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.repo.Set(ctx, KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	m.user = &u
	return nil
}

// SignOut clears the current user. Calling it while anonymous is a no-op.
func (m *Manager) SignOut(ctx context.Context) error {
	if m.user == nil {
		return nil
	}
	if err := m.repo.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.user = nil
	return nil
}

// Current returns a copy of the signed-in user.
func (m *Manager) Current() (models.User, bool) {
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) State() State {
	if m.user == nil {
		return Anonymous
	}
	return Authenticated
}

// SetFilter sets the active category; "" means no filter.
func (m *Manager) SetFilter(category string) {
	m.filter = category
}

func (m *Manager) Filter() string {
	return m.filter
}
