package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/dmitrijs2005/hydroforum/internal/common"
)

// Export returns a deep copy of the whole forum state.
func (s *Store) Export() models.Snapshot {
	return models.Snapshot{
		Users:  s.Users(),
		Topics: s.Topics(""),
	}
}

// Import replaces the forum state with snap. Both collections are written in
// one SetMany call; on failure nothing changes. A snapshot without topics
// gets the welcome topic, as a fresh store would.
func (s *Store) Import(ctx context.Context, snap models.Snapshot) error {
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	users := append([]models.User{}, snap.Users...)
	topics := append([]models.Topic{}, snap.Topics...)
	if len(topics) == 0 {
		topics = []models.Topic{welcomeTopic(s.timestamp())}
	}

	rawUsers, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyUsers, err)
	}
	rawTopics, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyTopics, err)
	}

	if err := s.repo.SetMany(ctx, map[string][]byte{
		KeyUsers:  rawUsers,
		KeyTopics: rawTopics,
	}); err != nil {
		s.log.Error(ctx, "import failed", "error", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}

	s.users, s.topics = users, topics
	s.log.Info(ctx, "snapshot imported", "users", len(users), "topics", len(topics))
	return nil
}

func validateSnapshot(snap models.Snapshot) error {
	names := make(map[string]struct{}, len(snap.Users))
	userIDs := make(map[int64]struct{}, len(snap.Users))
	for _, u := range snap.Users {
		if u.Username == "" {
			return fmt.Errorf("%w: user %d has no username", common.ErrInvalidSnapshot, u.ID)
		}
		if _, dup := names[u.Username]; dup {
			return fmt.Errorf("%w: duplicate username %q", common.ErrInvalidSnapshot, u.Username)
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("%w: duplicate user id %d", common.ErrInvalidSnapshot, u.ID)
		}
		names[u.Username] = struct{}{}
		userIDs[u.ID] = struct{}{}
	}

	ids := make(map[int64]struct{}, len(snap.Topics))
	for _, t := range snap.Topics {
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("%w: duplicate topic id %d", common.ErrInvalidSnapshot, t.ID)
		}
		if t.Views < 0 || t.Replies < 0 {
			return fmt.Errorf("%w: topic %d has negative counters", common.ErrInvalidSnapshot, t.ID)
		}
		ids[t.ID] = struct{}{}
	}
	return nil
}
