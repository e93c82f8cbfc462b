package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/dmitrijs2005/hydroforum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hydroforum/internal/logging"
)

// Storage keys of the persisted collections.
const (
	KeyUsers  = "forum_users"
	KeyTopics = "forum_topics"
)

type Store struct {
	repo metadata.Repository
	now  func() time.Time
	log  logging.Logger

	users  []models.User
	topics []models.Topic
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New loads both collections from repo. A missing key is an empty
// collection. When no topics exist the welcome topic is seeded and
// persisted before New returns.
func New(ctx context.Context, repo metadata.Repository, opts ...Option) (*Store, error) {
	s := &Store{
		repo: repo,
		now:  time.Now,
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.users, err = load[models.User](ctx, repo, KeyUsers); err != nil {
		return nil, err
	}
	if s.topics, err = load[models.Topic](ctx, repo, KeyTopics); err != nil {
		return nil, err
	}

	if len(s.topics) == 0 {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
	}

	s.log.Debug(ctx, "store loaded", "users", len(s.users), "topics", len(s.topics))
	return s, nil
}

func load[T any](ctx context.Context, repo metadata.Repository, key string) ([]T, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		s.log.Error(ctx, "persist failed", "key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// nextID derives an id from the clock but never returns a value at or below
// last, so ids stay unique when several records share a millisecond.
func (s *Store) nextID(last int64) int64 {
	id := s.now().UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}
