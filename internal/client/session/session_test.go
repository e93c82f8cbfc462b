package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/dmitrijs2005/hydroforum/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type users map[int64]models.User

func (u users) UserByID(id int64) (models.User, bool) {
	v, ok := u[id]
	return v, ok
}

var alice = models.User{ID: 10, Username: "alice", Password: "pw", RegisteredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}

func TestSignInSignOut(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewMemoryRepository()
	m := NewManager(repo)
	require.Equal(t, Anonymous, m.State())

	require.NoError(t, m.SignIn(ctx, alice))
	assert.Equal(t, Authenticated, m.State())
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, alice, cur)

	raw, err := repo.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	require.NoError(t, m.SignOut(ctx))
	assert.Equal(t, Anonymous, m.State())
	raw, err = repo.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, m.SignOut(ctx), "logout is idempotent")
}

func TestSignIn_PersistFailureLeavesSessionAnonymous(t *testing.T) {
	repo := metadata.NewMemoryRepository()
	repo.FailWith = errors.New("quota exceeded")
	m := NewManager(repo)

	require.ErrorIs(t, m.SignIn(context.Background(), alice), repo.FailWith)
	assert.Equal(t, Anonymous, m.State())
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("no saved identity", func(t *testing.T) {
		m := NewManager(metadata.NewMemoryRepository())
		require.NoError(t, m.Restore(ctx, users{}))
		assert.Equal(t, Anonymous, m.State())
	})

	t.Run("resolvable identity", func(t *testing.T) {
		repo := metadata.NewMemoryRepository()
		require.NoError(t, NewManager(repo).SignIn(ctx, alice))

		m := NewManager(repo)
		require.NoError(t, m.Restore(ctx, users{alice.ID: alice}))
		cur, ok := m.Current()
		require.True(t, ok)
		assert.Equal(t, alice, cur)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		repo := metadata.NewMemoryRepository()
		require.NoError(t, NewManager(repo).SignIn(ctx, alice))

		m := NewManager(repo)
		require.NoError(t, m.Restore(ctx, users{}))
		assert.Equal(t, Anonymous, m.State())

		raw, err := repo.Get(ctx, KeyCurrentUser)
		require.NoError(t, err)
		assert.Nil(t, raw, "stale identity is dropped")
	})

	t.Run("id reused by another name", func(t *testing.T) {
		repo := metadata.NewMemoryRepository()
		require.NoError(t, NewManager(repo).SignIn(ctx, alice))

		m := NewManager(repo)
		require.NoError(t, m.Restore(ctx, users{alice.ID: {ID: alice.ID, Username: "mallory"}}))
		assert.Equal(t, Anonymous, m.State())
	})

	t.Run("garbage value", func(t *testing.T) {
		repo := metadata.NewMemoryRepository()
		require.NoError(t, repo.Set(ctx, KeyCurrentUser, []byte("null-ish{")))

		m := NewManager(repo)
		require.NoError(t, m.Restore(ctx, users{}))
		assert.Equal(t, Anonymous, m.State())
	})
}

func TestFilter(t *testing.T) {
	m := NewManager(metadata.NewMemoryRepository())
	assert.Empty(t, m.Filter())
	m.SetFilter("Lighting")
	assert.Equal(t, "Lighting", m.Filter())
	m.SetFilter("")
	assert.Empty(t, m.Filter())
}
