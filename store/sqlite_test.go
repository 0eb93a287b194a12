package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigredonorte/bingo-sub004/store"
)

func newSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	sqlite, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "bingo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })
	return sqlite
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	sqlite := newSQLiteStore(t)

	card := sampleCard("s1")
	require.NoError(t, sqlite.Save(ctx, card))
	require.NoError(t, sqlite.Save(ctx, sampleCard("s1")))
	require.NoError(t, sqlite.Save(ctx, sampleCard("s2")))

	t.Run("round-trips a card", func(t *testing.T) {
		found, err := sqlite.Get(ctx, card.ID.String())
		require.NoError(t, err)
		assert.Equal(t, card.ID, found.ID)
		assert.Equal(t, card.SessionID, found.SessionID)
		assert.Equal(t, card.Format, found.Format)
		assert.Equal(t, card.Cells, found.Cells)
		assert.Equal(t, card.Hash, found.Hash)
		assert.True(t, card.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("missing card", func(t *testing.T) {
		_, err := sqlite.Get(ctx, uuid.NewString())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("lists only the session's cards", func(t *testing.T) {
		cards, err := sqlite.ListBySession(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, cards, 2)
	})

	t.Run("delete session leaves other sessions alone", func(t *testing.T) {
		require.NoError(t, sqlite.DeleteSession(ctx, "s1"))

		cards, err := sqlite.ListBySession(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, cards)

		cards, err = sqlite.ListBySession(ctx, "s2")
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})
}
