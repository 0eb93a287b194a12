package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bingo "github.com/tigredonorte/bingo-sub004"
	"github.com/tigredonorte/bingo-sub004/store"
)

func sampleCard(sessionID string) *bingo.BingoCard {
	return &bingo.BingoCard{
		ID:        uuid.New(),
		SessionID: sessionID,
		Format:    bingo.FormatFiveByFive,
		Cells: []bingo.GeneratedCell{
			{Index: 0, Value: 7, Type: bingo.CellTypeNumber},
			{Index: 1, Type: bingo.CellTypeFree},
		},
		Hash:      "7-F",
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemoryStore()

	card := sampleCard("s1")
	require.NoError(t, memory.Save(ctx, card))
	require.NoError(t, memory.Save(ctx, sampleCard("s2")))

	t.Run("get by id", func(t *testing.T) {
		found, err := memory.Get(ctx, card.ID.String())
		require.NoError(t, err)
		assert.Equal(t, card, found)

		_, err = memory.Get(ctx, uuid.NewString())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list by session", func(t *testing.T) {
		cards, err := memory.ListBySession(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, card.ID, cards[0].ID)
	})

	t.Run("delete session", func(t *testing.T) {
		require.NoError(t, memory.DeleteSession(ctx, "s1"))

		cards, err := memory.ListBySession(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, cards)
		_, err = memory.Get(ctx, card.ID.String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
