package shuffler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bingo "github.com/tigredonorte/bingo-sub004"
	"github.com/tigredonorte/bingo-sub004/shuffler"
)

func TestShuffle(t *testing.T) {
	t.Run("does not mutate the input", func(t *testing.T) {
		s := shuffler.New(1)
		input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		original := append([]int(nil), input...)

		for i := 0; i < 50; i++ {
			s.Shuffle(input)
		}
		assert.Equal(t, original, input)
	})

	t.Run("preserves the element multiset", func(t *testing.T) {
		s := shuffler.New(2)
		input := []int{4, 8, 15, 16, 23, 42}

		shuffled := s.Shuffle(input)
		assert.ElementsMatch(t, input, shuffled)
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		first := shuffler.New(99).Shuffle(input)
		second := shuffler.New(99).Shuffle(input)
		assert.Equal(t, first, second)
	})

	t.Run("handles empty and single-element slices", func(t *testing.T) {
		s := shuffler.New(3)
		assert.Empty(t, s.Shuffle(nil))
		assert.Equal(t, []int{7}, s.Shuffle([]int{7}))
	})
}

func TestDrawDistinct(t *testing.T) {
	t.Run("values are distinct and in range", func(t *testing.T) {
		s := shuffler.New(4)
		for i := 0; i < 100; i++ {
			values, err := s.DrawDistinct(10, 19, 3)
			require.NoError(t, err)
			require.Len(t, values, 3)

			seen := make(map[int]bool)
			for _, v := range values {
				assert.GreaterOrEqual(t, v, 10)
				assert.LessOrEqual(t, v, 19)
				assert.False(t, seen[v], "drew duplicate value %d", v)
				seen[v] = true
			}
		}
	})

	t.Run("can drain the entire range", func(t *testing.T) {
		s := shuffler.New(5)
		values, err := s.DrawDistinct(1, 5, 5)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, values)
	})

	t.Run("errors when count exceeds the range", func(t *testing.T) {
		s := shuffler.New(6)
		_, err := s.DrawDistinct(1, 3, 4)
		require.ErrorIs(t, err, bingo.ErrInvalidRange)
	})

	t.Run("errors on an inverted range", func(t *testing.T) {
		s := shuffler.New(7)
		_, err := s.DrawDistinct(10, 5, 1)
		require.ErrorIs(t, err, bingo.ErrInvalidRange)
	})
}
