package cardregistry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigredonorte/bingo-sub004/cardregistry"
)

func TestRegister(t *testing.T) {
	t.Run("second registration of the same hash fails", func(t *testing.T) {
		registry := cardregistry.New()

		assert.True(t, registry.Register("s1", "1-2-3"))
		assert.False(t, registry.Register("s1", "1-2-3"))
		assert.True(t, registry.Exists("s1", "1-2-3"))
		assert.Equal(t, 1, registry.SessionCount("s1"))
	})

	t.Run("sessions are independent", func(t *testing.T) {
		registry := cardregistry.New()

		assert.True(t, registry.Register("s1", "1-2-3"))
		assert.True(t, registry.Register("s2", "1-2-3"))
		assert.False(t, registry.Exists("s3", "1-2-3"))
	})

	t.Run("only the first of concurrent registrations wins", func(t *testing.T) {
		registry := cardregistry.New()

		const goroutines = 32
		var wg sync.WaitGroup
		results := make(chan bool, goroutines)
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- registry.Register("s1", "same-hash")
			}()
		}
		wg.Wait()
		close(results)

		wins := 0
		for won := range results {
			if won {
				wins++
			}
		}
		assert.Equal(t, 1, wins)
	})
}

func TestClearSession(t *testing.T) {
	registry := cardregistry.New()
	for i := 0; i < 10; i++ {
		require.True(t, registry.Register("s1", fmt.Sprintf("hash-%d", i)))
	}
	require.Equal(t, 10, registry.SessionCount("s1"))

	registry.ClearSession("s1")
	assert.False(t, registry.Exists("s1", "hash-0"))
	assert.Equal(t, 0, registry.SessionCount("s1"))

	// A cleared session can be reused from scratch.
	assert.True(t, registry.Register("s1", "hash-0"))
}

func TestSessionCount(t *testing.T) {
	registry := cardregistry.New()
	assert.Equal(t, 0, registry.SessionCount("unknown"))
}
