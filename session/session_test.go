package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigredonorte/bingo-sub004/session"
)

func TestIssueAndVerify(t *testing.T) {
	manager := session.NewManager("test-secret", 0)

	sessionID, token, err := manager.Issue()
	require.NoError(t, err)
	_, err = uuid.Parse(sessionID)
	require.NoError(t, err, "session ids should be uuids")

	verified, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, verified)
}

func TestVerifyRejections(t *testing.T) {
	manager := session.NewManager("test-secret", 0)

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Verify("not-a-token")
		require.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := session.NewManager("other-secret", 0)
		_, token, err := other.Issue()
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := session.NewManager("test-secret", time.Nanosecond)
		_, token, err := shortLived.Issue()
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = shortLived.Verify(token)
		require.ErrorIs(t, err, session.ErrInvalidToken)
	})
}
