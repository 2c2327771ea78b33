package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextIsTotalAndForwardOnly(t *testing.T) {
	next, ok := StatusPending.Next()
	require.True(t, ok)
	require.Equal(t, StatusInProgress, next)

	next, ok = StatusInProgress.Next()
	require.True(t, ok)
	require.Equal(t, StatusReady, next)

	next, ok = StatusReady.Next()
	require.True(t, ok)
	require.Equal(t, StatusCompleted, next)
}

func TestCompletedIsTerminal(t *testing.T) {
	_, ok := StatusCompleted.Next()
	require.False(t, ok)
	require.True(t, StatusCompleted.IsTerminal())

	for _, s := range []OrderStatus{StatusPending, StatusInProgress, StatusReady} {
		require.False(t, s.IsTerminal())
	}
}

func TestWalkReachesCompleted(t *testing.T) {
	s := StatusPending
	steps := 0
	for {
		next, ok := s.Next()
		if !ok {
			break
		}
		s = next
		steps++
		require.Less(t, steps, 10, "status chain must terminate")
	}
	require.Equal(t, StatusCompleted, s)
	require.Equal(t, 3, steps)
}

func TestValidStatus(t *testing.T) {
	require.True(t, ValidStatus(StatusPending))
	require.True(t, ValidStatus(StatusInProgress))
	require.False(t, ValidStatus(OrderStatus("Cancelled")))
	require.False(t, ValidStatus(OrderStatus("")))
}
