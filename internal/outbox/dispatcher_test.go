package outbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryDelay_DoublesPerAttempt(t *testing.T) {
	max := time.Minute
	require.Equal(t, 2*time.Second, retryDelay(2, max))
	require.Equal(t, 4*time.Second, retryDelay(3, max))
	require.Equal(t, 8*time.Second, retryDelay(4, max))
}

func TestRetryDelay_NeverBelowOneSecond(t *testing.T) {
	require.Equal(t, time.Second, retryDelay(0, time.Minute))
	require.Equal(t, time.Second, retryDelay(1, time.Minute))
}

func TestRetryDelay_CappedAtMax(t *testing.T) {
	max := 10 * time.Second
	require.Equal(t, max, retryDelay(5, max))
	require.Equal(t, max, retryDelay(50, max))
}
