package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecencyWeightFreshCard(t *testing.T) {
	now := time.Now()
	require.Equal(t, 1.0, RecencyWeight(now, now))
}

func TestRecencyWeightDecay(t *testing.T) {
	now := time.Now()
	require.InDelta(t, 0.5, RecencyWeight(now.Add(-5*24*time.Hour), now), 1e-9)
	require.InDelta(t, 0.7, RecencyWeight(now.Add(-3*24*time.Hour), now), 1e-9)
	// fractional days count
	require.InDelta(t, 0.95, RecencyWeight(now.Add(-12*time.Hour), now), 1e-9)
}

func TestRecencyWeightFloor(t *testing.T) {
	now := time.Now()
	require.Equal(t, 0.1, RecencyWeight(now.Add(-9*24*time.Hour), now))
	require.Equal(t, 0.1, RecencyWeight(now.Add(-30*24*time.Hour), now))
	require.Equal(t, 0.1, RecencyWeight(now.Add(-365*24*time.Hour), now))
}

func TestRecencyWeightMonotonicNonIncreasing(t *testing.T) {
	now := time.Now()
	prev := RecencyWeight(now, now)
	for days := 1; days <= 15; days++ {
		cur := RecencyWeight(now.Add(-time.Duration(days)*24*time.Hour), now)
		require.LessOrEqual(t, cur, prev)
		prev = cur
	}
}
