package spin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jgs61/wheelofchumps/internal/domain"
)

func TestPhaseTable(t *testing.T) {
	cases := []struct {
		elapsed  time.Duration
		phase    domain.Phase
		interval time.Duration
		speed    float64
	}{
		{0, domain.PhaseAccelerating, 50 * time.Millisecond, 20},
		{999 * time.Millisecond, domain.PhaseAccelerating, 50 * time.Millisecond, 20},
		{1000 * time.Millisecond, domain.PhaseCruising, 100 * time.Millisecond, 12},
		{1999 * time.Millisecond, domain.PhaseCruising, 100 * time.Millisecond, 12},
		{2000 * time.Millisecond, domain.PhaseDecelerating, 200 * time.Millisecond, 6},
		{3000 * time.Millisecond, domain.PhaseSettling, 400 * time.Millisecond, 2},
		{3499 * time.Millisecond, domain.PhaseSettling, 400 * time.Millisecond, 2},
		{3500 * time.Millisecond, domain.PhaseDone, 0, 0},
		{time.Hour, domain.PhaseDone, 0, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.phase, PhaseAt(tc.elapsed), "elapsed %s", tc.elapsed)
		require.Equal(t, tc.interval, CycleInterval(tc.elapsed), "elapsed %s", tc.elapsed)
		require.Equal(t, tc.speed, RotationSpeed(tc.elapsed), "elapsed %s", tc.elapsed)
	}
}

func TestPhaseOrderIsStrict(t *testing.T) {
	order := []domain.Phase{
		domain.PhaseIdle,
		domain.PhaseAccelerating,
		domain.PhaseCruising,
		domain.PhaseDecelerating,
		domain.PhaseSettling,
		domain.PhaseDone,
	}
	for i := 1; i < len(order); i++ {
		require.Less(t, phaseOrder(order[i-1]), phaseOrder(order[i]))
		require.Equal(t, order[i], nextPhase(order[i-1]))
	}
	require.Equal(t, domain.PhaseDone, nextPhase(domain.PhaseDone))
}
