package spin

import (
	"time"

	"github.com/jgs61/wheelofchumps/internal/domain"
)

// TotalDuration задаёт длительность вращения от старта до окончательного выбора.
const TotalDuration = 3500 * time.Millisecond

// stage описывает одну фазу вращения: до какого момента она длится,
// как часто меняется показываемое имя и насколько поворачивается колесо за кадр.
type stage struct {
	phase         domain.Phase
	until         time.Duration
	cycleInterval time.Duration
	rotationSpeed float64
}

var timeline = []stage{
	{phase: domain.PhaseAccelerating, until: 1000 * time.Millisecond, cycleInterval: 50 * time.Millisecond, rotationSpeed: 20},
	{phase: domain.PhaseCruising, until: 2000 * time.Millisecond, cycleInterval: 100 * time.Millisecond, rotationSpeed: 12},
	{phase: domain.PhaseDecelerating, until: 3000 * time.Millisecond, cycleInterval: 200 * time.Millisecond, rotationSpeed: 6},
	{phase: domain.PhaseSettling, until: TotalDuration, cycleInterval: 400 * time.Millisecond, rotationSpeed: 2},
}

// PhaseAt возвращает фазу для прошедшего с начала вращения времени.
func PhaseAt(elapsed time.Duration) domain.Phase {
	if st, ok := stageAt(elapsed); ok {
		return st.phase
	}
	return domain.PhaseDone
}

// CycleInterval возвращает паузу до следующей смены имени. В фазе Done равна нулю.
func CycleInterval(elapsed time.Duration) time.Duration {
	if st, ok := stageAt(elapsed); ok {
		return st.cycleInterval
	}
	return 0
}

// RotationSpeed возвращает скорость поворота в градусах за кадр. В фазе Done равна нулю.
func RotationSpeed(elapsed time.Duration) float64 {
	if st, ok := stageAt(elapsed); ok {
		return st.rotationSpeed
	}
	return 0
}

func stageAt(elapsed time.Duration) (stage, bool) {
	for _, st := range timeline {
		if elapsed < st.until {
			return st, true
		}
	}
	return stage{}, false
}

// phaseOrder задаёт строгий порядок фаз. Idle идёт первой, Done последней.
func phaseOrder(p domain.Phase) int {
	if p == domain.PhaseIdle {
		return 0
	}
	for i, st := range timeline {
		if st.phase == p {
			return i + 1
		}
	}
	return len(timeline) + 1
}
