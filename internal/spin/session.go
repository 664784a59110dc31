package spin

import (
	"context"
	"time"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/scheduler"
)

// session хранит изменяемое состояние одного вращения. Принадлежит Engine
// и живёт от Start до Cancel/Reset. Указатель на сессию служит токеном отмены:
// отложенные вызовы проверяют, что движок всё ещё владеет именно их сессией.
type session struct {
	id        string
	req       domain.SpinRequest
	logCtx    context.Context
	startedAt time.Time

	phase     domain.Phase
	displayed string
	angle     float64
	lastFrame time.Duration
	settledAt time.Duration
	result    *domain.Result

	cycleTimer scheduler.Timer
	frameTimer scheduler.Timer
	stopped    bool
}

// stopTimers отменяет оба отложенных вызова. После этого сессия больше ничего не излучает.
func (s *session) stopTimers() {
	s.stopped = true
	if s.cycleTimer != nil {
		s.cycleTimer.Stop()
		s.cycleTimer = nil
	}
	if s.frameTimer != nil {
		s.frameTimer.Stop()
		s.frameTimer = nil
	}
}

// Snapshot описывает состояние колеса для отображения.
type Snapshot struct {
	SpinID        string         `json:"spin_id,omitempty"`
	Phase         domain.Phase   `json:"phase"`
	ElapsedMS     int64          `json:"elapsed_ms"`
	DisplayedName string         `json:"displayed_name,omitempty"`
	Angle         float64        `json:"angle"`
	Participants  []string       `json:"participants,omitempty"`
	Task          string         `json:"task,omitempty"`
	Result        *domain.Result `json:"result,omitempty"`
	CanStart      bool           `json:"can_start"`
}

// idleSnapshot описывает колесо, на котором ничего не происходит.
func idleSnapshot() Snapshot {
	return Snapshot{Phase: domain.PhaseIdle, CanStart: true}
}

func (s *session) snapshot(elapsed time.Duration) Snapshot {
	if s.phase == domain.PhaseDone {
		elapsed = s.settledAt
	}
	snap := Snapshot{
		SpinID:        s.id,
		Phase:         s.phase,
		ElapsedMS:     elapsed.Milliseconds(),
		DisplayedName: s.displayed,
		Angle:         s.angle,
		Participants:  s.req.Participants(),
		Task:          s.req.Task(),
	}
	if s.result != nil {
		res := *s.result
		snap.Result = &res
	}
	return snap
}
