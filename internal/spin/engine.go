package spin

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/nower"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/randomizer"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/scheduler"
	"github.com/jgs61/wheelofchumps/internal/logging"
)

// DefaultFrameInterval задаёт целевой интервал кадра анимации (~60 Гц).
const DefaultFrameInterval = time.Second / 60

// Option настраивает Engine.
type Option func(*Engine)

// WithFrameInterval задаёт интервал кадра анимации поворота.
func WithFrameInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.frameInterval = d
		}
	}
}

// Engine реализует машину состояний вращения.
// Из Idle запускается вращение, затем фазы сменяются по прошедшему времени,
// а на входе в Done делается окончательный выбор.
type Engine struct {
	mu            sync.Mutex
	rnd           randomizer.Randomizer
	clock         nower.Nower
	sched         scheduler.Scheduler
	observer      Observer
	frameInterval time.Duration
	session       *session
}

// New создаёт движок. observer может быть nil.
func New(rnd randomizer.Randomizer, clock nower.Nower, sched scheduler.Scheduler, observer Observer, opts ...Option) *Engine {
	if observer == nil {
		observer = ObserverFuncs{}
	}
	e := &Engine{
		rnd:           rnd,
		clock:         clock,
		sched:         sched,
		observer:      observer,
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start запускает вращение. Принимается только из Idle, иначе ErrAlreadySpinning.
// Возвращает управление сразу, дальше вращение идёт на отложенных вызовах.
func (e *Engine) Start(ctx context.Context, req domain.SpinRequest) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.startLocked(ctx, req)
}

// Restart очищает результат завершённого вращения и запускает новое под одной блокировкой.
// Вращение, которое ещё идёт, не прерывается: вызов получает ErrAlreadySpinning.
func (e *Engine) Restart(ctx context.Context, req domain.SpinRequest) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil && e.session.phase == domain.PhaseDone {
		e.clearLocked(ctx)
	}
	return e.startLocked(ctx, req)
}

func (e *Engine) startLocked(ctx context.Context, req domain.SpinRequest) (Snapshot, error) {
	if e.session != nil {
		// Ошибка несёт поля лога активного вращения.
		err := logging.WrapError(e.session.logCtx, domain.ErrAlreadySpinning)
		e.observer.OnRejected(err)
		return Snapshot{}, err
	}
	if req.Len() == 0 {
		panic("spin: start with empty participant list")
	}

	s := &session{
		id:        uuid.NewString(),
		req:       req,
		startedAt: e.clock.Now(),
		phase:     domain.PhaseIdle,
	}
	s.logCtx = logging.WithLogSpinID(context.WithoutCancel(ctx), s.id)
	s.logCtx = logging.WithLogParticipantsCount(s.logCtx, req.Len())
	e.session = s

	slog.InfoContext(s.logCtx, "spin started", "task", req.Task())
	e.advanceTo(s, domain.PhaseAccelerating)

	s.cycleTimer = e.sched.AfterFunc(CycleInterval(0), func() { e.onCycle(s) })
	s.frameTimer = e.sched.AfterFunc(e.frameInterval, func() { e.onFrame(s) })

	return s.snapshot(0), nil
}

// Cancel останавливает вращение из любой фазы кроме Idle и возвращает колесо в Idle
// без результата и показанного имени. После возврата ни один вызов этой сессии
// больше не сработает. Безопасен для повторного вызова.
func (e *Engine) Cancel(ctx context.Context) Snapshot {
	snap, _ := e.Clear(ctx)
	return snap
}

// Clear делает то же, что Cancel, и сообщает фазу, из которой колесо было возвращено в Idle.
func (e *Engine) Clear(ctx context.Context) (Snapshot, domain.Phase) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return idleSnapshot(), e.clearLocked(ctx)
}

func (e *Engine) clearLocked(ctx context.Context) domain.Phase {
	s := e.session
	if s == nil {
		return domain.PhaseIdle
	}
	s.stopTimers()
	e.session = nil

	slog.InfoContext(logging.WithLogSpinID(ctx, s.id), "spin cleared", "phase", s.phase.String())
	e.observer.OnPhaseChange(domain.PhaseIdle)
	return s.phase
}

// Reset очищает результат завершённого вращения. Это тот же переход в Idle, что и Cancel.
func (e *Engine) Reset(ctx context.Context) Snapshot {
	return e.Cancel(ctx)
}

// Snapshot возвращает текущее состояние колеса.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil {
		return idleSnapshot()
	}
	return s.snapshot(nower.Since(e.clock, s.startedAt))
}

// Phase возвращает текущую фазу.
func (e *Engine) Phase() domain.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return domain.PhaseIdle
	}
	return e.session.phase
}

// owns сообщает, что сессия всё ещё активна и принадлежит движку.
func (e *Engine) owns(s *session) bool {
	return e.session == s && !s.stopped
}

func (e *Engine) onCycle(s *session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.owns(s) {
		return
	}
	elapsed := nower.Since(e.clock, s.startedAt)
	if elapsed >= TotalDuration {
		e.finish(s, elapsed)
		return
	}
	e.advanceTo(s, PhaseAt(elapsed))

	s.displayed = e.draw(s)
	e.observer.OnDisplayName(s.displayed)

	// Следующий интервал выбирается по текущему времени, а не по расписанию.
	next := CycleInterval(elapsed)
	if remaining := TotalDuration - elapsed; next > remaining {
		next = remaining
	}
	s.cycleTimer = e.sched.AfterFunc(next, func() { e.onCycle(s) })
}

func (e *Engine) onFrame(s *session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.owns(s) {
		return
	}
	elapsed := nower.Since(e.clock, s.startedAt)
	if elapsed >= TotalDuration {
		e.finish(s, elapsed)
		return
	}
	e.advanceTo(s, PhaseAt(elapsed))

	delta := elapsed - s.lastFrame
	s.lastFrame = elapsed
	s.angle += RotationSpeed(elapsed) * float64(delta) / float64(e.frameInterval)
	e.observer.OnRotationChange(s.angle)

	s.frameTimer = e.sched.AfterFunc(e.frameInterval, func() { e.onFrame(s) })
}

// finish выполняет окончательный независимый выбор и фиксирует результат.
// Срабатывает один раз: после него оба вызова остановлены.
func (e *Engine) finish(s *session, elapsed time.Duration) {
	s.stopTimers()
	e.advanceTo(s, domain.PhaseSettling)

	chosen := e.draw(s)
	s.displayed = chosen
	s.settledAt = elapsed
	e.observer.OnDisplayName(chosen)

	s.result = &domain.Result{
		SpinID:     s.id,
		ChosenName: chosen,
		Task:       s.req.Task(),
		DecidedAt:  e.clock.Now(),
	}
	e.advanceTo(s, domain.PhaseDone)

	slog.InfoContext(s.logCtx, "spin finished", "chosen", chosen, "elapsed", elapsed.String())
	e.observer.OnResult(*s.result)
}

// advanceTo переводит сессию вперёд до target, объявляя каждую пройденную фазу по порядку.
func (e *Engine) advanceTo(s *session, target domain.Phase) {
	for phaseOrder(s.phase) < phaseOrder(target) {
		s.phase = nextPhase(s.phase)
		slog.DebugContext(logging.WithLogPhase(s.logCtx, s.phase.String()), "spin phase changed")
		e.observer.OnPhaseChange(s.phase)
	}
}

func nextPhase(p domain.Phase) domain.Phase {
	idx := phaseOrder(p)
	if idx < len(timeline) {
		return timeline[idx].phase
	}
	return domain.PhaseDone
}

// draw выбирает участника равномерно и независимо от предыдущих выборов.
func (e *Engine) draw(s *session) string {
	n := s.req.Len()
	if n == 0 {
		panic("spin: draw from empty participant list")
	}
	return s.req.Participant(e.rnd.Intn(n))
}
