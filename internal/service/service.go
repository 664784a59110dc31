package service

import (
	"context"
	"log/slog"

	"github.com/jgs61/wheelofchumps/internal/config"
	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/nower"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/randomizer"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/scheduler"
	"github.com/jgs61/wheelofchumps/internal/metrics"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

// Service объединяет валидацию ввода, движок вращения и поток событий одного колеса.
type Service struct {
	engine   *spin.Engine
	hub      *Hub
	observer spin.Observer
}

// New собирает колесо. Дополнительные наблюдатели получают те же сигналы, что и поток событий.
func New(cfg config.Config, rnd randomizer.Randomizer, clock nower.Nower, sched scheduler.Scheduler, observers ...spin.Observer) *Service {
	hub := NewHub(cfg.Spin.EventBuffer)
	all := []spin.Observer{
		hub,
		spin.ObserverFuncs{
			PhaseChange: func(phase domain.Phase) { metrics.IncPhaseTransitions(phase.String()) },
			Result:      func(domain.Result) { metrics.IncSpinsCompleted() },
		},
	}
	observer := spin.Multi(append(all, observers...)...)

	return &Service{
		engine:   spin.New(rnd, clock, sched, observer, spin.WithFrameInterval(cfg.Spin.FrameInterval)),
		hub:      hub,
		observer: observer,
	}
}

// Start проверяет ввод и запускает вращение.
// Результат завершённого вращения сначала очищается, затем начинается новое.
func (s *Service) Start(ctx context.Context, rawNames, rawTask string) (spin.Snapshot, error) {
	req, err := Validate(rawNames, rawTask)
	if err != nil {
		code := domain.ErrorCode(err)
		metrics.IncSpinRejections(code)
		slog.InfoContext(ctx, "spin rejected", "code", code, "error", err)
		s.observer.OnRejected(err)
		return spin.Snapshot{}, err
	}

	snap, err := s.engine.Restart(ctx, req)
	if err != nil {
		metrics.IncSpinRejections(domain.ErrorCode(err))
		return spin.Snapshot{}, err
	}
	metrics.IncSpinsStarted()
	metrics.ObserveParticipants(req.Len())
	return snap, nil
}

// Cancel прерывает вращение и возвращает колесо в Idle.
func (s *Service) Cancel(ctx context.Context) spin.Snapshot {
	snap, cleared := s.engine.Clear(ctx)
	if cleared.IsSpinning() {
		metrics.IncSpinsCancelled()
	}
	return snap
}

// Reset очищает результат и возвращает колесо в Idle.
func (s *Service) Reset(ctx context.Context) spin.Snapshot {
	return s.engine.Reset(ctx)
}

// State возвращает снимок колеса. После завершения вращения новый запуск разрешён.
func (s *Service) State(_ context.Context) spin.Snapshot {
	snap := s.engine.Snapshot()
	if snap.Phase == domain.PhaseDone {
		snap.CanStart = true
	}
	return snap
}

// Subscribe подписывает на поток сигналов колеса.
func (s *Service) Subscribe(_ context.Context) (<-chan Event, func()) {
	return s.hub.Subscribe()
}

// CheckField проверяет одно поле ввода.
func (s *Service) CheckField(_ context.Context, field domain.Field, value string) error {
	return ValidateField(field, value)
}

// SuggestField предлагает исправленное значение поля, отклонённого политикой символов.
func (s *Service) SuggestField(_ context.Context, field domain.Field, value string) (string, bool) {
	return Suggest(field, value)
}

// HealthCheck сообщает о готовности сервиса. Внешних зависимостей у колеса нет.
func (s *Service) HealthCheck(_ context.Context) error {
	return nil
}
