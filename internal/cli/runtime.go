package cli

import (
	"github.com/jgs61/wheelofchumps/internal/infrastructure/nower"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/randomizer"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/scheduler"
)

// Runtime содержит источники случайности и времени для вращения в терминале.
type Runtime struct {
	Randomizer randomizer.Randomizer
	Clock      nower.Nower
	Scheduler  scheduler.Scheduler
	// Drive вызывается сразу после запуска. Пустой для реального времени.
	Drive func()
}

type runtimeFactory func(seed int64) Runtime

func systemRuntime(seed int64) Runtime {
	rnd := randomizer.New()
	if seed != 0 {
		rnd = randomizer.NewSeeded(seed)
	}
	return Runtime{
		Randomizer: rnd,
		Clock:      nower.New(),
		Scheduler:  scheduler.New(),
	}
}
