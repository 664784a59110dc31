package spinevents

import (
	"context"

	"github.com/jgs61/wheelofchumps/internal/service"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

type UseCase interface {
	State(ctx context.Context) spin.Snapshot
	Subscribe(ctx context.Context) (<-chan service.Event, func())
}
