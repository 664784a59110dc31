package spinstate

import (
	"context"

	"github.com/jgs61/wheelofchumps/internal/spin"
)

type UseCase interface {
	State(ctx context.Context) spin.Snapshot
}
