package spinstart

import (
	"context"

	"github.com/jgs61/wheelofchumps/internal/spin"
)

type UseCase interface {
	Start(ctx context.Context, rawNames, rawTask string) (spin.Snapshot, error)
}
