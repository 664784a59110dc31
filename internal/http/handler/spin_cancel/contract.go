package spincancel

import (
	"context"

	"github.com/jgs61/wheelofchumps/internal/spin"
)

type UseCase interface {
	Cancel(ctx context.Context) spin.Snapshot
}
