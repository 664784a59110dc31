package spinreset

import (
	"context"

	"github.com/jgs61/wheelofchumps/internal/spin"
)

type UseCase interface {
	Reset(ctx context.Context) spin.Snapshot
}
