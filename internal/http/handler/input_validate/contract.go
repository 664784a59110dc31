package inputvalidate

import (
	"context"

	"github.com/jgs61/wheelofchumps/internal/domain"
)

type UseCase interface {
	CheckField(ctx context.Context, field domain.Field, value string) error
	SuggestField(ctx context.Context, field domain.Field, value string) (string, bool)
}
