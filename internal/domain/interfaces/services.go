package interfaces

import (
	"context"

	domaintypes "binconv/internal/domain/types"
)

// ConversionService runs a single text/binary conversion.
//
// Implementations are stateless between calls. A failed decode returns an
// error matching domain.ErrConversion.
type ConversionService interface {
	Convert(ctx context.Context, mode domaintypes.Mode, input string) (string, error)
}

// Clipboard receives text from a copy action.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
