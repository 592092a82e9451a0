package conversion

import (
	"context"
	"errors"
	"log/slog"

	"binconv/internal/converter"
	"binconv/internal/domain"
)

// Service runs conversions in-process.
type Service struct {
	conv *converter.Converter
	log  *slog.Logger
}

// New returns a conversion service. A nil logger discards output.
func New(c *converter.Converter, log *slog.Logger) *Service {
	if c == nil {
		c = converter.New()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{conv: c, log: log.With("component", "conversion")}
}

// Convert runs one conversion. Errors are returned unchanged; a failed decode
// is only logged at debug level since shells record it themselves.
func (s *Service) Convert(ctx context.Context, mode domain.Mode, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := s.conv.Convert(mode, input)
	if err != nil {
		var convErr *domain.ConversionError
		if errors.As(err, &convErr) {
			s.log.DebugContext(ctx, "conversion error",
				"mode", mode, "kind", convErr.Kind.String(), "token", convErr.Token, "index", convErr.Index)
		} else {
			s.log.ErrorContext(ctx, "conversion error", "mode", mode, "err", err)
		}
		return "", err
	}
	s.log.DebugContext(ctx, "converted",
		"mode", mode, "unit", s.conv.Unit(), "in_len", len(input), "out_len", len(out))
	return out, nil
}

// Compile-time assertion that Service implements domain.ConversionService.
var _ domain.ConversionService = (*Service)(nil)
