package converter

import "binconv/internal/domain"

const (
	// DefaultWidth is the minimum number of digits per token.
	DefaultWidth = 8
	// MaxWidth bounds WithWidth; no unit needs more than 64 bits.
	MaxWidth = 64
)

type options struct {
	unit  domain.Unit
	width int
	norm  domain.Normalization
}

// Option configures a Converter.
type Option func(*options)

// WithUnit selects how text is split into numbers.
func WithUnit(u domain.Unit) Option {
	return func(o *options) { o.unit = u }
}

// WithWidth sets the minimum digit width. Values outside 1..MaxWidth are
// clamped.
func WithWidth(n int) Option {
	return func(o *options) {
		switch {
		case n < 1:
			o.width = 1
		case n > MaxWidth:
			o.width = MaxWidth
		default:
			o.width = n
		}
	}
}

// WithNormalization applies a Unicode normalization form to text before it is
// encoded. Decoded text is returned as-is.
func WithNormalization(n domain.Normalization) Option {
	return func(o *options) { o.norm = n }
}
