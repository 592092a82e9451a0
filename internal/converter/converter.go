package converter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"

	"binconv/internal/domain"
)

// Converter maps text to binary tokens and back.
type Converter struct {
	opts options
}

// New returns a Converter. Without options it reproduces the reference
// behavior: UTF-16 code units, width 8, no normalization.
func New(opts ...Option) *Converter {
	o := options{unit: domain.UnitUTF16, width: DefaultWidth, norm: domain.NormNone}
	for _, opt := range opts {
		opt(&o)
	}
	if o.unit == "" {
		o.unit = domain.UnitUTF16
	}
	return &Converter{opts: o}
}

// Unit returns the configured unit.
func (c *Converter) Unit() domain.Unit { return c.opts.unit }

// Width returns the configured minimum digit width.
func (c *Converter) Width() int { return c.opts.width }

// Convert dispatches to Encode or Decode.
func (c *Converter) Convert(mode domain.Mode, input string) (string, error) {
	switch mode {
	case domain.TextToBinary:
		return c.Encode(input), nil
	case domain.BinaryToText:
		return c.Decode(input)
	default:
		return "", fmt.Errorf("converter: unknown mode %v", mode)
	}
}

// Encode renders every unit of text as a zero-padded base-2 token.
func (c *Converter) Encode(text string) string {
	values := c.split(c.normalize(text))
	tokens := lo.Map(values, func(v uint64, _ int) string {
		return c.pad(strconv.FormatUint(v, 2))
	})
	return strings.Join(tokens, " ")
}

// Decode parses whitespace-separated base-2 tokens back into text.
func (c *Converter) Decode(binary string) (string, error) {
	tokens := strings.FieldsFunc(binary, IsSpace)
	values := make([]uint64, 0, len(tokens))
	for i, tok := range tokens {
		if !isBinary(tok) {
			return "", &domain.ConversionError{
				Kind:  domain.KindInvalidBinaryToken,
				Token: tok,
				Index: i,
			}
		}
		v, err := strconv.ParseUint(tok, 2, 64)
		if err != nil || !c.fits(v) {
			return "", &domain.ConversionError{
				Kind:  domain.KindCodePointOutOfRange,
				Token: tok,
				Index: i,
				Unit:  c.opts.unit,
				Cause: err,
			}
		}
		values = append(values, v)
	}
	return c.join(values), nil
}

func (c *Converter) normalize(text string) string {
	switch c.opts.norm {
	case domain.NormNFC:
		return norm.NFC.String(text)
	case domain.NormNFD:
		return norm.NFD.String(text)
	case domain.NormNFKC:
		return norm.NFKC.String(text)
	case domain.NormNFKD:
		return norm.NFKD.String(text)
	default:
		return text
	}
}

// split breaks text into unit values. Invalid UTF-8 is read as U+FFFD.
func (c *Converter) split(text string) []uint64 {
	switch c.opts.unit {
	case domain.UnitRune:
		return lo.Map([]rune(text), func(r rune, _ int) uint64 { return uint64(r) })
	case domain.UnitByte:
		return lo.Map([]byte(text), func(b byte, _ int) uint64 { return uint64(b) })
	default:
		units := utf16.Encode([]rune(text))
		return lo.Map(units, func(u uint16, _ int) uint64 { return uint64(u) })
	}
}

// join is the inverse of split. Values have already passed fits.
func (c *Converter) join(values []uint64) string {
	switch c.opts.unit {
	case domain.UnitRune:
		var b strings.Builder
		for _, v := range values {
			b.WriteRune(rune(v))
		}
		return b.String()
	case domain.UnitByte:
		return string(lo.Map(values, func(v uint64, _ int) byte { return byte(v) }))
	default:
		// Lone surrogates decode to U+FFFD.
		units := lo.Map(values, func(v uint64, _ int) uint16 { return uint16(v) })
		return string(utf16.Decode(units))
	}
}

func (c *Converter) fits(v uint64) bool {
	if v > c.opts.unit.MaxValue() {
		return false
	}
	if c.opts.unit == domain.UnitRune {
		return utf8.ValidRune(rune(v))
	}
	return true
}

func (c *Converter) pad(digits string) string {
	if n := c.opts.width - len(digits); n > 0 {
		return strings.Repeat("0", n) + digits
	}
	return digits
}

func isBinary(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '0' && tok[i] != '1' {
			return false
		}
	}
	return true
}

var std = New()

// Encode encodes text with the default options.
func Encode(text string) string { return std.Encode(text) }

// Decode decodes binary with the default options.
func Decode(binary string) (string, error) { return std.Decode(binary) }
