package domain_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binconv/internal/domain"
)

func TestConversionError_Is(t *testing.T) {
	invalid := &domain.ConversionError{Kind: domain.KindInvalidBinaryToken, Token: "01x"}
	assert.ErrorIs(t, invalid, domain.ErrConversion)
	assert.ErrorIs(t, invalid, domain.ErrInvalidBinaryToken)
	assert.NotErrorIs(t, invalid, domain.ErrCodePointOutOfRange)

	cause := &strconv.NumError{Func: "ParseUint", Num: "1", Err: strconv.ErrRange}
	rng := &domain.ConversionError{Kind: domain.KindCodePointOutOfRange, Unit: domain.UnitByte, Cause: cause}
	assert.ErrorIs(t, rng, domain.ErrCodePointOutOfRange)
	assert.ErrorIs(t, rng, strconv.ErrRange)
	assert.NotErrorIs(t, rng, domain.ErrInvalidBinaryToken)
}

func TestConversionError_As(t *testing.T) {
	err := fmt.Errorf("decode: %w", &domain.ConversionError{Kind: domain.KindInvalidBinaryToken, Token: "2", Index: 3})

	var convErr *domain.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, 3, convErr.Index)
	assert.Equal(t, "2", convErr.Token)
	assert.Contains(t, err.Error(), `invalid binary token 3 ("2")`)
}

func TestErrorKind_RoundTrip(t *testing.T) {
	for _, k := range []domain.ErrorKind{domain.KindInvalidBinaryToken, domain.KindCodePointOutOfRange} {
		assert.Equal(t, k, domain.ParseErrorKind(k.String()))
	}
	assert.Equal(t, domain.KindInvalidBinaryToken, domain.ParseErrorKind("bogus"))
}

func TestMode(t *testing.T) {
	assert.Equal(t, domain.BinaryToText, domain.TextToBinary.Other())
	assert.Equal(t, domain.TextToBinary, domain.BinaryToText.Other())

	for in, want := range map[string]domain.Mode{
		"textToBinary": domain.TextToBinary,
		"encode":       domain.TextToBinary,
		"text":         domain.TextToBinary,
		"binaryToText": domain.BinaryToText,
		"decode":       domain.BinaryToText,
		"binary":       domain.BinaryToText,
	} {
		got, err := domain.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseMode("sideways")
	assert.Error(t, err)

	var m domain.Mode
	require.NoError(t, m.UnmarshalText([]byte("binaryToText")))
	assert.Equal(t, domain.BinaryToText, m)
	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "binaryToText", string(b))
}

func TestParseUnit(t *testing.T) {
	u, err := domain.ParseUnit("")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitUTF16, u)

	u, err = domain.ParseUnit("rune")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitRune, u)
	assert.Equal(t, uint64(0x10FFFF), u.MaxValue())

	_, err = domain.ParseUnit("nibble")
	assert.Error(t, err)
}
