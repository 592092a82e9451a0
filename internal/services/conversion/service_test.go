package conversion_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binconv/internal/converter"
	"binconv/internal/domain"
	"binconv/internal/services/conversion"
)

func TestConvert_BothDirections(t *testing.T) {
	svc := conversion.New(nil, nil)
	ctx := context.Background()

	out, err := svc.Convert(ctx, domain.TextToBinary, "Hi")
	require.NoError(t, err)
	assert.Equal(t, "01001000 01101001", out)

	out, err = svc.Convert(ctx, domain.BinaryToText, out)
	require.NoError(t, err)
	assert.Equal(t, "Hi", out)
}

func TestConvert_LogsConversionError(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := conversion.New(converter.New(), log)

	_, err := svc.Convert(context.Background(), domain.BinaryToText, "0100100x 01101001")
	require.ErrorIs(t, err, domain.ErrInvalidBinaryToken)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "kind=invalid_binary_token")
	assert.Contains(t, buf.String(), "token=0100100x")
}

func TestConvert_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conversion.New(nil, nil).Convert(ctx, domain.TextToBinary, "Hi")
	assert.ErrorIs(t, err, context.Canceled)
}
