package main

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binconv/internal/app"
	"binconv/internal/domain"
	"binconv/internal/httpapi"
	"binconv/internal/remote"
)

func TestServe_ConvertsAndShutsDown(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Clipboard = "none"
	w, err := app.NewWire(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, httpapi.New(w.Conversions, w.Log), w) }()

	client := remote.New("http://"+ln.Addr().String(), nil)
	require.Eventually(t, func() bool { return client.Health(context.Background()) == nil },
		2*time.Second, 10*time.Millisecond)

	out, err := client.Convert(context.Background(), domain.BinaryToText, "01001000 01101001")
	require.NoError(t, err)
	assert.Equal(t, "Hi", out)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownGrace + time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
