package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"binconv/internal/app"
	"binconv/internal/httpapi"
)

const shutdownGrace = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags app.Flags
	cmd := &cobra.Command{
		Use:          "binconvd",
		Short:        "Serve the text/binary converter over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel == app.DefaultConfig().LogLevel {
				cfg.LogLevel = "info"
			}
			// The daemon never talks to another daemon or a desktop clipboard.
			cfg.Server = ""
			cfg.Clipboard = "none"

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ln, err := net.Listen("tcp", cfg.Listen)
			if err != nil {
				return err
			}
			api := httpapi.New(w.Conversions, w.Log, httpapi.WithMaxSessions(cfg.MaxSessions))
			defer api.Close()
			return serve(cmd.Context(), ln, api, w)
		},
	}
	flags.RegisterCommon(cmd.Flags())
	flags.RegisterDaemon(cmd.Flags())
	return cmd
}

// serve runs until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, h http.Handler, w *app.Wire) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	w.Log.Info("binconvd listening", "addr", ln.Addr().String(), "unit", w.Converter.Unit())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	w.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
