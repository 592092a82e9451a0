package app

import (
	"io"
	"log/slog"
	"net/http"

	"binconv/internal/clipboard"
	"binconv/internal/converter"
	"binconv/internal/domain"
	"binconv/internal/remote"
	"binconv/internal/services/conversion"
	"binconv/internal/shell"
)

// Wire bundles the converter, services and clients for the CLI and daemon.
type Wire struct {
	Config      Config
	Converter   *converter.Converter
	Conversions domain.ConversionService
	Clipboard   domain.Clipboard // nil when the clipboard is disabled
	Log         *slog.Logger
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ConverterOptions()
	if err != nil {
		return nil, err
	}
	conv := converter.New(opts...)

	var svc domain.ConversionService
	if cfg.Server != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		svc = remote.New(cfg.Server, httpClient)
		log.Debug("using remote converter", "server", cfg.Server)
	} else {
		svc = conversion.New(conv, log)
	}

	var clip domain.Clipboard
	switch cfg.Clipboard {
	case "system":
		clip = clipboard.NewSystem()
	case "memory":
		clip = &clipboard.Memory{}
	}

	return &Wire{
		Config:      cfg,
		Converter:   conv,
		Conversions: svc,
		Clipboard:   clip,
		Log:         log,
	}, nil
}

// NewSession returns a shell session on the wired services.
func (w *Wire) NewSession(opts ...shell.Option) *shell.Session {
	base := []shell.Option{
		shell.WithLogger(w.Log),
		shell.WithCopiedFor(w.Config.CopiedFor),
	}
	if w.Clipboard != nil {
		base = append(base, shell.WithClipboard(w.Clipboard))
	}
	return shell.New(w.Conversions, append(base, opts...)...)
}
