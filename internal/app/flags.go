package app

import (
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Only flags the user actually set
// override the config file.
type Flags struct {
	Home        string
	ConfigPath  string
	Server      string
	Listen      string
	MaxSessions int
	Unit        string
	Width       int
	Normalize   string
	Clipboard   string
	CopiedFor   time.Duration
	Timeout     time.Duration
	LogLevel    string
	LogFormat   string
}

// RegisterCommon adds the flags shared by binconv and binconvd.
func (f *Flags) RegisterCommon(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&f.Home, "home", "", "config dir (default ~/.binconv)")
	fs.StringVar(&f.ConfigPath, "config", "", "config file (default <home>/"+ConfigFile+")")
	fs.StringVar(&f.Unit, "unit", d.Unit, "character unit: utf16, rune or byte")
	fs.IntVar(&f.Width, "width", d.Width, "minimum binary digits per character")
	fs.StringVar(&f.Normalize, "normalize", d.Normalize, "unicode normalization before encoding: none, nfc, nfd, nfkc, nfkd")
	fs.StringVar(&f.LogLevel, "log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&f.LogFormat, "log-format", d.LogFormat, "log format: text or json")
}

// RegisterClient adds the flags used only by binconv.
func (f *Flags) RegisterClient(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&f.Server, "server", "", "binconvd base URL (e.g. http://127.0.0.1:8080); converts locally when empty")
	fs.StringVar(&f.Clipboard, "clipboard", d.Clipboard, "clipboard: system, memory or none")
	fs.DurationVar(&f.CopiedFor, "copied-for", d.CopiedFor, "how long the copied indicator stays on")
	fs.DurationVar(&f.Timeout, "timeout", d.Timeout, "request timeout when --server is set")
}

// RegisterDaemon adds the flags used only by binconvd.
func (f *Flags) RegisterDaemon(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&f.Listen, "listen", d.Listen, "listen address")
	fs.IntVar(&f.MaxSessions, "max-sessions", d.MaxSessions, "maximum live shell sessions")
}

// Load builds a Config from defaults, the config file and the flags in fs.
func (f *Flags) Load(fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()

	home := f.Home
	if home == "" {
		dir, err := DefaultHome()
		if err != nil {
			return cfg, err
		}
		home = dir
	}
	cfg.Home = home

	path := f.ConfigPath
	if path == "" {
		path = filepath.Join(home, ConfigFile)
	}
	if err := LoadFile(path, &cfg); err != nil {
		return cfg, err
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("server", func() { cfg.Server = f.Server })
	set("listen", func() { cfg.Listen = f.Listen })
	set("max-sessions", func() { cfg.MaxSessions = f.MaxSessions })
	set("unit", func() { cfg.Unit = f.Unit })
	set("width", func() { cfg.Width = f.Width })
	set("normalize", func() { cfg.Normalize = f.Normalize })
	set("clipboard", func() { cfg.Clipboard = f.Clipboard })
	set("copied-for", func() { cfg.CopiedFor = f.CopiedFor })
	set("timeout", func() { cfg.Timeout = f.Timeout })
	set("log-level", func() { cfg.LogLevel = f.LogLevel })
	set("log-format", func() { cfg.LogFormat = f.LogFormat })
	return cfg, nil
}
