package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.yaml.in/yaml/v4"

	"binconv/internal/converter"
	"binconv/internal/domain"
	"binconv/internal/httpapi"
	"binconv/internal/shell"
)

// ConfigFile is the name of the optional config file inside Home.
const ConfigFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string        `yaml:"-"`            // config directory, e.g. $HOME/.binconv
	Server      string        `yaml:"server"`       // daemon base URL; empty converts locally
	Listen      string        `yaml:"listen"`       // daemon listen address
	MaxSessions int           `yaml:"max_sessions"` // daemon cap on live shell sessions
	Unit        string        `yaml:"unit"`         // utf16, rune or byte
	Width       int           `yaml:"width"`        // minimum digits per token
	Normalize   string        `yaml:"normalize"`    // none, nfc, nfd, nfkc, nfkd
	Clipboard   string        `yaml:"clipboard"`    // system, memory or none
	CopiedFor   time.Duration `yaml:"copied_for"`   // how long "Copied!" shows
	Timeout     time.Duration `yaml:"timeout"`      // per-request timeout for the remote client
	LogLevel    string        `yaml:"log_level"`    // debug, info, warn, error
	LogFormat   string        `yaml:"log_format"`   // text or json

	HTTP *http.Client `yaml:"-"` // optional; defaults to a client with Timeout
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Listen:      ":8080",
		MaxSessions: httpapi.DefaultMaxSessions,
		Unit:        string(domain.UnitUTF16),
		Width:       converter.DefaultWidth,
		Normalize:   string(domain.NormNone),
		Clipboard:   "system",
		CopiedFor:   shell.DefaultCopiedFor,
		Timeout:     10 * time.Second,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// DefaultHome returns ~/.binconv.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".binconv"), nil
}

// LoadFile overlays the YAML file at path onto cfg. A missing file is not an
// error; fields absent from the file keep their current values.
func LoadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := domain.ParseUnit(c.Unit); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := domain.ParseNormalization(c.Normalize); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Width < 1 || c.Width > converter.MaxWidth {
		result = multierror.Append(result, fmt.Errorf("width %d out of range 1..%d", c.Width, converter.MaxWidth))
	}
	switch c.Clipboard {
	case "system", "memory", "none":
	default:
		result = multierror.Append(result, fmt.Errorf("unknown clipboard %q (want system, memory or none)", c.Clipboard))
	}
	if c.CopiedFor <= 0 {
		result = multierror.Append(result, fmt.Errorf("copied_for must be positive, got %s", c.CopiedFor))
	}
	if c.MaxSessions < 1 {
		result = multierror.Append(result, fmt.Errorf("max_sessions must be positive, got %d", c.MaxSessions))
	}
	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		result = multierror.Append(result, fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat))
	}
	if c.Server != "" {
		u, err := url.Parse(c.Server)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("server: %w", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			result = multierror.Append(result, fmt.Errorf("server %q must be an http or https URL", c.Server))
		}
	}
	return result.ErrorOrNil()
}

// ConverterOptions translates the config into converter options.
func (c Config) ConverterOptions() ([]converter.Option, error) {
	unit, err := domain.ParseUnit(c.Unit)
	if err != nil {
		return nil, err
	}
	n, err := domain.ParseNormalization(c.Normalize)
	if err != nil {
		return nil, err
	}
	return []converter.Option{
		converter.WithUnit(unit),
		converter.WithWidth(c.Width),
		converter.WithNormalization(n),
	}, nil
}
