package shell

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"binconv/internal/converter"
	"binconv/internal/domain"
)

// DefaultCopiedFor is how long the copied flag stays set after a copy.
const DefaultCopiedFor = 2500 * time.Millisecond

// Option configures a Session.
type Option func(*Session)

// WithClipboard sets the copy target. Without one, Copy always reports false.
func WithClipboard(c domain.Clipboard) Option {
	return func(s *Session) { s.clip = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCopiedFor overrides DefaultCopiedFor.
func WithCopiedFor(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.copiedFor = d
		}
	}
}

// WithMode sets the initial mode. The default is TextToBinary.
func WithMode(m domain.Mode) Option {
	return func(s *Session) { s.mode = m }
}

// Session is safe for concurrent use; updates are applied one at a time.
type Session struct {
	svc       domain.ConversionService
	clip      domain.Clipboard
	log       *slog.Logger
	copiedFor time.Duration

	mu     sync.Mutex
	input  string
	output string
	mode   domain.Mode
	copied bool
	gen    uint64
	timer  *time.Timer
}

// New returns an empty session in TextToBinary mode.
func New(svc domain.ConversionService, opts ...Option) *Session {
	s := &Session{
		svc:       svc,
		log:       slog.New(slog.DiscardHandler),
		copiedFor: DefaultCopiedFor,
		mode:      domain.TextToBinary,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the session.
func (s *Session) State() domain.ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// SetInput replaces the input text.
func (s *Session) SetInput(ctx context.Context, text string) domain.ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
	s.recompute(ctx)
	return s.stateLocked()
}

// SetMode changes the conversion direction. The input is kept.
func (s *Session) SetMode(ctx context.Context, m domain.Mode) domain.ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	s.recompute(ctx)
	return s.stateLocked()
}

// Swap moves the output into the input and flips the mode.
func (s *Session) Swap(ctx context.Context) domain.ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = s.output
	s.mode = s.mode.Other()
	s.recompute(ctx)
	return s.stateLocked()
}

// Clear empties the input, and with it the output.
func (s *Session) Clear(ctx context.Context) domain.ShellState {
	return s.SetInput(ctx, "")
}

// Copy writes the output to the clipboard. It reports whether the copy
// happened; an empty output is not copied and a clipboard failure is only
// logged. The copied flag is not set if the output changed during the write.
func (s *Session) Copy(ctx context.Context) bool {
	s.mu.Lock()
	out := s.output
	s.mu.Unlock()

	if out == "" || s.clip == nil {
		return false
	}
	if err := s.clip.WriteText(ctx, out); err != nil {
		s.log.ErrorContext(ctx, "failed to copy text", "err", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.output != out {
		return true
	}
	s.copied = true
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.copiedFor, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.copied = false
		}
	})
	return true
}

// Close stops the pending copied-flag reset, if any.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// recompute derives the output from input and mode. Caller holds mu.
func (s *Session) recompute(ctx context.Context) {
	if converter.IsBlank(s.input) {
		s.output = ""
		return
	}
	out, err := s.svc.Convert(ctx, s.mode, s.input)
	if err != nil {
		s.log.ErrorContext(ctx, "conversion failed", "mode", s.mode, "err", err)
		s.output = domain.InvalidFormatMessage
		return
	}
	s.output = out
}

func (s *Session) stateLocked() domain.ShellState {
	return domain.ShellState{
		Input:  s.input,
		Output: s.output,
		Mode:   s.mode,
		Copied: s.copied,
	}
}
