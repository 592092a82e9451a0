package clipboard

import (
	"context"
	"errors"
	"sync"

	atotto "github.com/atotto/clipboard"

	"binconv/internal/domain"
)

// ErrUnsupported is returned by System when no clipboard utility is available
// (for example xclip, xsel or wl-copy on Linux).
var ErrUnsupported = errors.New("clipboard: not supported on this system")

// System writes to the operating system clipboard.
type System struct{}

// NewSystem returns the OS clipboard.
func NewSystem() System { return System{} }

// WriteText places text on the clipboard.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(text)
}

// Memory is an in-process clipboard. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
	err  error
}

// WriteText records text, or returns the error set by Fail.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	m.n++
	return nil
}

// Text returns the last copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Fail makes every later write return err. A nil err restores normal writes.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

var (
	_ domain.Clipboard = System{}
	_ domain.Clipboard = (*Memory)(nil)
)
