// Package clipboard provides domain.Clipboard implementations: System, which
// writes to the desktop clipboard through github.com/atotto/clipboard, and
// Memory, which keeps the last copied text in process.
package clipboard
