package gui

import (
	"sync"

	"github.com/atotto/clipboard"
)

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs; the GLFW
// backend ships one that uses the window's clipboard.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// DefaultClipboard returns the OS clipboard when one is reachable, otherwise
// a process-local memory clipboard.
func DefaultClipboard() ClipboardProvider {
	if clipboard.Unsupported {
		return &MemClipboard{}
	}
	return SystemClipboard{}
}

// SystemClipboard talks to the OS clipboard through xclip/xsel, pbcopy or
// the Windows API.
type SystemClipboard struct{}

// GetText implements ClipboardProvider.
func (SystemClipboard) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		guiLogger.Warn("clipboard read failed", "err", err)
		return ""
	}
	return text
}

// SetText implements ClipboardProvider.
func (SystemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		guiLogger.Warn("clipboard write failed", "err", err)
	}
}

// MemClipboard is a memory-backed clipboard, useful for tests and for
// platforms without a system clipboard.
type MemClipboard struct {
	mu   sync.Mutex
	text string
}

// GetText implements ClipboardProvider.
func (m *MemClipboard) GetText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// SetText implements ClipboardProvider.
func (m *MemClipboard) SetText(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}
