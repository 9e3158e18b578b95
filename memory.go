package gui

import "fmt"

// Memory is the per-context state that outlives a frame: widget state keyed
// by ID and the keyboard focus registry.
type Memory struct {
	// TextEdit holds cursor positions for text editors.
	TextEdit StateStore[TextEditState]

	kbFocusID           ID
	kbFocusAtFrameStart ID
}

// NewMemory creates memory backed by the given text edit store.
// A nil store gets an in-memory map.
func NewMemory(textEdit StateStore[TextEditState]) *Memory {
	if textEdit == nil {
		textEdit = NewMapStore[TextEditState]()
	}
	return &Memory{TextEdit: textEdit}
}

func (m *Memory) beginFrame() {
	m.kbFocusAtFrameStart = m.kbFocusID
}

// endFrame runs store housekeeping. Flush errors are returned, cleanup
// never fails.
func (m *Memory) endFrame(frame uint64) error {
	if c, ok := m.TextEdit.(Cleanable); ok {
		c.Cleanup(frame)
	}
	if f, ok := m.TextEdit.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush text edit state: %w", err)
		}
	}
	return nil
}
