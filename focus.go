package gui

// Keyboard focus registry.
//
// At most one widget holds keyboard focus. Every operation is total and
// idempotent: requesting focus twice is the same as once, and surrendering
// focus the caller does not hold does nothing.

// RequestKbFocus gives keyboard focus to id.
func (m *Memory) RequestKbFocus(id ID) {
	if m.kbFocusID == id {
		return
	}
	if guiVerbose() {
		guiLogger.Debug("kb focus requested", "id", id, "previous", m.kbFocusID)
	}
	m.kbFocusID = id
}

// SurrenderKbFocus releases keyboard focus if id holds it.
func (m *Memory) SurrenderKbFocus(id ID) {
	if m.kbFocusID != id || id == 0 {
		return
	}
	if guiVerbose() {
		guiLogger.Debug("kb focus surrendered", "id", id)
	}
	m.kbFocusID = 0
}

// HasKbFocus reports whether id currently holds keyboard focus.
func (m *Memory) HasKbFocus(id ID) bool {
	return id != 0 && m.kbFocusID == id
}

// LostKbFocus reports whether id held keyboard focus when the frame began
// and no longer does.
func (m *Memory) LostKbFocus(id ID) bool {
	return id != 0 && m.kbFocusAtFrameStart == id && m.kbFocusID != id
}

// KbFocusID returns the focused widget, or 0.
func (m *Memory) KbFocusID() ID {
	return m.kbFocusID
}

// HasAnyKbFocus reports whether some widget wants keyboard input.
// Applications use this to decide whether hotkeys should fire.
func (m *Memory) HasAnyKbFocus() bool {
	return m.kbFocusID != 0
}
