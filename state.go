package gui

// StateStore persists widget state between frames, keyed by widget identity.
// Unlike ImGui's hidden state, this is explicit and inspectable.
// A missing entry is reported with ok == false; callers fall back to the
// zero value of T.
type StateStore[T any] interface {
	Get(id ID) (T, bool)
	Set(id ID, value T)
}

// Flusher is implemented by stores that buffer writes (e.g. on disk).
// GUI.End calls Flush once per frame.
type Flusher interface {
	Flush() error
}

// Cleanable is implemented by stores that need frame-based cleanup.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// MapStore is a simple in-memory StateStore implementation.
type MapStore[T any] map[ID]T

// NewMapStore returns an empty MapStore.
func NewMapStore[T any]() MapStore[T] {
	return make(MapStore[T])
}

// Get retrieves a value from the store.
func (m MapStore[T]) Get(id ID) (T, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStore[T]) Set(id ID, value T) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStore[T]) Delete(id ID) {
	delete(m, id)
}

// TextEditState is everything a text editor keeps between frames.
type TextEditState struct {
	// Cursor is a character offset (Unicode scalar values, not bytes).
	// Meaningful only when HasCursor is set; an unset cursor means
	// "place at the end of the text on focus".
	Cursor    int
	HasCursor bool
}

// CursorOr returns the cursor, or def if none was stored yet.
func (s TextEditState) CursorOr(def int) int {
	if !s.HasCursor {
		return def
	}
	return s.Cursor
}

// SetCursor stores a cursor position.
func (s *TextEditState) SetCursor(cursor int) {
	s.Cursor = cursor
	s.HasCursor = true
}
