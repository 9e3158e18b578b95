package gui

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a StateStore that forgets entries nobody touched for a while.
// It stands in for the memory-store garbage collection widgets rely on: a
// widget that stops being drawn eventually loses its state, one that keeps
// being drawn never does.
//
// Usage:
//
//	store := gui.NewFrameStore[gui.TextEditState](600)
//	ui := gui.New(renderer, gui.WithTextEditStore(store))
//
// GUI.End calls Cleanup once per frame. Like the rest of a frame, the store
// is meant to be used from a single goroutine.
type FrameStore[T any] struct {
	states    map[ID]*stateEntry[T]
	frame     uint64
	idleLimit uint64
}

// NewFrameStore creates a store dropping entries that were not read or
// written for more than idleFrames frames. idleFrames == 0 keeps everything.
func NewFrameStore[T any](idleFrames uint64) *FrameStore[T] {
	return &FrameStore[T]{
		states:    make(map[ID]*stateEntry[T]),
		idleLimit: idleFrames,
	}
}

// Get retrieves state for the given ID and marks it as used this frame.
func (s *FrameStore[T]) Get(id ID) (T, bool) {
	entry, ok := s.states[id]
	if !ok {
		var zero T
		return zero, false
	}
	entry.lastFrame = s.frame
	return entry.value, true
}

// Set creates or updates the entry and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = s.frame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: s.frame}
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// Cleanup advances the store to frame and removes idle entries.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.frame = frame
	if s.idleLimit == 0 || frame <= s.idleLimit {
		return
	}
	threshold := frame - s.idleLimit
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.states = make(map[ID]*stateEntry[T])
}
