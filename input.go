package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyZ
	KeyCount
)

// maxClickDistance is how far the pointer may travel between press and
// release and still count as a click.
const maxClickDistance float32 = 6

// EventKind tags an Event.
type EventKind int

const (
	EventCopy EventKind = iota
	EventCut
	EventText
	EventKey
)

func (k EventKind) String() string {
	switch k {
	case EventCopy:
		return "Copy"
	case EventCut:
		return "Cut"
	case EventText:
		return "Text"
	case EventKey:
		return "Key"
	default:
		return "?"
	}
}

// Event is one discrete input event delivered during a frame.
// Text is set for EventText; Key and Pressed for EventKey.
type Event struct {
	Kind    EventKind
	Text    string
	Key     Key
	Pressed bool
}

// CopyEvent returns a copy request.
func CopyEvent() Event { return Event{Kind: EventCopy} }

// CutEvent returns a cut request.
func CutEvent() Event { return Event{Kind: EventCut} }

// TextEvent returns committed text to insert.
func TextEvent(text string) Event { return Event{Kind: EventText, Text: text} }

// KeyEvent returns a key transition.
func KeyEvent(key Key, pressed bool) Event {
	return Event{Kind: EventKey, Key: key, Pressed: pressed}
}

// MouseInput is the pointer state for the current frame.
type MouseInput struct {
	// Pos is valid only when HasPos is set (the pointer may be outside the window).
	Pos    Vec2
	HasPos bool

	Down     bool // Primary button is held
	Pressed  bool // Primary button went down this frame
	Released bool // Primary button went up this frame
	Click    bool // Released this frame close to where it was pressed

	pressOrigin Vec2
}

// InputState holds input for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	Mouse  MouseInput
	Events []Event

	// Time is the wall clock in seconds, used for caret blinking.
	Time float64

	keyDown [KeyCount]bool

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		Events: make([]Event, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	s.Events = s.Events[:0]
	s.Mouse.Pressed = false
	s.Mouse.Released = false
	s.Mouse.Click = false
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.Mouse.Pos = Vec2{x, y}
	s.Mouse.HasPos = true
}

// ClearMousePos marks the pointer as outside the window.
func (s *InputState) ClearMousePos() {
	s.Mouse.HasPos = false
}

// SetMouseButton sets primary mouse button state. Other buttons are ignored.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button != MouseButtonLeft {
		return
	}

	wasDown := s.Mouse.Down
	s.Mouse.Down = down

	if down && !wasDown {
		s.Mouse.Pressed = true
		s.Mouse.pressOrigin = s.Mouse.Pos
	}
	if !down && wasDown {
		s.Mouse.Released = true
		d := s.Mouse.Pos.Sub(s.Mouse.pressOrigin)
		s.Mouse.Click = absf(d.X) <= maxClickDistance && absf(d.Y) <= maxClickDistance
	}
}

// SetKey records a key transition and queues the matching key event.
// Repeats (down while already down) are queued as presses too.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down {
		s.Events = append(s.Events, KeyEvent(key, true))
	} else if wasDown {
		s.Events = append(s.Events, KeyEvent(key, false))
	}
}

// AddText queues committed text.
func (s *InputState) AddText(text string) {
	if text == "" {
		return
	}
	s.Events = append(s.Events, TextEvent(text))
}

// AddEvent queues an arbitrary event.
func (s *InputState) AddEvent(e Event) {
	s.Events = append(s.Events, e)
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyInsert:
		return "Ins"
	case KeyDelete:
		return "Del"
	case KeyBackspace:
		return "Backspace"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyA:
		return "A"
	case KeyC:
		return "C"
	case KeyV:
		return "V"
	case KeyX:
		return "X"
	case KeyZ:
		return "Z"
	default:
		return "?"
	}
}
