package gui

// CursorIcon is the mouse cursor shape the GUI asks the platform to show.
type CursorIcon int

const (
	CursorIconDefault CursorIcon = iota
	CursorIconText
)

func (c CursorIcon) String() string {
	switch c {
	case CursorIconText:
		return "Text"
	default:
		return "Default"
	}
}

// Output is what a frame hands back to the platform layer.
type Output struct {
	// CopiedText is non-empty when a widget copied text this frame.
	CopiedText string

	// CursorIcon is the pointer shape to show until the next frame.
	CursorIcon CursorIcon

	// NeedsRepaint asks the application to run another frame soon even
	// without new input (e.g. to animate a blinking caret).
	NeedsRepaint bool
}
