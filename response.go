package gui

// Sense says which kinds of interaction a widget listens for.
type Sense struct {
	Click bool
	Drag  bool
}

// SenseNothing returns a sense that only tracks hovering.
func SenseNothing() Sense { return Sense{} }

// SenseClick returns a sense for clicks.
func SenseClick() Sense { return Sense{Click: true} }

// SenseClickAndDrag returns a sense for clicks and drags.
func SenseClickAndDrag() Sense { return Sense{Click: true, Drag: true} }

// interactive reports whether the sense can make a widget active.
func (s Sense) interactive() bool { return s.Click || s.Drag }

// Response is what a widget reports about one frame of interaction.
type Response struct {
	ID    ID
	Rect  Rect
	Sense Sense

	// Hovered is set while the pointer is over the widget and no other
	// widget holds the pointer.
	Hovered bool

	// Pressed is set on the frame the primary button went down on the widget.
	Pressed bool

	// Clicked is set on the frame a click on the widget completed.
	Clicked bool

	// Active is set while the widget holds the pointer (pressed, not yet released).
	Active bool

	// LostKbFocus is set when the widget held keyboard focus on entry to
	// Show and no longer holds it on return.
	LostKbFocus bool
}
