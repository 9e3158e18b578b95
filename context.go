package gui

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Input is read-only during the frame.
	Input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	style  Style
	fonts  *Fonts
	memory *Memory
	output Output
	paint  []PaintCmd
	root   *UI

	// activeID is the widget holding the pointer between press and release.
	activeID ID
}

func newContext(style Style, fonts *Fonts, memory *Memory) *Context {
	return &Context{
		style:  style,
		fonts:  fonts,
		memory: memory,
		paint:  make([]PaintCmd, 0, 64),
	}
}

// reset prepares the context for a new frame.
func (ctx *Context) reset(input *InputState, displaySize Vec2, deltaTime float32) {
	if input == nil {
		input = NewInputState()
	}
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.output = Output{}
	ctx.paint = ctx.paint[:0]
	ctx.root = newUI(ctx, IDFrom("root"), Rect{W: displaySize.X, H: displaySize.Y})
	ctx.memory.beginFrame()
}

// Style returns the style for this frame. Changes last until the frame ends.
func (ctx *Context) Style() *Style {
	return &ctx.style
}

// Fonts returns the font set.
func (ctx *Context) Fonts() *Fonts {
	return ctx.fonts
}

// Memory returns the state that persists between frames.
func (ctx *Context) Memory() *Memory {
	return ctx.memory
}

// Output returns what this frame will hand back to the platform.
func (ctx *Context) Output() *Output {
	return &ctx.output
}

// RequestRepaint asks for another frame even without new input.
func (ctx *Context) RequestRepaint() {
	ctx.output.NeedsRepaint = true
}

// Painter returns a painter queuing shapes for this frame.
func (ctx *Context) Painter() Painter {
	return Painter{ctx: ctx}
}

// PaintCommands returns the shapes queued so far this frame.
func (ctx *Context) PaintCommands() []PaintCmd {
	return ctx.paint
}

// RootUI returns the top-level scope covering the whole display.
func (ctx *Context) RootUI() *UI {
	return ctx.root
}

// ActiveID returns the widget holding the pointer, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.activeID
}

// Interact checks how the pointer relates to a widget occupying rect.
//
// A widget becomes active when the primary button goes down over it and
// stays active until the button is released anywhere. While a widget is
// active no other widget reports hover.
func (ctx *Context) Interact(rect Rect, id ID, sense Sense) Response {
	resp := Response{ID: id, Rect: rect, Sense: sense}
	mouse := ctx.Input.Mouse

	over := mouse.HasPos && rect.Contains(mouse.Pos)
	resp.Hovered = over && (ctx.activeID == 0 || ctx.activeID == id)

	if !sense.interactive() {
		return resp
	}

	if resp.Hovered && mouse.Pressed {
		ctx.activeID = id
		resp.Pressed = true
	}
	resp.Active = id != 0 && ctx.activeID == id
	resp.Clicked = resp.Active && over && mouse.Click
	return resp
}

// endFrame releases the pointer once the button is up.
func (ctx *Context) endFrame() {
	if !ctx.Input.Mouse.Down {
		ctx.activeID = 0
	}
}
