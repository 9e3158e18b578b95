package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Widget is anything that can be placed into a UI scope.
type Widget interface {
	Show(ui *UI) Response
}

// UI is a layout scope: a region of the screen, a placement cursor and an
// ID namespace. Widgets allocate space from it top to bottom (or left to
// right in a horizontal scope).
type UI struct {
	ctx     *Context
	id      ID
	maxRect Rect
	cursor  Vec2
	dir     LayoutType

	// minRect grows to cover everything allocated in this scope.
	minRect Rect
	used    bool
}

func newUI(ctx *Context, id ID, maxRect Rect) *UI {
	return &UI{
		ctx:     ctx,
		id:      id,
		maxRect: maxRect,
		cursor:  maxRect.Min(),
	}
}

// Ctx returns the frame context.
func (ui *UI) Ctx() *Context { return ui.ctx }

// ID returns the scope's ID. Persistent IDs derive from it.
func (ui *UI) ID() ID { return ui.id }

// Style returns the frame's style.
func (ui *UI) Style() *Style { return ui.ctx.Style() }

// Fonts returns the frame's fonts.
func (ui *UI) Fonts() *Fonts { return ui.ctx.Fonts() }

// Memory returns the persistent memory.
func (ui *UI) Memory() *Memory { return ui.ctx.Memory() }

// Input returns this frame's input.
func (ui *UI) Input() *InputState { return ui.ctx.Input }

// Output returns this frame's output.
func (ui *UI) Output() *Output { return ui.ctx.Output() }

// Painter returns a painter for this frame.
func (ui *UI) Painter() Painter { return ui.ctx.Painter() }

// Layout returns the stacking direction.
func (ui *UI) Layout() LayoutType { return ui.dir }

// Cursor returns where the next widget will be placed.
func (ui *UI) Cursor() Vec2 { return ui.cursor }

// Available returns the space left between the cursor and the scope's edge.
func (ui *UI) Available() Rect {
	max := ui.maxRect.Max()
	return Rect{
		X: ui.cursor.X,
		Y: ui.cursor.Y,
		W: maxf(0, max.X-ui.cursor.X),
		H: maxf(0, max.Y-ui.cursor.Y),
	}
}

// MinRect returns the bounding box of everything allocated so far.
func (ui *UI) MinRect() Rect { return ui.minRect }

// AllocateSpace reserves a rectangle of the desired size at the cursor and
// advances the cursor past it.
func (ui *UI) AllocateSpace(size Vec2) Rect {
	rect := RectFromMinSize(ui.cursor, size)
	gap := ui.Style().Spacing.ItemSpacing

	switch ui.dir {
	case LayoutHorizontal:
		ui.cursor.X += size.X + gap
	default:
		ui.cursor.Y += size.Y + gap
	}
	ui.expandMinRect(rect)
	return rect
}

func (ui *UI) expandMinRect(r Rect) {
	if !ui.used {
		ui.minRect = r
		ui.used = true
		return
	}
	min := Vec2{minf(ui.minRect.X, r.X), minf(ui.minRect.Y, r.Y)}
	max := Vec2{maxf(ui.minRect.Max().X, r.Max().X), maxf(ui.minRect.Max().Y, r.Max().Y)}
	ui.minRect = RectFromMinSize(min, max.Sub(min))
}

// Add shows w in this scope.
func (ui *UI) Add(w Widget) Response {
	return w.Show(ui)
}

// Child returns a nested scope occupying the remaining space, with its own
// ID namespace derived from idSource. Nothing is allocated in the parent
// until the child is closed with EndChild.
func (ui *UI) Child(idSource any) *UI {
	child := newUI(ui.ctx, ui.id.With(idSource), ui.Available())
	child.dir = ui.dir
	return child
}

// EndChild allocates the space used by child in ui.
func (ui *UI) EndChild(child *UI) Rect {
	if !child.used {
		return Rect{X: ui.cursor.X, Y: ui.cursor.Y}
	}
	size := child.minRect.Max().Sub(ui.cursor)
	return ui.AllocateSpace(Vec2{maxf(0, size.X), maxf(0, size.Y)})
}

// Horizontal lays out the widgets added by fn left to right.
func (ui *UI) Horizontal(fn func(ui *UI)) Rect {
	return ui.withLayout(LayoutHorizontal, fn)
}

// Vertical lays out the widgets added by fn top to bottom.
func (ui *UI) Vertical(fn func(ui *UI)) Rect {
	return ui.withLayout(LayoutVertical, fn)
}

func (ui *UI) withLayout(dir LayoutType, fn func(ui *UI)) Rect {
	child := newUI(ui.ctx, ui.id, ui.Available())
	child.dir = dir
	fn(child)
	return ui.EndChild(child)
}

// TextEditSingleLine shows a single-line editor for text.
func (ui *UI) TextEditSingleLine(text *string) Response {
	return ui.Add(SingleLine(text))
}

// TextEditMultiLine shows a multi-line editor for text.
func (ui *UI) TextEditMultiLine(text *string) Response {
	return ui.Add(MultiLine(text))
}

// Label shows a line of non-interactive text.
func (ui *UI) Label(text string) Response {
	return ui.Add(NewLabel(text))
}
