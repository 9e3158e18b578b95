package gui

// Label is a block of non-interactive text.
type Label struct {
	text      string
	textStyle TextStyle
	hasStyle  bool
	color     uint32
	wrap      bool
}

// NewLabel returns a label for text.
func NewLabel(text string) Label {
	return Label{text: text}
}

// TextStyle picks the font.
func (l Label) TextStyle(style TextStyle) Label {
	l.textStyle = style
	l.hasStyle = true
	return l
}

// TextColor overrides the text color. 0 uses the style's color.
func (l Label) TextColor(color uint32) Label {
	l.color = color
	return l
}

// Wrap wraps the label at the available width.
func (l Label) Wrap(wrap bool) Label {
	l.wrap = wrap
	return l
}

// Show draws the label.
func (l Label) Show(ui *UI) Response {
	style := ui.Style()
	textStyle := style.BodyTextStyle
	if l.hasStyle {
		textStyle = l.textStyle
	}
	font := ui.Fonts().Get(textStyle)

	var galley *Galley
	if l.wrap {
		galley = font.LayoutMultiline(l.text, ui.Available().W)
	} else {
		galley = font.LayoutSingleLine(l.text)
	}

	id := ui.MakePositionID()
	rect := ui.AllocateSpace(galley.Size)
	resp := ui.Ctx().Interact(rect, id, SenseNothing())

	color := l.color
	if color == 0 {
		color = style.Visuals.OverrideTextColor
	}
	if color == 0 {
		color = style.Visuals.Widgets.Inactive.TextColor()
	}
	ui.Painter().Galley(rect.Min(), galley, textStyle, color)
	return resp
}
