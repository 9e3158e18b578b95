package gui

import "math"

// TextEdit is an editable text field.
//
// Build one per frame with SingleLine or MultiLine, configure it with the
// chainable setters and call Show (or UI.Add). The only state kept between
// frames is the cursor position, stored in Memory under the widget's ID.
//
//	resp := gui.SingleLine(&name).IDSource("name").Show(ui)
//	if resp.LostKbFocus {
//		commit(name)
//	}
type TextEdit struct {
	text *string

	id       ID
	hasID    bool
	idSource any

	textStyle    TextStyle
	hasTextStyle bool

	textColor    uint32
	hasTextColor bool

	multiline bool
	enabled   bool

	desiredWidth    float32
	hasDesiredWidth bool
	desiredRows     int
}

// SingleLine returns an editor that never wraps. Enter ends editing.
func SingleLine(text *string) TextEdit {
	return TextEdit{text: text, enabled: true, desiredRows: 1}
}

// MultiLine returns an editor that wraps at the available width. Enter
// inserts a newline.
func MultiLine(text *string) TextEdit {
	return TextEdit{text: text, multiline: true, enabled: true, desiredRows: 4}
}

// ID sets an explicit identity.
func (te TextEdit) ID(id ID) TextEdit {
	te.id = id
	te.hasID = true
	return te
}

// IDSource derives the identity from source within the enclosing scope.
func (te TextEdit) IDSource(source any) TextEdit {
	te.idSource = source
	return te
}

// TextStyle picks the font. Defaults to Style.BodyTextStyle.
func (te TextEdit) TextStyle(style TextStyle) TextEdit {
	te.textStyle = style
	te.hasTextStyle = true
	return te
}

// TextColor overrides the text color.
func (te TextEdit) TextColor(color uint32) TextEdit {
	te.textColor = color
	te.hasTextColor = true
	return te
}

// TextColorOpt overrides the text color when color is non-nil and clears
// the override otherwise.
func (te TextEdit) TextColorOpt(color *uint32) TextEdit {
	if color == nil {
		te.textColor, te.hasTextColor = 0, false
		return te
	}
	return te.TextColor(*color)
}

// Enabled turns interaction on or off. A disabled editor gives up focus.
func (te TextEdit) Enabled(enabled bool) TextEdit {
	te.enabled = enabled
	return te
}

// DesiredWidth sets the minimum width in pixels, capped at the available
// width. 0 shrinks the editor to its text.
func (te TextEdit) DesiredWidth(width float32) TextEdit {
	te.desiredWidth = width
	te.hasDesiredWidth = true
	return te
}

// DesiredRows sets the minimum height in rows. Values below 1 count as 1.
func (te TextEdit) DesiredRows(rows int) TextEdit {
	te.desiredRows = rows
	return te
}

// resolveID picks the explicit ID, then the ID source, then the layout
// position.
func (te TextEdit) resolveID(ui *UI) ID {
	switch {
	case te.hasID:
		return te.id
	case te.idSource != nil:
		return ui.MakePersistentID(te.idSource)
	default:
		return ui.MakePositionID()
	}
}

// Show runs the editor for this frame.
func (te TextEdit) Show(ui *UI) Response {
	text := te.text
	if text == nil {
		text = new(string)
	}

	id := te.resolveID(ui)
	mem := ui.Memory()
	state, _ := mem.TextEdit.Get(id)
	hadFocus := mem.HasKbFocus(id)

	style := ui.Style()
	textStyle := style.BodyTextStyle
	if te.hasTextStyle {
		textStyle = te.textStyle
	}
	font := ui.Fonts().Get(textStyle)
	lineSpacing := font.LineSpacing()
	availableWidth := ui.Available().W

	layout := func() *Galley {
		if te.multiline {
			return font.LayoutMultiline(*text, availableWidth)
		}
		return font.LayoutSingleLine(*text)
	}
	galley := layout()

	desiredWidth := style.Spacing.TextEditWidth
	if te.hasDesiredWidth {
		desiredWidth = te.desiredWidth
	}
	rows := max(te.desiredRows, 1)
	size := Vec2{
		X: maxf(galley.Size.X, minf(desiredWidth, availableWidth)),
		Y: maxf(galley.Size.Y, float32(rows)*lineSpacing),
	}
	rect := ui.AllocateSpace(size)

	sense := SenseNothing()
	if te.enabled {
		sense = SenseClickAndDrag()
	}
	resp := ui.Ctx().Interact(rect, id, sense)

	mouse := ui.Input().Mouse
	if !te.enabled {
		mem.SurrenderKbFocus(id)
	} else {
		if resp.Clicked {
			mem.RequestKbFocus(id)
			if mouse.HasPos {
				at := galley.CharAt(mouse.Pos.Sub(rect.Min()))
				state.SetCursor(clampCursor(at.CharIdx, charCount(*text)))
			}
			if guiVerbose() {
				guiLogger.Debug("text edit clicked", "id", id, "cursor", state.Cursor)
			}
		} else if mouse.Click || (mouse.Pressed && !resp.Hovered) {
			mem.SurrenderKbFocus(id)
		}
		if resp.Hovered {
			ui.Output().CursorIcon = CursorIconText
		}
	}

	if te.enabled && mem.HasKbFocus(id) {
		n := charCount(*text)
		res := interpretEvents(text, clampCursor(state.CursorOr(n), n), ui.Input().Events, te.multiline)
		state.SetCursor(res.cursor)
		if res.hasCopy {
			ui.Output().CopiedText = res.copied
		}
		if res.surrendered {
			mem.SurrenderKbFocus(id)
		}
		if res.mutated {
			galley = layout()
		}
	}

	painter := ui.Painter()
	visuals := style.Interact(resp)
	painter.Rect(rect.Expand(2), visuals.CornerRadius, style.Visuals.DarkBgColor, visuals.BgStroke)

	if mem.HasKbFocus(id) {
		hz := style.Visuals.CursorBlinkHz
		if hz > 0 {
			ui.Ctx().RequestRepaint()
		}
		if caretVisible(ui.Input().Time, hz) {
			cursor := clampCursor(state.CursorOr(charCount(*text)), charCount(*text))
			top := rect.Min().Add(galley.CharStartPos(cursor))
			painter.LineSegment(
				[2]Vec2{top, top.Add(Vec2{Y: lineSpacing})},
				Stroke{Width: style.Visuals.TextCursorWidth, Color: style.Visuals.TextCursorColor},
			)
		}
	}

	color := visuals.TextColor()
	switch {
	case te.hasTextColor:
		color = te.textColor
	case style.Visuals.OverrideTextColor != 0:
		color = style.Visuals.OverrideTextColor
	}
	painter.Galley(rect.Min(), galley, textStyle, color)

	mem.TextEdit.Set(id, state)

	resp.LostKbFocus = hadFocus && !mem.HasKbFocus(id)
	if resp.LostKbFocus && guiVerbose() {
		guiLogger.Debug("text edit lost focus", "id", id, "chars", charCount(*text))
	}
	return resp
}

// caretVisible reports whether the caret is drawn at time t (seconds). The
// caret is hidden for one of every three phases of a cycle at hz*3.
func caretVisible(t float64, hz float32) bool {
	if hz == 0 {
		return true
	}
	return int64(math.Floor(t*float64(hz)*3))%3 != 0
}
