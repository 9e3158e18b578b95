package gui

// Stroke is a line width and color.
type Stroke struct {
	Width float32
	Color uint32
}

// Visible reports whether drawing the stroke would produce any pixels.
func (s Stroke) Visible() bool {
	return s.Width > 0 && s.Color&0xFF000000 != 0
}

// PaintCmd is one shape queued for the frame. Commands are tessellated into
// a DrawList in submission order when the frame ends.
type PaintCmd interface {
	isPaintCmd()
}

// RectCmd fills and/or outlines a rectangle.
type RectCmd struct {
	Rect         Rect
	CornerRadius float32
	Fill         uint32
	Stroke       Stroke
}

// LineSegmentCmd draws a straight line.
type LineSegmentCmd struct {
	Points [2]Vec2
	Stroke Stroke
}

// TextCmd draws a laid-out galley with its top-left at Pos.
type TextCmd struct {
	Pos       Vec2
	Galley    *Galley
	TextStyle TextStyle
	Color     uint32
}

func (RectCmd) isPaintCmd()        {}
func (LineSegmentCmd) isPaintCmd() {}
func (TextCmd) isPaintCmd()        {}

// Painter queues shapes on the frame's paint list.
type Painter struct {
	ctx *Context
}

// Add queues an arbitrary command.
func (p Painter) Add(cmd PaintCmd) {
	p.ctx.paint = append(p.ctx.paint, cmd)
}

// Rect queues a rectangle with an optional fill and outline.
func (p Painter) Rect(rect Rect, cornerRadius float32, fill uint32, stroke Stroke) {
	p.Add(RectCmd{Rect: rect, CornerRadius: cornerRadius, Fill: fill, Stroke: stroke})
}

// LineSegment queues a line from points[0] to points[1].
func (p Painter) LineSegment(points [2]Vec2, stroke Stroke) {
	p.Add(LineSegmentCmd{Points: points, Stroke: stroke})
}

// Galley queues laid-out text.
func (p Painter) Galley(pos Vec2, galley *Galley, style TextStyle, color uint32) {
	p.Add(TextCmd{Pos: pos, Galley: galley, TextStyle: style, Color: color})
}
