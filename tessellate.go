package gui

import "math"

// tessellator turns paint commands into triangles.
type tessellator struct {
	fonts     *Fonts
	atlas     *GlyphAtlas
	textureID uint32

	quads []GlyphQuad
}

// Tessellate appends the triangles for cmds to dl. Glyphs are rasterized
// into atlas as needed and sampled from textureID.
func Tessellate(dl *DrawList, cmds []PaintCmd, fonts *Fonts, atlas *GlyphAtlas, textureID uint32) {
	t := &tessellator{fonts: fonts, atlas: atlas, textureID: textureID}
	for _, cmd := range cmds {
		t.add(dl, cmd)
	}
}

func (t *tessellator) add(dl *DrawList, cmd PaintCmd) {
	switch c := cmd.(type) {
	case RectCmd:
		r := c.Rect
		dl.AddRectRounded(r.X, r.Y, r.W, r.H, c.CornerRadius, c.Fill)
		if c.Stroke.Visible() {
			dl.AddRectOutline(r.X, r.Y, r.W, r.H, c.CornerRadius, c.Stroke.Color, c.Stroke.Width)
		}
	case LineSegmentCmd:
		if c.Stroke.Visible() {
			a, b := c.Points[0], c.Points[1]
			dl.AddLine(a.X, a.Y, b.X, b.Y, c.Stroke.Color, c.Stroke.Width)
		}
	case TextCmd:
		t.addText(dl, c)
	default:
		guiLogger.Warn("unknown paint command", "type", cmd)
	}
}

func (t *tessellator) addText(dl *DrawList, c TextCmd) {
	if c.Galley == nil || t.fonts == nil || t.atlas == nil {
		return
	}
	src, ok := t.fonts.Get(c.TextStyle).(GlyphSource)
	if !ok {
		return
	}
	face := src.Face()

	t.quads = t.quads[:0]
	for _, row := range c.Galley.Rows {
		// Snap the baseline to whole pixels so glyph coverage maps 1:1.
		baseline := float32(math.Round(float64(c.Pos.Y + row.Y + src.Ascent())))
		for i, r := range row.Runes {
			g := t.atlas.glyph(face, r)
			if g == nil {
				continue
			}
			penX := float32(math.Round(float64(c.Pos.X + row.XOffsets[i])))
			t.quads = append(t.quads, GlyphQuad{
				X0: penX + float32(g.bounds.Min.X),
				Y0: baseline + float32(g.bounds.Min.Y),
				X1: penX + float32(g.bounds.Max.X),
				Y1: baseline + float32(g.bounds.Max.Y),
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
	}
	dl.AddGlyphQuads(t.textureID, t.quads, c.Color)
}
