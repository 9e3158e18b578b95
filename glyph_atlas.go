package gui

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Atlas dimensions in pixels. Single-channel coverage, one texel per pixel.
const (
	atlasWidth   = 1024
	atlasHeight  = 1024
	atlasPadding = 1
)

type glyphKey struct {
	face font.Face
	r    rune
}

// atlasGlyph is a rasterized glyph: where it sits relative to the pen on the
// baseline, and where it lives in the atlas.
type atlasGlyph struct {
	bounds         image.Rectangle
	u0, v0, u1, v1 float32
}

// GlyphAtlas rasterizes glyphs on demand into one alpha texture using shelf
// packing. Renderers re-upload Image whenever Version changes.
type GlyphAtlas struct {
	img     *image.Alpha
	glyphs  map[glyphKey]*atlasGlyph
	shelfX  int
	shelfY  int
	shelfH  int
	version uint64
	full    bool
}

// NewGlyphAtlas creates an empty atlas.
func NewGlyphAtlas() *GlyphAtlas {
	return &GlyphAtlas{
		img:    image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight)),
		glyphs: make(map[glyphKey]*atlasGlyph),
	}
}

// Image returns the coverage texture.
func (a *GlyphAtlas) Image() *image.Alpha { return a.img }

// Version increases every time new glyphs are rasterized.
func (a *GlyphAtlas) Version() uint64 { return a.version }

// Len returns the number of cached glyphs, blank ones included.
func (a *GlyphAtlas) Len() int { return len(a.glyphs) }

// glyph returns the cached glyph for r, rasterizing it first if needed.
// Glyphs without ink (spaces) and glyphs that no longer fit return nil.
func (a *GlyphAtlas) glyph(face font.Face, r rune) *atlasGlyph {
	key := glyphKey{face: face, r: r}
	if g, ok := a.glyphs[key]; ok {
		return g
	}

	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		a.glyphs[key] = nil
		return nil
	}
	w, h := dr.Dx(), dr.Dy()
	if w == 0 || h == 0 {
		a.glyphs[key] = nil
		return nil
	}

	x, y, ok := a.allocate(w, h)
	if !ok {
		if !a.full {
			guiLogger.Warn("glyph atlas full", "glyphs", len(a.glyphs))
			a.full = true
		}
		return nil
	}

	target := image.Rect(x, y, x+w, y+h)
	xdraw.DrawMask(a.img, target, image.White, image.Point{}, mask, maskp, xdraw.Src)

	g := &atlasGlyph{
		bounds: dr,
		u0:     float32(x) / atlasWidth,
		v0:     float32(y) / atlasHeight,
		u1:     float32(x+w) / atlasWidth,
		v1:     float32(y+h) / atlasHeight,
	}
	a.glyphs[key] = g
	a.version++
	return g
}

// allocate reserves a w×h cell, opening a new shelf when the current one is
// out of room.
func (a *GlyphAtlas) allocate(w, h int) (x, y int, ok bool) {
	w += atlasPadding
	h += atlasPadding
	if w > atlasWidth || h > atlasHeight {
		return 0, 0, false
	}
	if a.shelfX+w > atlasWidth {
		a.shelfY += a.shelfH
		a.shelfX = 0
		a.shelfH = 0
	}
	if a.shelfY+h > atlasHeight {
		return 0, 0, false
	}
	x, y = a.shelfX, a.shelfY
	a.shelfX += w
	a.shelfH = max(a.shelfH, h)
	return x, y, true
}
