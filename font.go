package gui

import (
	"fmt"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextStyle selects one of the fonts configured on a Fonts set.
type TextStyle int

const (
	TextStyleSmall TextStyle = iota
	TextStyleBody
	TextStyleButton
	TextStyleHeading
	TextStyleMonospace
	textStyleCount
)

func (s TextStyle) String() string {
	switch s {
	case TextStyleSmall:
		return "small"
	case TextStyleBody:
		return "body"
	case TextStyleButton:
		return "button"
	case TextStyleHeading:
		return "heading"
	case TextStyleMonospace:
		return "monospace"
	default:
		return fmt.Sprintf("TextStyle(%d)", int(s))
	}
}

// ParseTextStyle maps a style name (as produced by String) back to a TextStyle.
func ParseTextStyle(name string) (TextStyle, error) {
	for s := TextStyle(0); s < textStyleCount; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown text style %q", name)
}

// Font is the layout engine for one text style.
//
// The GUI package does not depend on any concrete font implementation.
// FaceFont covers anything golang.org/x/image/font can open; tests and
// custom renderers may inject their own.
type Font interface {
	// LineSpacing is the vertical advance between successive rows.
	LineSpacing() float32

	// LayoutSingleLine lays text out without wrapping.
	LayoutSingleLine(text string) *Galley

	// LayoutMultiline lays text out wrapping rows at maxWidth pixels.
	LayoutMultiline(text string, maxWidth float32) *Galley
}

// GlyphSource is implemented by fonts whose glyphs can be rasterized into
// the glyph atlas. Fonts that don't implement it still lay out, but their
// glyph runs are not tessellated.
type GlyphSource interface {
	Face() font.Face
	Ascent() float32
}

// Fonts maps every TextStyle to a Font.
type Fonts struct {
	fonts [textStyleCount]Font
}

// NewFonts returns a set where every style uses f.
func NewFonts(f Font) *Fonts {
	fs := &Fonts{}
	for i := range fs.fonts {
		fs.fonts[i] = f
	}
	return fs
}

// Set replaces the font used for style.
func (fs *Fonts) Set(style TextStyle, f Font) {
	if style < 0 || style >= textStyleCount || f == nil {
		return
	}
	fs.fonts[style] = f
}

// Get returns the font for style, falling back to the body font.
func (fs *Fonts) Get(style TextStyle) Font {
	if style < 0 || style >= textStyleCount {
		style = TextStyleBody
	}
	return fs.fonts[style]
}

// DefaultFonts builds the Go font family at typical UI sizes. If the
// embedded fonts can't be parsed it falls back to the 7x13 bitmap face.
func DefaultFonts() *Fonts {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		guiLogger.Warn("go regular font unusable, using basic font", "err", err)
		return NewFonts(NewFaceFont(basicfont.Face7x13))
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		guiLogger.Warn("go mono font unusable, using basic font", "err", err)
		return NewFonts(NewFaceFont(basicfont.Face7x13))
	}

	sizes := [textStyleCount]struct {
		f    *opentype.Font
		size float64
	}{
		TextStyleSmall:     {regular, 10},
		TextStyleBody:      {regular, 14},
		TextStyleButton:    {regular, 14},
		TextStyleHeading:   {regular, 20},
		TextStyleMonospace: {mono, 13},
	}

	fs := NewFonts(NewFaceFont(basicfont.Face7x13))
	for style, s := range sizes {
		face, err := opentype.NewFace(s.f, &opentype.FaceOptions{
			Size:    s.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			guiLogger.Warn("font face unusable", "style", TextStyle(style), "err", err)
			continue
		}
		fs.Set(TextStyle(style), NewFaceFont(face))
	}
	return fs
}

// FaceFont adapts a font.Face to the Font interface.
type FaceFont struct {
	face        font.Face
	lineSpacing float32
	ascent      float32
}

// NewFaceFont wraps face.
func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	return &FaceFont{
		face:        face,
		lineSpacing: fixedToFloat(m.Height),
		ascent:      fixedToFloat(m.Ascent),
	}
}

// Face returns the wrapped face.
func (f *FaceFont) Face() font.Face { return f.face }

// Ascent returns the distance from the top of a row to the baseline.
func (f *FaceFont) Ascent() float32 { return f.ascent }

// LineSpacing implements Font.
func (f *FaceFont) LineSpacing() float32 { return f.lineSpacing }

// LayoutSingleLine implements Font. Explicit newlines still start new rows.
func (f *FaceFont) LayoutSingleLine(text string) *Galley {
	return layoutGalley(text, f.lineSpacing, f.advance, 0)
}

// LayoutMultiline implements Font.
func (f *FaceFont) LayoutMultiline(text string, maxWidth float32) *Galley {
	if maxWidth <= 0 {
		maxWidth = 0
	}
	return layoutGalley(text, f.lineSpacing, f.advance, maxWidth)
}

// advance returns how far the pen moves for r when it follows prev,
// kerning included. Glyphs missing from the face take the width of the
// replacement character.
func (f *FaceFont) advance(prev, r rune) float32 {
	var kern fixed.Int26_6
	if prev != 0 {
		kern = f.face.Kern(prev, r)
	}
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		adv, _ = f.face.GlyphAdvance(unicode.ReplacementChar)
	}
	return fixedToFloat(kern + adv)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
