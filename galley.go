package gui

import (
	"math"
	"strings"
	"unicode"
)

// Galley is a block of laid-out text: rows of glyphs with pixel geometry,
// plus the mappings between character offsets and positions.
// All character indices count Unicode scalar values.
type Galley struct {
	Text string
	Rows []Row
	Size Vec2
}

// Row is one visual row of a galley.
type Row struct {
	// CharStart is the character offset of the first rune on this row.
	CharStart int

	// Runes are the glyphs on this row, without the trailing newline.
	Runes []rune

	// XOffsets[i] is the caret x before Runes[i]; the last entry is the
	// caret x at the end of the row. len(XOffsets) == len(Runes)+1.
	XOffsets []float32

	Y, Height float32

	// EndsWithNewline is set when a '\n' follows this row.
	EndsWithNewline bool
}

// CharCount returns the number of characters on the row, excluding any newline.
func (r Row) CharCount() int { return len(r.Runes) }

// Width returns the pixel width of the row.
func (r Row) Width() float32 {
	if len(r.XOffsets) == 0 {
		return 0
	}
	return r.XOffsets[len(r.XOffsets)-1]
}

// GalleyCursor locates a caret position in a galley.
type GalleyCursor struct {
	CharIdx int
	Row     int
	Column  int
}

// CharCount returns the number of characters in the galley's text.
func (g *Galley) CharCount() int {
	n := 0
	for _, r := range g.Rows {
		n += r.CharCount()
		if r.EndsWithNewline {
			n++
		}
	}
	return n
}

// CharAt returns the insertion point closest to pos (relative to the galley
// origin). Points above the text map to the first row, points below to the
// last one.
func (g *Galley) CharAt(pos Vec2) GalleyCursor {
	if len(g.Rows) == 0 {
		return GalleyCursor{}
	}

	ri := len(g.Rows) - 1
	for i, row := range g.Rows {
		if pos.Y < row.Y+row.Height {
			ri = i
			break
		}
	}
	row := g.Rows[ri]

	best := 0
	bestDist := float32(math.MaxFloat32)
	for i, x := range row.XOffsets {
		if d := absf(x - pos.X); d < bestDist {
			best, bestDist = i, d
		}
	}
	return GalleyCursor{CharIdx: row.CharStart + best, Row: ri, Column: best}
}

// CharStartPos returns the top-left of the caret placed before charIdx,
// relative to the galley origin. Out-of-range indices clamp to the ends.
func (g *Galley) CharStartPos(charIdx int) Vec2 {
	if len(g.Rows) == 0 {
		return Vec2{}
	}
	if charIdx < 0 {
		charIdx = 0
	}
	for _, row := range g.Rows {
		if charIdx <= row.CharStart+row.CharCount() {
			return Vec2{X: row.XOffsets[charIdx-row.CharStart], Y: row.Y}
		}
	}
	last := g.Rows[len(g.Rows)-1]
	return Vec2{X: last.Width(), Y: last.Y}
}

// layoutGalley splits text into paragraphs on '\n' and, when maxWidth > 0,
// wraps each paragraph preferring breaks after whitespace.
func layoutGalley(text string, lineSpacing float32, advance func(prev, r rune) float32, maxWidth float32) *Galley {
	g := &Galley{Text: text}

	paragraphs := strings.Split(text, "\n")
	charIdx := 0
	var y float32

	for pi, para := range paragraphs {
		runes := []rune(para)

		xs := make([]float32, len(runes)+1)
		var prev rune
		for i, r := range runes {
			xs[i+1] = xs[i] + advance(prev, r)
			prev = r
		}

		start := 0
		for {
			end := len(runes)
			if maxWidth > 0 && xs[end]-xs[start] > maxWidth {
				end = wrapPoint(runes, xs, start, maxWidth)
			}

			offsets := make([]float32, end-start+1)
			for i := range offsets {
				offsets[i] = xs[start+i] - xs[start]
			}
			row := Row{
				CharStart: charIdx + start,
				Runes:     runes[start:end],
				XOffsets:  offsets,
				Y:         y,
				Height:    lineSpacing,
			}
			y += lineSpacing

			if end == len(runes) {
				row.EndsWithNewline = pi < len(paragraphs)-1
				g.Rows = append(g.Rows, row)
				break
			}
			g.Rows = append(g.Rows, row)
			start = end
		}

		charIdx += len(runes) + 1
	}

	for _, row := range g.Rows {
		g.Size.X = maxf(g.Size.X, row.Width())
	}
	g.Size.Y = y
	return g
}

// wrapPoint returns where the row starting at start should end. At least one
// rune is always placed so that layout makes progress on narrow widths.
func wrapPoint(runes []rune, xs []float32, start int, maxWidth float32) int {
	end := start + 1
	for end < len(runes) && xs[end+1]-xs[start] <= maxWidth {
		end++
	}
	for j := end; j > start+1; j-- {
		if unicode.IsSpace(runes[j-1]) {
			return j
		}
	}
	return end
}
