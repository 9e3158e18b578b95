package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/guitext"
)

func tessellate(cmds ...gui.PaintCmd) (*gui.DrawList, *gui.GlyphAtlas) {
	dl := gui.AcquireDrawList()
	atlas := gui.NewGlyphAtlas()
	gui.Tessellate(dl, cmds, gui.NewFonts(testFont()), atlas, 7)
	dl.Finalize()
	return dl, atlas
}

func TestTessellateRect(t *testing.T) {
	dl, _ := tessellate(gui.RectCmd{
		Rect: gui.Rect{X: 0, Y: 0, W: 100, H: 20},
		Fill: gui.ColorWhite,
	})
	defer gui.ReleaseDrawList(dl)

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("got %d draw commands, want 1", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[0].ElemCount; got != 6 {
		t.Errorf("square rect: %d indices, want 6", got)
	}
	if dl.CmdBuffer[0].TextureID != 0 {
		t.Error("shapes must be untextured")
	}
}

func TestTessellateRoundedRectWithStroke(t *testing.T) {
	dl, _ := tessellate(gui.RectCmd{
		Rect:         gui.Rect{X: 0, Y: 0, W: 100, H: 20},
		CornerRadius: 4,
		Fill:         gui.ColorWhite,
		Stroke:       gui.Stroke{Width: 1, Color: gui.ColorGray},
	})
	defer gui.ReleaseDrawList(dl)

	// Four corners of (segments+1) points each, a triangle per edge of the
	// fan, then one quad per outline edge.
	const points = 4 * (4 + 1)
	want := uint32(points*3 + points*6)
	var got uint32
	for _, cmd := range dl.CmdBuffer {
		got += cmd.ElemCount
	}
	if got != want {
		t.Errorf("got %d indices, want %d", got, want)
	}
}

func TestTessellateSkipsInvisible(t *testing.T) {
	dl, _ := tessellate(
		gui.RectCmd{Rect: gui.Rect{W: 10, H: 10}, Fill: gui.ColorTransparent},
		gui.LineSegmentCmd{Points: [2]gui.Vec2{{}, {X: 10}}, Stroke: gui.Stroke{Width: 0, Color: gui.ColorWhite}},
		gui.LineSegmentCmd{Points: [2]gui.Vec2{{}, {X: 10}}, Stroke: gui.Stroke{Width: 2, Color: gui.ColorTransparent}},
	)
	defer gui.ReleaseDrawList(dl)

	if len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("invisible shapes produced %d indices in %d commands", len(dl.IdxBuffer), len(dl.CmdBuffer))
	}
}

func TestTessellateText(t *testing.T) {
	galley := testFont().LayoutSingleLine("hih")
	dl, atlas := tessellate(
		gui.RectCmd{Rect: gui.Rect{W: 50, H: 20}, Fill: gui.ColorBlack},
		gui.TextCmd{Pos: gui.Vec2{X: 2, Y: 3}, Galley: galley, Color: gui.ColorWhite},
	)
	defer gui.ReleaseDrawList(dl)

	if atlas.Len() != 2 {
		t.Errorf("atlas holds %d glyphs, want 2 distinct", atlas.Len())
	}
	if atlas.Version() == 0 {
		t.Error("atlas version not bumped after rasterizing")
	}

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("got %d draw commands, want rect then text", len(dl.CmdBuffer))
	}
	text := dl.CmdBuffer[1]
	if text.TextureID != 7 {
		t.Errorf("text texture = %d, want 7", text.TextureID)
	}
	if text.ElemCount != 3*6 {
		t.Errorf("text indices = %d, want %d", text.ElemCount, 3*6)
	}

	// First glyph quad starts at the pen position.
	v := dl.VtxBuffer[text.VertexOffset]
	if v.Pos[0] != 2 {
		t.Errorf("first glyph x = %v, want 2", v.Pos[0])
	}
	if v.TexCoord == ([2]float32{}) && dl.VtxBuffer[text.VertexOffset+2].TexCoord == ([2]float32{}) {
		t.Error("glyph quad has no atlas coordinates")
	}
}

func TestGlyphAtlasCachesAcrossFrames(t *testing.T) {
	atlas := gui.NewGlyphAtlas()
	fonts := gui.NewFonts(testFont())
	cmds := []gui.PaintCmd{gui.TextCmd{Galley: testFont().LayoutSingleLine("abc"), Color: gui.ColorWhite}}

	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)
	gui.Tessellate(dl, cmds, fonts, atlas, 1)
	v := atlas.Version()

	dl.Clear()
	gui.Tessellate(dl, cmds, fonts, atlas, 1)
	if atlas.Version() != v {
		t.Errorf("version changed from %d to %d without new glyphs", v, atlas.Version())
	}
}

func TestDrawListSplitsOnTextureChange(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.AddRect(10, 0, 10, 10, gui.ColorWhite)
	dl.AddGlyphQuads(3, []gui.GlyphQuad{{X1: 5, Y1: 5, U1: 1, V1: 1}}, gui.ColorWhite)
	dl.AddLine(0, 0, 10, 10, gui.ColorWhite, 1)
	dl.Finalize()

	var textures []uint32
	for _, cmd := range dl.CmdBuffer {
		textures = append(textures, cmd.TextureID)
	}
	if len(textures) != 3 || textures[0] != 0 || textures[1] != 3 || textures[2] != 0 {
		t.Errorf("command textures = %v, want [0 3 0]", textures)
	}
	if dl.CmdBuffer[0].ElemCount != 12 {
		t.Errorf("batched rects: %d indices, want 12", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListClipRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 50, 50)
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("got %d commands, want 2", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ClipRect != [4]float32{0, 0, 50, 50} {
		t.Errorf("clip = %v", dl.CmdBuffer[0].ClipRect)
	}
}
