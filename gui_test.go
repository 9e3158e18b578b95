package gui_test

import (
	"errors"
	"image"
	"testing"

	gui "github.com/go-theft-auto/guitext"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls  int
	atlasUploads int
	cmds         []gui.DrawCmd
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	m.cmds = append(m.cmds[:0], dl.CmdBuffer...)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func (m *mockRenderer) UpdateFontAtlas(img *image.Alpha) error {
	m.atlasUploads++
	return nil
}

// harness drives frames against a GUI using the fixed-size test font.
type harness struct {
	t        *testing.T
	renderer *mockRenderer
	gui      *gui.GUI
	input    *gui.InputState
	clip     *gui.MemClipboard
}

func newHarness(t *testing.T, opts ...gui.GUIOption) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		renderer: &mockRenderer{},
		input:    gui.NewInputState(),
		clip:     &gui.MemClipboard{},
	}
	opts = append([]gui.GUIOption{
		gui.WithFonts(gui.NewFonts(testFont())),
		gui.WithClipboard(h.clip),
	}, opts...)
	h.gui = gui.New(h.renderer, opts...)
	return h
}

// frame runs one frame and clears the per-frame input afterwards.
func (h *harness) frame(fn func(ui *gui.UI)) gui.Output {
	h.t.Helper()
	ctx := h.gui.Begin(h.input, gui.Vec2{X: 800, Y: 600}, 1.0/60)
	fn(ctx.RootUI())
	out, err := h.gui.End()
	if err != nil {
		h.t.Fatalf("End() returned error: %v", err)
	}
	h.input.Reset()
	return out
}

// click presses and releases the primary button at (x, y) within one frame.
func (h *harness) click(x, y float32) {
	h.input.SetMousePos(x, y)
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
	h.input.SetMouseButton(gui.MouseButtonLeft, false)
}

func TestGUIBasicUsage(t *testing.T) {
	h := newHarness(t)
	name := "world"

	h.frame(func(ui *gui.UI) {
		ui.Label("Hello")
		ui.TextEditSingleLine(&name)
	})

	if h.renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", h.renderer.renderCalls)
	}
	if h.renderer.atlasUploads != 1 {
		t.Errorf("expected atlas upload on first frame, got %d", h.renderer.atlasUploads)
	}

	var textured bool
	for _, cmd := range h.renderer.cmds {
		if cmd.TextureID == 1 && cmd.ElemCount > 0 {
			textured = true
		}
	}
	if !textured {
		t.Error("expected glyphs drawn with the font texture")
	}

	// Same glyphs again: nothing new to upload.
	h.frame(func(ui *gui.UI) {
		ui.Label("Hello")
		ui.TextEditSingleLine(&name)
	})
	if h.renderer.atlasUploads != 1 {
		t.Errorf("atlas re-uploaded without new glyphs (%d uploads)", h.renderer.atlasUploads)
	}
}

func TestEndWithoutBegin(t *testing.T) {
	g := gui.New(&mockRenderer{}, gui.WithFonts(gui.NewFonts(testFont())))
	if _, err := g.End(); err == nil {
		t.Error("expected error from End without Begin")
	}
}

type failingStore struct {
	gui.MapStore[gui.TextEditState]
	err error
}

func (s failingStore) Flush() error { return s.err }

func TestEndReportsFlushError(t *testing.T) {
	errDisk := errors.New("disk full")
	store := failingStore{MapStore: gui.NewMapStore[gui.TextEditState](), err: errDisk}
	g := gui.New(&mockRenderer{},
		gui.WithFonts(gui.NewFonts(testFont())),
		gui.WithTextEditStore(store),
	)

	text := ""
	ctx := g.Begin(gui.NewInputState(), gui.Vec2{X: 100, Y: 100}, 0.016)
	ctx.RootUI().TextEditSingleLine(&text)
	_, err := g.End()
	if !errors.Is(err, errDisk) {
		t.Fatalf("End() error = %v, want %v", err, errDisk)
	}
	if len(store.MapStore) != 1 {
		t.Errorf("state not written before flush: %d entries", len(store.MapStore))
	}
}

func TestStateIdleFrames(t *testing.T) {
	h := newHarness(t, gui.WithStateIdleFrames(2))
	kept, dropped := gui.IDFrom("kept"), gui.IDFrom("dropped")
	a, b := "a", "b"

	h.frame(func(ui *gui.UI) {
		gui.SingleLine(&a).ID(kept).Show(ui)
		gui.SingleLine(&b).ID(dropped).Show(ui)
	})
	for i := 0; i < 4; i++ {
		h.frame(func(ui *gui.UI) {
			gui.SingleLine(&a).ID(kept).Show(ui)
		})
	}

	mem := h.gui.Memory()
	if _, ok := mem.TextEdit.Get(kept); !ok {
		t.Error("state of a widget shown every frame was dropped")
	}
	if _, ok := mem.TextEdit.Get(dropped); ok {
		t.Error("state of a widget no longer shown was kept")
	}
}

func TestDrawListPool(t *testing.T) {
	dl := gui.AcquireDrawList()
	if dl == nil {
		t.Fatal("expected non-nil DrawList from pool")
	}

	dl.AddRect(0, 0, 100, 100, gui.ColorWhite)
	if len(dl.VtxBuffer) == 0 {
		t.Error("expected vertices after AddRect")
	}

	gui.ReleaseDrawList(dl)

	dl2 := gui.AcquireDrawList()
	if len(dl2.VtxBuffer) != 0 {
		t.Error("expected cleared DrawList from pool")
	}
	gui.ReleaseDrawList(dl2)
}

func TestIDGeneration(t *testing.T) {
	if gui.IDFrom("name") != gui.IDFrom("name") {
		t.Error("same source should give the same ID")
	}
	if gui.IDFrom("1") == gui.IDFrom(1) {
		t.Error("sources of different types should not collide")
	}

	parent := gui.IDFrom("panel")
	if parent.With("name") == gui.IDFrom("name") {
		t.Error("scoped ID should differ from the unscoped one")
	}
	if parent.With("name") != parent.With("name") {
		t.Error("scoped IDs should be stable")
	}
	if gui.IDFrom("a").With("b") == gui.IDFrom("b").With("a") {
		t.Error("scoping should not commute")
	}
}

func TestPersistentIDSurvivesLayoutChanges(t *testing.T) {
	h := newHarness(t)
	text := ""
	var first, second gui.ID

	h.frame(func(ui *gui.UI) {
		first = gui.SingleLine(&text).IDSource("field").Show(ui).ID
	})
	h.frame(func(ui *gui.UI) {
		ui.Label("pushed down")
		second = gui.SingleLine(&text).IDSource("field").Show(ui).ID
	})
	if first != second {
		t.Errorf("ID changed with layout: %v != %v", first, second)
	}

	var posA, posB gui.ID
	h.frame(func(ui *gui.UI) {
		posA = gui.SingleLine(&text).Show(ui).ID
	})
	h.frame(func(ui *gui.UI) {
		ui.Label("pushed down")
		posB = gui.SingleLine(&text).Show(ui).ID
	})
	if posA == posB {
		t.Error("position ID should follow the layout position")
	}
}

func TestLayoutStacking(t *testing.T) {
	h := newHarness(t)
	var label, row gui.Rect
	var a, b gui.Rect

	h.frame(func(ui *gui.UI) {
		label = ui.Label("hi").Rect
		row = ui.Horizontal(func(ui *gui.UI) {
			a = ui.Label("ab").Rect
			b = ui.Label("cd").Rect
		})
	})

	if want := (gui.Rect{X: 0, Y: 0, W: 14, H: 13}); label != want {
		t.Errorf("label rect = %+v, want %+v", label, want)
	}
	if a.Y != 17 || b.Y != 17 {
		t.Errorf("row items at y %v and %v, want 17", a.Y, b.Y)
	}
	if b.X != a.X+a.W+gui.SpaceSM {
		t.Errorf("second item at x %v, want %v", b.X, a.X+a.W+gui.SpaceSM)
	}
	if row.Y != 17 || row.H != 13 {
		t.Errorf("row rect = %+v", row)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := gui.New(&mockRenderer{}, gui.WithFonts(gui.NewFonts(testFont())))
	input := gui.NewInputState()
	name := "benchmark"
	notes := "line one\nline two\nline three"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
		root := ctx.RootUI()
		root.Label("Title")
		root.TextEditSingleLine(&name)
		root.TextEditMultiLine(&notes)
		_, _ = ui.End()
	}
}
