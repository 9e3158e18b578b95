package gui

import (
	"errors"
	"fmt"
	"image"
)

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)

	// UpdateFontAtlas uploads the glyph coverage texture. It is called
	// before Render whenever new glyphs were rasterized.
	UpdateFontAtlas(img *image.Alpha) error
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer  Renderer
	style     Style
	fonts     *Fonts
	memory    *Memory
	clipboard ClipboardProvider
	atlas     *GlyphAtlas
	ctx       *Context

	textEditStore StateStore[TextEditState]
	idleFrames    uint64

	uploadedAtlas uint64
	inFrame       bool
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFonts sets the font set. Defaults to DefaultFonts.
func WithFonts(fonts *Fonts) GUIOption {
	return func(g *GUI) { g.fonts = fonts }
}

// WithTextEditStore sets where text editor cursors are kept between frames.
// Stores implementing Flusher are flushed at the end of every frame.
func WithTextEditStore(store StateStore[TextEditState]) GUIOption {
	return func(g *GUI) { g.textEditStore = store }
}

// WithClipboard sets where copied text goes. Defaults to DefaultClipboard.
func WithClipboard(cb ClipboardProvider) GUIOption {
	return func(g *GUI) { g.clipboard = cb }
}

// WithStateIdleFrames makes the default store forget widgets that were not
// shown for n frames. Ignored when WithTextEditStore is used.
func WithStateIdleFrames(n uint64) GUIOption {
	return func(g *GUI) { g.idleFrames = n }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		atlas:    NewGlyphAtlas(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.fonts == nil {
		g.fonts = DefaultFonts()
	}
	if g.clipboard == nil {
		g.clipboard = DefaultClipboard()
	}
	if g.textEditStore == nil {
		g.textEditStore = NewFrameStore[TextEditState](g.idleFrames)
	}
	g.memory = NewMemory(g.textEditStore)
	g.ctx = newContext(g.style, g.fonts, g.memory)

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	g.ctx.style = g.style
	g.ctx.reset(input, displaySize, deltaTime)
	g.inFrame = true
	return g.ctx
}

// End finishes the frame: the queued shapes are tessellated and rendered,
// copied text goes to the clipboard and widget state is flushed.
func (g *GUI) End() (Output, error) {
	if !g.inFrame {
		return Output{}, errors.New("gui: End called without Begin")
	}
	g.inFrame = false
	ctx := g.ctx
	out := ctx.output

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	Tessellate(dl, ctx.paint, g.fonts, g.atlas, g.renderer.FontTextureID())
	dl.Finalize()

	var errs []error
	if v := g.atlas.Version(); v != g.uploadedAtlas {
		if err := g.renderer.UpdateFontAtlas(g.atlas.Image()); err != nil {
			errs = append(errs, fmt.Errorf("upload font atlas: %w", err))
		} else {
			g.uploadedAtlas = v
			if guiVerbose() {
				guiLogger.Debug("font atlas uploaded", "version", v, "glyphs", g.atlas.Len())
			}
		}
	}
	if err := g.renderer.Render(dl); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}

	if out.CopiedText != "" {
		g.clipboard.SetText(out.CopiedText)
	}

	ctx.endFrame()
	if err := g.memory.endFrame(ctx.FrameCount); err != nil {
		errs = append(errs, err)
	}

	return out, errors.Join(errs...)
}

// Context returns the GUI context.
// Only meaningful between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Memory returns the state shared across frames.
func (g *GUI) Memory() *Memory {
	return g.memory
}

// Fonts returns the font set.
func (g *GUI) Fonts() *Fonts {
	return g.fonts
}

// Atlas returns the glyph atlas.
func (g *GUI) Atlas() *GlyphAtlas {
	return g.atlas
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the style used from the next frame on.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
