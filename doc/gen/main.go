// Command gen renders the text editors in their typical states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/guitext"
	"github.com/go-theft-auto/guitext/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single screenshot to capture.
type screenshot struct {
	name   string           // filename without extension
	width  int              // viewport width
	height int              // viewport height
	style  *gui.Style       // nil = default style
	focus  any              // ID source of the editor to focus, if any
	draw   func(ui *gui.UI) // drawing function
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at
	// 800×600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	style := gui.DefaultStyle()
	if s.style != nil {
		style = *s.style
	}
	ui := gui.New(renderer, gui.WithStyle(style), gui.WithClipboard(&gui.MemClipboard{}))
	if s.focus != nil {
		ui.Memory().RequestKbFocus(gui.IDFrom("root").With(s.focus))
	}

	// Two frames: the first one rasterizes glyphs into the atlas.
	for i := 0; i < 2; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Mid-phase of the blink cycle so the caret is drawn.
		input := gui.NewInputState()
		input.Time = 0.5

		displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		s.draw(ctx.RootUI())
		if _, err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all screenshots to generate.
func buildScreenshots() []screenshot {
	var (
		name  = "Hello, world!"
		notes = "Multi-line editors wrap long lines at the available width, and Enter inserts a newline.\nSecond paragraph."
		code  = "func main() {}"
	)
	light := gui.LightStyle()

	return []screenshot{
		{
			name: "text_edit_single", width: 320, height: 60,
			draw: func(ui *gui.UI) {
				gui.SingleLine(&name).IDSource("name").Show(ui)
			},
		},
		{
			name: "text_edit_focused", width: 320, height: 60,
			focus: "name",
			draw: func(ui *gui.UI) {
				gui.SingleLine(&name).IDSource("name").Show(ui)
			},
		},
		{
			name: "text_edit_multi", width: 320, height: 140,
			focus: "notes",
			draw: func(ui *gui.UI) {
				gui.MultiLine(&notes).IDSource("notes").DesiredRows(6).Show(ui)
			},
		},
		{
			name: "text_edit_styles", width: 320, height: 120,
			draw: func(ui *gui.UI) {
				ui.Add(gui.NewLabel("Monospace").TextStyle(gui.TextStyleSmall))
				gui.SingleLine(&code).IDSource("code").TextStyle(gui.TextStyleMonospace).Show(ui)
				ui.Add(gui.NewLabel("Disabled").TextStyle(gui.TextStyleSmall))
				gui.SingleLine(&name).IDSource("ro").Enabled(false).Show(ui)
			},
		},
		{
			name: "text_edit_light", width: 320, height: 60,
			style: &light,
			focus: "name",
			draw: func(ui *gui.UI) {
				gui.SingleLine(&name).IDSource("name").Show(ui)
			},
		},
	}
}
