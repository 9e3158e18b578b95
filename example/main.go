// Example opens a window with a single-line and a multi-line text editor.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-style theme.toml   load colors and sizes from a TOML or YAML file
//	-state state.db     keep cursor positions across runs
//	-v                  debug logging
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/guitext"
	"github.com/go-theft-auto/guitext/backend/opengl"
	"github.com/go-theft-auto/guitext/persist"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "text edit example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	stylePath := flag.String("style", "", "style file (.toml, .yaml)")
	statePath := flag.String("state", "", "state database path")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	gui.SetVerbose(*verbose)

	if err := run(*stylePath, *statePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(stylePath, statePath string) error {
	style := gui.DefaultStyle()
	if stylePath != "" {
		var err error
		if style, err = gui.LoadStyle(stylePath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	defer inputAdapter.Destroy()

	opts := []gui.GUIOption{
		gui.WithStyle(style),
		gui.WithClipboard(inputAdapter.Clipboard()),
	}
	if statePath != "" {
		db, err := persist.Open(statePath)
		if err != nil {
			return err
		}
		defer db.Close()
		store, err := persist.TextEditStore(db)
		if err != nil {
			return err
		}
		opts = append(opts, gui.WithTextEditStore(store))
	}
	ui := gui.New(renderer, opts...)

	// Application state.
	name := "world"
	committed := name
	notes := "Multi-line notes.\nEnter inserts a newline, Escape leaves."

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		ui.Resize(w, h)

		ctx := ui.Begin(input, gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		root := ctx.RootUI()

		root.Label(fmt.Sprintf("Hello, %s!", committed))
		root.Horizontal(func(row *gui.UI) {
			row.Label("Name:")
			if resp := gui.SingleLine(&name).IDSource("name").Show(row); resp.LostKbFocus {
				committed = name
			}
		})
		root.Add(gui.MultiLine(&notes).IDSource("notes").DesiredRows(6))
		root.Add(gui.NewLabel("Monospace, disabled:").TextStyle(gui.TextStyleSmall))
		root.Add(gui.SingleLine(&committed).IDSource("readonly").TextStyle(gui.TextStyleMonospace).Enabled(false))

		out, err := ui.End()
		if err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		inputAdapter.EndFrame(out)

		window.SwapBuffers()
		if !out.NeedsRepaint {
			glfw.WaitEventsTimeout(0.5)
		}
	}

	return nil
}
