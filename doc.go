/*
Package gui provides an immediate-mode text editing widget, designed as
idiomatic Go with a dedicated Context type (not context.Context).

# Overview

The UI is rebuilt every frame. Widgets are plain values configured with
chainable setters and shown into a UI scope; they report interaction
through a Response. The only state a text editor keeps between frames is
its cursor position, stored in Memory under the widget's ID.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	ui := gui.New(renderer, gui.WithClipboard(adapter.Clipboard()))

	name := "world"

	// Main loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input := adapter.Update()

	    ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, dt)
	    root := ctx.RootUI()

	    root.Label("Name:")
	    if resp := gui.SingleLine(&name).IDSource("name").Show(root); resp.LostKbFocus {
	        save(name)
	    }

	    out, err := ui.End()
	    if err != nil {
	        log.Fatal(err)
	    }
	    adapter.EndFrame(out)
	    window.SwapBuffers()
	}

# Text Editor

SingleLine never wraps; Enter and Escape end editing. MultiLine wraps at the
available width; Enter inserts a newline and Escape ends editing.

	gui.MultiLine(&notes).
	    IDSource("notes").
	    TextStyle(gui.TextStyleMonospace).
	    DesiredWidth(400).
	    DesiredRows(8).
	    Show(ui)

Clicking the editor focuses it and places the cursor at the nearest
character boundary. Clicking anywhere else, disabling the editor, Enter
(single-line) or Escape release focus. Response.LostKbFocus is set on the
frame focus was released, which is the usual moment to commit a value.

Cursor positions count Unicode scalar values, never bytes.

# Keyboard Reference

	Left / Right     Move one character
	Up / Down        Move one line, keeping the column
	Home / End       Jump to start / end of the current line
	Backspace        Delete character before cursor
	Delete           Delete character after cursor
	Enter            New line (multi-line) or end editing (single-line)
	Escape           End editing
	Ctrl+C / Ctrl+X  Copy the whole text (cut does not delete)
	Ctrl+V           Paste (delivered by the platform as a Text event)

# Identity

Every editor needs an ID that is stable across frames:

	ID(id)           Explicit ID
	IDSource(src)    Derived from src within the enclosing scope
	(neither)        Derived from the layout position

Position IDs change when widgets above move; prefer IDSource for editors
whose surroundings are dynamic.

# Styling

Style holds spacing, colors and caret settings. Styles can be loaded from
TOML or YAML:

	style, err := gui.LoadStyle("theme.toml")

	# theme.toml
	theme = "light"
	text_edit_width = 320.0
	cursor_blink_hz = 0.0
	text_cursor_color = "#ff8800"

# State Persistence

Memory.TextEdit is a StateStore. The default FrameStore keeps state in
memory; package persist keeps it in a bbolt database across restarts:

	db, _ := persist.Open("state.db")
	store, _ := persist.TextEditStore(db)
	ui := gui.New(renderer, gui.WithTextEditStore(store))

Stores implementing Flusher are flushed at the end of every frame.

# Clipboard Integration

Copied text is returned in Output.CopiedText and also handed to the
configured ClipboardProvider:

	type ClipboardProvider interface {
	    GetText() string
	    SetText(text string)
	}

SystemClipboard uses the operating system clipboard; MemClipboard is useful
for tests.

# Rendering

Widgets record paint commands. GUI.End tessellates them into a DrawList,
rasterizing glyphs on demand into a GlyphAtlas, and hands the result to
the Renderer. Built-in optimizations:

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture
  - Glyphs rasterized once and cached in a single atlas texture
*/
package gui
