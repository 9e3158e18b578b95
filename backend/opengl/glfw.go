package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/guitext"
)

// GLFWInputAdapter adapts GLFW input to gui.InputState.
//
// Callbacks queue events as GLFW delivers them. Per frame:
//
//	glfw.PollEvents()
//	input := adapter.Update()
//	ctx := ui.Begin(input, size, dt)
//	...
//	out, err := ui.End()
//	adapter.EndFrame(out)
type GLFWInputAdapter struct {
	window    *glfw.Window
	input     *gui.InputState
	clipboard *GLFWClipboard

	textCursor *glfw.Cursor
	cursorIcon gui.CursorIcon
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:     window,
		input:      gui.NewInputState(),
		clipboard:  NewGLFWClipboard(window),
		textCursor: glfw.CreateStandardCursor(glfw.IBeamCursor),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCursorEnterCallback(adapter.cursorEnterCallback)

	return adapter
}

// Update refreshes polled state (pointer, modifiers, clock) and returns the
// input for the frame about to start.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	a.input.Time = glfw.GetTime()
	return a.input
}

// EndFrame applies the frame's output to the window and clears the
// events consumed by the frame.
func (a *GLFWInputAdapter) EndFrame(out gui.Output) {
	if out.CursorIcon != a.cursorIcon {
		switch out.CursorIcon {
		case gui.CursorIconText:
			a.window.SetCursor(a.textCursor)
		default:
			a.window.SetCursor(nil)
		}
		a.cursorIcon = out.CursorIcon
	}
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// Clipboard returns the window's clipboard.
func (a *GLFWInputAdapter) Clipboard() *GLFWClipboard {
	return a.clipboard
}

// Destroy releases the cursor shapes.
func (a *GLFWInputAdapter) Destroy() {
	if a.textCursor != nil {
		a.textCursor.Destroy()
		a.textCursor = nil
	}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Release && mods&(glfw.ModControl|glfw.ModSuper) != 0 {
		switch key {
		case glfw.KeyC:
			a.input.AddEvent(gui.CopyEvent())
			return
		case glfw.KeyX:
			a.input.AddEvent(gui.CutEvent())
			return
		case glfw.KeyV:
			a.input.AddText(a.clipboard.GetText())
			return
		}
	}

	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddText(string(char))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.input.ClearMousePos()
	}
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyInsert:
		return gui.KeyInsert
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyA:
		return gui.KeyA
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyV:
		return gui.KeyV
	case glfw.KeyX:
		return gui.KeyX
	case glfw.KeyZ:
		return gui.KeyZ
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

// GLFWClipboard is a gui.ClipboardProvider using the window system's
// clipboard through GLFW. Must be used from the main thread.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard returns the clipboard for window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText implements gui.ClipboardProvider.
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText implements gui.ClipboardProvider.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
