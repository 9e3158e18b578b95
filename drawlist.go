package gui

import (
	"math"
	"sync"
)

// drawListPool provides efficient reuse of DrawList buffers.
// The draw list is rebuilt from the paint commands every frame, so keeping
// the backing arrays around avoids most per-frame allocations.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// maxVerticesPerCmd keeps command-relative indices within uint16.
const maxVerticesPerCmd = math.MaxUint16

// cornerSegments is how many segments approximate a rounded corner.
const cornerSegments = 4

// DrawList accumulates triangles for a frame, batched by texture and clip
// rectangle. Indices are relative to their command's VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the texture for subsequent primitives. 0 means untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the index of the first one,
// relative to the current command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxVerticesPerCmd {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	idx := dl.addVertices(a, b, c, d)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectRounded draws a filled rectangle with rounded corners as a
// triangle fan around its center.
func (dl *DrawList) AddRectRounded(x, y, w, h, radius float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	if radius <= 0 {
		dl.AddRect(x, y, w, h, color)
		return
	}

	path := roundedRectPath(x, y, w, h, radius)
	verts := make([]Vertex, 0, len(path)+1)
	verts = append(verts, Vertex{Pos: [2]float32{x + w/2, y + h/2}, Color: color})
	for _, p := range path {
		verts = append(verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}

	dl.SetTexture(0)
	idx := dl.addVertices(verts...)
	n := uint16(len(path))
	for i := uint16(0); i < n; i++ {
		dl.addIndices(idx, idx+1+i, idx+1+(i+1)%n)
	}
}

// AddRectOutline draws a rectangle outline of the given thickness,
// following rounded corners when radius > 0.
func (dl *DrawList) AddRectOutline(x, y, w, h, radius float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}

	if radius <= 0 {
		dl.AddRect(x, y, w, thickness, color)
		dl.AddRect(x, y+h-thickness, w, thickness, color)
		dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
		dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
		return
	}

	path := roundedRectPath(x, y, w, h, radius)
	for i, p := range path {
		q := path[(i+1)%len(path)]
		dl.AddLine(p.X, p.Y, q.X, q.Y, color, thickness)
	}
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.SetTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// GlyphQuad is one glyph's screen rectangle and atlas coordinates.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws glyphs sampled from textureID, tinted with color.
func (dl *DrawList) AddGlyphQuads(textureID uint32, quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}

	dl.SetTexture(textureID)
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// roundedRectPath returns the clockwise outline of a rounded rectangle.
// The radius is clamped to half the shorter side.
func roundedRectPath(x, y, w, h, radius float32) []Vec2 {
	radius = minf(radius, minf(w, h)/2)
	if radius < 0 {
		radius = 0
	}

	corners := [4]struct {
		cx, cy float32
		start  float64
	}{
		{x + w - radius, y + radius, -math.Pi / 2}, // top-right
		{x + w - radius, y + h - radius, 0},        // bottom-right
		{x + radius, y + h - radius, math.Pi / 2},  // bottom-left
		{x + radius, y + radius, math.Pi},          // top-left
	}

	path := make([]Vec2, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + float64(i)*(math.Pi/2)/cornerSegments
			path = append(path, Vec2{
				X: c.cx + radius*float32(math.Cos(a)),
				Y: c.cy + radius*float32(math.Sin(a)),
			})
		}
	}
	return path
}
