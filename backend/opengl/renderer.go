// Package opengl provides an OpenGL 4.1 backend for the GUI package.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/guitext"
)

// Renderer implements gui rendering using OpenGL.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	atlasSize image.Point
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source.
// Textured draws sample glyph coverage from the R channel and tint it with
// the vertex color.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        float coverage = texture(fontTexture, TexCoord).r;
        FragColor = vec4(Color.rgb, Color.a * coverage);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a new OpenGL GUI renderer.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	// Create shader program
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Get uniform locations
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Create EBO
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(gui.Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	// The atlas is sized on first upload.
	r.fontTex = createAtlasTexture(1, 1)
	r.atlasSize = image.Pt(1, 1)

	return r, nil
}

// FontTextureID returns the OpenGL texture ID for the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// UpdateFontAtlas uploads the glyph coverage image.
func (r *Renderer) UpdateFontAtlas(img *image.Alpha) error {
	size := img.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	if img.Stride != size.X {
		return fmt.Errorf("font atlas stride %d does not match width %d", img.Stride, size.X)
	}

	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if size != r.atlasSize {
		// Reallocate storage in place so the texture ID handed out by
		// FontTextureID stays valid.
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, nil)
		r.atlasSize = size
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size.X), int32(size.Y), gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws a finalized DrawList.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	// Use shader
	gl.UseProgram(r.shader)

	// Set projection matrix (orthographic)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	// Bind texture
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	// Bind VAO and upload data
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	// Execute draw commands
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		// Set clip rectangle (convert to OpenGL coordinates - Y flipped)
		clipX := int32(cmd.ClipRect[0])
		clipY := int32(float32(r.height) - cmd.ClipRect[3])
		clipW := int32(cmd.ClipRect[2] - cmd.ClipRect[0])
		clipH := int32(cmd.ClipRect[3] - cmd.ClipRect[1])

		// Clamp to screen bounds
		if clipX < 0 {
			clipW += clipX
			clipX = 0
		}
		if clipY < 0 {
			clipH += clipY
			clipY = 0
		}
		if clipW <= 0 || clipH <= 0 {
			continue
		}

		gl.Scissor(clipX, clipY, clipW, clipH)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		// Draw
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	if blendEnabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if scissorEnabled {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	gl.BindVertexArray(0)

	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createAtlasTexture allocates the single-channel glyph atlas texture.
// Its contents arrive through UpdateFontAtlas.
func createAtlasTexture(width, height int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, width, height, 0, gl.RED, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
