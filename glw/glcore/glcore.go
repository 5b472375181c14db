// Package glcore implements glw.Context on an OpenGL 3.3 core profile
// context through go-gl.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"dasa.cc/triangle/glw"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var _ glw.Context = Context{}

// Context forwards to the GL context current on the calling thread.
type Context struct{}

// New loads GL function pointers for the current context. A context must be
// current on the calling thread.
func New() (Context, error) {
	if err := gl.Init(); err != nil {
		return Context{}, fmt.Errorf("glcore: %w", err)
	}
	return Context{}, nil
}

func (Context) GetError() glw.Enum { return glw.Enum(gl.GetError()) }

func (Context) GetString(name glw.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Context) Clear(mask glw.Enum) { gl.Clear(uint32(mask)) }

func (Context) DrawArrays(mode glw.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Context) CreateShader(typ glw.Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (Context) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Context) GetShaderi(shader uint32, pname glw.Enum) int {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return int(v)
}

func (c Context) GetShaderInfoLog(shader uint32) string {
	n := c.GetShaderi(shader, glw.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(shader, int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Context) CreateProgram() uint32               { return gl.CreateProgram() }
func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Context) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (Context) GetProgrami(program uint32, pname glw.Enum) int {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (c Context) GetProgramInfoLog(program uint32) string {
	n := c.GetProgrami(program, glw.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(program, int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) UseProgram(program uint32)    { gl.UseProgram(program) }
func (Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Context) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Context) BindBuffer(target glw.Enum, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = gl.Ptr(src)
	}
	gl.BufferData(uint32(target), len(src), p, uint32(usage))
}

func (Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Context) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Context) BindVertexArray(array uint32)   { gl.BindVertexArray(array) }
func (Context) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (Context) VertexAttribPointer(index uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(index, int32(size), uint32(typ), normalized, int32(stride), uintptr(offset))
}

func (Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Context) GetVertexAttribi(index uint32, pname glw.Enum) int {
	var v int32
	gl.GetVertexAttribiv(index, uint32(pname), &v)
	return int(v)
}

func (Context) GetVertexAttribOffset(index uint32) int {
	var p unsafe.Pointer
	gl.GetVertexAttribPointerv(index, gl.VERTEX_ATTRIB_ARRAY_POINTER, &p)
	return int(uintptr(p))
}
