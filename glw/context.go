package glw

import "fmt"

// Enum is a GL enumerant.
type Enum uint32

// Enumerants used by this package; values match the OpenGL 3.3 core headers.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	TRIANGLES Enum = 0x0004

	COLOR_BUFFER_BIT Enum = 0x00004000

	FLOAT Enum = 0x1406

	VENDOR   Enum = 0x1F00
	RENDERER Enum = 0x1F01
	VERSION  Enum = 0x1F02

	ARRAY_BUFFER Enum = 0x8892
	STATIC_DRAW  Enum = 0x88E4

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	VERTEX_ATTRIB_ARRAY_ENABLED        Enum = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE           Enum = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE         Enum = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE           Enum = 0x8625
	VERTEX_ATTRIB_ARRAY_NORMALIZED     Enum = 0x886A
	VERTEX_ATTRIB_ARRAY_POINTER        Enum = 0x8645
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING Enum = 0x889F
)

var enumNames = map[Enum]string{
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	TRIANGLES:                     "TRIANGLES",
	COLOR_BUFFER_BIT:              "COLOR_BUFFER_BIT",
	FLOAT:                         "FLOAT",
	ARRAY_BUFFER:                  "ARRAY_BUFFER",
	STATIC_DRAW:                   "STATIC_DRAW",
	FRAGMENT_SHADER:               "FRAGMENT_SHADER",
	VERTEX_SHADER:                 "VERTEX_SHADER",
}

func (e Enum) String() string {
	if s, ok := enumNames[e]; ok {
		return s
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// Context is the subset of an OpenGL 3.3 core context used by glw.
//
// Handles are the raw GL object names; zero is never a valid object.
// Method names follow the GL entry points they wrap.
type Context interface {
	GetError() Enum
	GetString(name Enum) string

	Viewport(x, y, width, height int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)

	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	CreateVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index uint32)
	GetVertexAttribi(index uint32, pname Enum) int
	GetVertexAttribOffset(index uint32) int
}

// GLError is a non-zero code returned by Context.GetError.
type GLError Enum

func (e GLError) Error() string { return "gl error " + Enum(e).String() }

// maxErrors bounds draining of error flags; a lost context may never clear.
const maxErrors = 8

// CheckError returns the first pending error of the current context, if any,
// draining the remaining error flags.
func CheckError() error {
	var first Enum
	for i := 0; i < maxErrors; i++ {
		e := ctx.GetError()
		if e == NO_ERROR {
			break
		}
		if first == NO_ERROR {
			first = e
		} else {
			logger.Printf("discarding %v after %v", e, first)
		}
	}
	if first != NO_ERROR {
		return GLError(first)
	}
	return nil
}
