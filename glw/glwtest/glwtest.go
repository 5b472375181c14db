// Package glwtest provides an in-memory glw.Context for tests.
//
// Context records every call, tracks object state the way a core profile
// driver would, and rasterizes triangle draws into a float framebuffer. The
// vertex stage is taken to pass slot 0 positions through unchanged and the
// fragment stage to write the constant vec4 it assigns.
package glwtest

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"dasa.cc/triangle/glw"
	"golang.org/x/image/math/f32"
)

var _ glw.Context = (*Context)(nil)

type shader struct {
	typ      glw.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	shaders []uint32
	linked  bool
	log     string
	color   f32.Vec4
}

type attrib struct {
	size       int
	typ        glw.Enum
	normalized bool
	stride     int
	offset     int
	enabled    bool
	buffer     uint32
}

type vertexArray struct {
	attribs map[uint32]*attrib
}

// Draw is a recorded DrawArrays call with the state it used.
type Draw struct {
	Mode    glw.Enum
	First   int
	Count   int
	Program uint32
	Array   uint32
}

// Context is a recording glw.Context. The zero value is not usable; see New.
type Context struct {
	// Calls holds one entry per method call in the form Name(args).
	Calls []string

	// CompileFunc decides compile status when set. By default a source
	// compiles when it starts with a #version line and has no #error line.
	CompileFunc func(typ glw.Enum, src string) (ok bool, log string)

	// LinkFunc decides link status of a program with compiled stages when set.
	LinkFunc func(vsrc, fsrc string) (ok bool, log string)

	// Strings answers GetString.
	Strings map[glw.Enum]string

	// Draws holds every DrawArrays call in order.
	Draws []Draw

	errors []glw.Enum
	next   uint32

	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]byte
	arrays   map[uint32]*vertexArray
	deleted  map[uint32]string

	arrayBuffer uint32
	array       uint32
	current     uint32

	clear    f32.Vec4
	viewport [4]int
	frame    *Frame
}

// New returns a context with a width by height framebuffer and matching viewport.
func New(width, height int) *Context {
	return &Context{
		Strings: map[glw.Enum]string{
			glw.VENDOR:   "glwtest",
			glw.RENDERER: "glwtest software rasterizer",
			glw.VERSION:  "3.3.0 glwtest",
		},
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		buffers:  make(map[uint32][]byte),
		arrays:   make(map[uint32]*vertexArray),
		deleted:  make(map[uint32]string),
		viewport: [4]int{0, 0, width, height},
		frame:    NewFrame(width, height),
	}
}

func (c *Context) record(name string, args ...interface{}) {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = fmt.Sprint(a)
	}
	c.Calls = append(c.Calls, name+"("+strings.Join(s, ", ")+")")
}

func (c *Context) fail(e glw.Enum) { c.errors = append(c.errors, e) }

func (c *Context) gen() uint32 { c.next++; return c.next }

func (c *Context) alive(kind string, name uint32) {
	if k, ok := c.deleted[name]; ok {
		panic(fmt.Sprintf("glwtest: %s %v used after %s was deleted", kind, name, k))
	}
}

// Names returns the method names of Calls in order.
func (c *Context) Names() []string {
	names := make([]string, len(c.Calls))
	for i, s := range c.Calls {
		names[i] = s[:strings.IndexByte(s, '(')]
	}
	return names
}

// Reset clears recorded calls and draws; object state is kept.
func (c *Context) Reset() { c.Calls, c.Draws = nil, nil }

// PushError queues e to be returned by GetError.
func (c *Context) PushError(e glw.Enum) { c.errors = append(c.errors, e) }

// Deleted reports whether name was deleted and as which kind of object.
func (c *Context) Deleted(name uint32) (kind string, ok bool) {
	kind, ok = c.deleted[name]
	return kind, ok
}

// Live returns the number of objects created and not yet deleted.
func (c *Context) Live() int {
	return len(c.shaders) + len(c.programs) + len(c.buffers) + len(c.arrays)
}

// Bindings returns the current ARRAY_BUFFER, vertex array and program names.
func (c *Context) Bindings() (arrayBuffer, array, program uint32) {
	return c.arrayBuffer, c.array, c.current
}

// BufferBytes returns a copy of the data store of buffer.
func (c *Context) BufferBytes(buffer uint32) []byte {
	return append([]byte(nil), c.buffers[buffer]...)
}

// ClearValue returns the current clear color.
func (c *Context) ClearValue() f32.Vec4 { return c.clear }

// Frame returns the live framebuffer.
func (c *Context) Frame() *Frame { return c.frame }

func (c *Context) GetError() glw.Enum {
	if len(c.errors) == 0 {
		return glw.NO_ERROR
	}
	e := c.errors[0]
	c.errors = c.errors[1:]
	return e
}

func (c *Context) GetString(name glw.Enum) string {
	c.record("GetString", name)
	return c.Strings[name]
}

func (c *Context) Viewport(x, y, width, height int) {
	c.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		c.fail(glw.INVALID_VALUE)
		return
	}
	c.viewport = [4]int{x, y, width, height}
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.record("ClearColor", red, green, blue, alpha)
	c.clear = f32.Vec4{clamp(red), clamp(green), clamp(blue), clamp(alpha)}
}

func (c *Context) Clear(mask glw.Enum) {
	c.record("Clear", mask)
	if mask&glw.COLOR_BUFFER_BIT != 0 {
		c.frame.Fill(c.clear)
	}
}

func (c *Context) CreateShader(typ glw.Enum) uint32 {
	c.record("CreateShader", typ)
	if typ != glw.VERTEX_SHADER && typ != glw.FRAGMENT_SHADER {
		c.fail(glw.INVALID_ENUM)
		return 0
	}
	name := c.gen()
	c.shaders[name] = &shader{typ: typ}
	return name
}

func (c *Context) shader(name uint32) *shader {
	c.alive("shader", name)
	shd, ok := c.shaders[name]
	if !ok {
		c.fail(glw.INVALID_VALUE)
	}
	return shd
}

func (c *Context) ShaderSource(name uint32, src string) {
	c.record("ShaderSource", name, len(src))
	if shd := c.shader(name); shd != nil {
		shd.src = src
	}
}

func (c *Context) CompileShader(name uint32) {
	c.record("CompileShader", name)
	shd := c.shader(name)
	if shd == nil {
		return
	}
	compile := c.CompileFunc
	if compile == nil {
		compile = defaultCompile
	}
	shd.compiled, shd.log = compile(shd.typ, shd.src)
}

func defaultCompile(typ glw.Enum, src string) (bool, string) {
	if !strings.HasPrefix(strings.TrimSpace(src), "#version") {
		return false, "0:1(1): error: missing #version directive"
	}
	for i, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#error") {
			return false, fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(line))
		}
	}
	return true, ""
}

func (c *Context) GetShaderi(name uint32, pname glw.Enum) int {
	c.record("GetShaderi", name, pname)
	shd := c.shader(name)
	if shd == nil {
		return 0
	}
	switch pname {
	case glw.COMPILE_STATUS:
		return boolint(shd.compiled)
	case glw.INFO_LOG_LENGTH:
		return len(shd.log)
	}
	c.fail(glw.INVALID_ENUM)
	return 0
}

func (c *Context) GetShaderInfoLog(name uint32) string {
	c.record("GetShaderInfoLog", name)
	if shd := c.shader(name); shd != nil {
		return shd.log
	}
	return ""
}

func (c *Context) DeleteShader(name uint32) {
	c.record("DeleteShader", name)
	if name == 0 {
		return
	}
	c.alive("shader", name)
	if _, ok := c.shaders[name]; !ok {
		c.fail(glw.INVALID_VALUE)
		return
	}
	delete(c.shaders, name)
	c.deleted[name] = "shader"
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram")
	name := c.gen()
	c.programs[name] = &program{}
	return name
}

func (c *Context) program(name uint32) *program {
	c.alive("program", name)
	prg, ok := c.programs[name]
	if !ok {
		c.fail(glw.INVALID_VALUE)
	}
	return prg
}

func (c *Context) AttachShader(prgname, shdname uint32) {
	c.record("AttachShader", prgname, shdname)
	prg, shd := c.program(prgname), c.shader(shdname)
	if prg == nil || shd == nil {
		return
	}
	prg.shaders = append(prg.shaders, shdname)
}

var fragColor = regexp.MustCompile(`\w+\s*=\s*vec4\s*\(([^)]*)\)\s*;`)

func (c *Context) LinkProgram(name uint32) {
	c.record("LinkProgram", name)
	prg := c.program(name)
	if prg == nil {
		return
	}
	var vert, frag *shader
	for _, s := range prg.shaders {
		shd := c.shaders[s]
		switch {
		case shd == nil || !shd.compiled:
			prg.linked, prg.log = false, fmt.Sprintf("error: shader %v is not compiled", s)
			return
		case shd.typ == glw.VERTEX_SHADER:
			vert = shd
		case shd.typ == glw.FRAGMENT_SHADER:
			frag = shd
		}
	}
	if vert == nil || frag == nil {
		prg.linked, prg.log = false, "error: program lacks a vertex or fragment shader"
		return
	}
	if c.LinkFunc != nil {
		if ok, log := c.LinkFunc(vert.src, frag.src); !ok {
			prg.linked, prg.log = false, log
			return
		}
	}
	prg.linked, prg.log = true, ""
	prg.color = f32.Vec4{1, 1, 1, 1}
	if m := fragColor.FindStringSubmatch(frag.src); m != nil {
		if v, ok := parseVec4(m[1]); ok {
			prg.color = v
		}
	}
}

func parseVec4(s string) (v f32.Vec4, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return v, false
	}
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "f"), 32)
		if err != nil {
			return v, false
		}
		v[i] = float32(x)
	}
	return v, true
}

func (c *Context) GetProgrami(name uint32, pname glw.Enum) int {
	c.record("GetProgrami", name, pname)
	prg := c.program(name)
	if prg == nil {
		return 0
	}
	switch pname {
	case glw.LINK_STATUS:
		return boolint(prg.linked)
	case glw.INFO_LOG_LENGTH:
		return len(prg.log)
	}
	c.fail(glw.INVALID_ENUM)
	return 0
}

func (c *Context) GetProgramInfoLog(name uint32) string {
	c.record("GetProgramInfoLog", name)
	if prg := c.program(name); prg != nil {
		return prg.log
	}
	return ""
}

func (c *Context) UseProgram(name uint32) {
	c.record("UseProgram", name)
	if name != 0 {
		prg := c.program(name)
		if prg == nil || !prg.linked {
			c.fail(glw.INVALID_OPERATION)
			return
		}
	}
	c.current = name
}

func (c *Context) DeleteProgram(name uint32) {
	c.record("DeleteProgram", name)
	if name == 0 {
		return
	}
	c.alive("program", name)
	if _, ok := c.programs[name]; !ok {
		c.fail(glw.INVALID_VALUE)
		return
	}
	delete(c.programs, name)
	c.deleted[name] = "program"
	if c.current == name {
		c.current = 0
	}
}

func (c *Context) CreateBuffer() uint32 {
	c.record("CreateBuffer")
	name := c.gen()
	c.buffers[name] = nil
	return name
}

func (c *Context) BindBuffer(target glw.Enum, name uint32) {
	c.record("BindBuffer", target, name)
	if target != glw.ARRAY_BUFFER {
		c.fail(glw.INVALID_ENUM)
		return
	}
	if name != 0 {
		c.alive("buffer", name)
		if _, ok := c.buffers[name]; !ok {
			c.fail(glw.INVALID_OPERATION)
			return
		}
	}
	c.arrayBuffer = name
}

func (c *Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	c.record("BufferData", target, len(src), usage)
	if target != glw.ARRAY_BUFFER {
		c.fail(glw.INVALID_ENUM)
		return
	}
	if c.arrayBuffer == 0 {
		c.fail(glw.INVALID_OPERATION)
		return
	}
	c.buffers[c.arrayBuffer] = append([]byte(nil), src...)
}

func (c *Context) DeleteBuffer(name uint32) {
	c.record("DeleteBuffer", name)
	if name == 0 {
		return
	}
	c.alive("buffer", name)
	delete(c.buffers, name)
	c.deleted[name] = "buffer"
	if c.arrayBuffer == name {
		c.arrayBuffer = 0
	}
}

func (c *Context) CreateVertexArray() uint32 {
	c.record("CreateVertexArray")
	name := c.gen()
	c.arrays[name] = &vertexArray{attribs: make(map[uint32]*attrib)}
	return name
}

func (c *Context) BindVertexArray(name uint32) {
	c.record("BindVertexArray", name)
	if name != 0 {
		c.alive("vertex array", name)
		if _, ok := c.arrays[name]; !ok {
			c.fail(glw.INVALID_OPERATION)
			return
		}
	}
	c.array = name
}

func (c *Context) DeleteVertexArray(name uint32) {
	c.record("DeleteVertexArray", name)
	if name == 0 {
		return
	}
	c.alive("vertex array", name)
	delete(c.arrays, name)
	c.deleted[name] = "vertex array"
	if c.array == name {
		c.array = 0
	}
}

// attrib returns slot index of the bound vertex array, creating it when create is set.
func (c *Context) attrib(index uint32, create bool) *attrib {
	if c.array == 0 {
		c.fail(glw.INVALID_OPERATION)
		return nil
	}
	va := c.arrays[c.array]
	a, ok := va.attribs[index]
	if !ok {
		a = &attrib{size: 4, typ: glw.FLOAT}
		if create {
			va.attribs[index] = a
		}
	}
	return a
}

func (c *Context) VertexAttribPointer(index uint32, size int, typ glw.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		c.fail(glw.INVALID_VALUE)
		return
	}
	if c.arrayBuffer == 0 {
		c.fail(glw.INVALID_OPERATION)
		return
	}
	if a := c.attrib(index, true); a != nil {
		a.size, a.typ, a.normalized, a.stride, a.offset = size, typ, normalized, stride, offset
		a.buffer = c.arrayBuffer
	}
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray", index)
	if a := c.attrib(index, true); a != nil {
		a.enabled = true
	}
}

func (c *Context) GetVertexAttribi(index uint32, pname glw.Enum) int {
	c.record("GetVertexAttribi", index, pname)
	a := c.attrib(index, false)
	if a == nil {
		return 0
	}
	switch pname {
	case glw.VERTEX_ATTRIB_ARRAY_ENABLED:
		return boolint(a.enabled)
	case glw.VERTEX_ATTRIB_ARRAY_SIZE:
		return a.size
	case glw.VERTEX_ATTRIB_ARRAY_STRIDE:
		return a.stride
	case glw.VERTEX_ATTRIB_ARRAY_TYPE:
		return int(a.typ)
	case glw.VERTEX_ATTRIB_ARRAY_NORMALIZED:
		return boolint(a.normalized)
	case glw.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		return int(a.buffer)
	}
	c.fail(glw.INVALID_ENUM)
	return 0
}

func (c *Context) GetVertexAttribOffset(index uint32) int {
	c.record("GetVertexAttribOffset", index)
	if a := c.attrib(index, false); a != nil {
		return a.offset
	}
	return 0
}

func (c *Context) DrawArrays(mode glw.Enum, first, count int) {
	c.record("DrawArrays", mode, first, count)
	if first < 0 || count < 0 {
		c.fail(glw.INVALID_VALUE)
		return
	}
	if c.array == 0 || c.current == 0 {
		c.fail(glw.INVALID_OPERATION)
		return
	}
	c.Draws = append(c.Draws, Draw{mode, first, count, c.current, c.array})
	if mode != glw.TRIANGLES {
		return
	}

	a := c.arrays[c.array].attribs[0]
	if a == nil || !a.enabled || a.typ != glw.FLOAT {
		return
	}
	data := c.buffers[a.buffer]
	stride := a.stride
	if stride == 0 {
		stride = 4 * a.size
	}

	pos := make([]f32.Vec4, 0, count)
	for i := first; i < first+count; i++ {
		v := f32.Vec4{0, 0, 0, 1}
		base := a.offset + i*stride
		for j := 0; j < a.size; j++ {
			k := base + 4*j
			if k+4 > len(data) {
				c.fail(glw.INVALID_OPERATION)
				return
			}
			v[j] = math.Float32frombits(uint32(data[k]) | uint32(data[k+1])<<8 | uint32(data[k+2])<<16 | uint32(data[k+3])<<24)
		}
		pos = append(pos, v)
	}

	color := c.programs[c.current].color
	for i := 0; i+2 < len(pos); i += 3 {
		c.frame.triangle(c.window(pos[i]), c.window(pos[i+1]), c.window(pos[i+2]), color)
	}
}

// window maps clip coordinates p to window coordinates through the viewport.
func (c *Context) window(p f32.Vec4) f32.Vec2 {
	x, y, w, h := c.viewport[0], c.viewport[1], c.viewport[2], c.viewport[3]
	nx, ny := p[0]/p[3], p[1]/p[3]
	return f32.Vec2{
		float32(x) + (nx+1)*float32(w)/2,
		float32(y) + (ny+1)*float32(h)/2,
	}
}

func boolint(b bool) int {
	if b {
		return glw.TRUE
	}
	return glw.FALSE
}

func clamp(x float32) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
