package glw

import "golang.org/x/image/math/f32"

// Vec3Stride is the byte distance between consecutive tightly packed vec3 values.
const Vec3Stride = 3 * 4

// VertexArray records a FloatBuffer of vec3 positions feeding attribute slot Attrib.
type VertexArray struct {
	Array  uint32
	Attrib A3fv
	Floats FloatBuffer
	count  int
}

// Create uploads vertices to a new buffer and records the buffer and layout of
// slot va.Attrib in a new vertex array. Both the buffer and the vertex array are
// unbound on return; Bind alone restores draw state.
func (va *VertexArray) Create(usage Enum, vertices []f32.Vec3) {
	va.Array = ctx.CreateVertexArray()
	va.Bind()

	va.Floats.Create(usage, Flatten3fv(vertices))
	va.Attrib.Pointer(Vec3Stride, 0)
	va.count = len(vertices)

	va.Floats.Unbind()
	va.Unbind()
}

func (va VertexArray) Bind()   { ctx.BindVertexArray(va.Array) }
func (va VertexArray) Unbind() { ctx.BindVertexArray(0) }

// Count returns the number of vertices uploaded.
func (va VertexArray) Count() int { return va.count }

// Draw renders all vertices with mode; va must be bound.
func (va VertexArray) Draw(mode Enum) { ctx.DrawArrays(mode, 0, va.count) }

// Layout reads back the recorded state of slot va.Attrib.
func (va VertexArray) Layout() Layout {
	va.Bind()
	defer va.Unbind()
	return va.Attrib.Layout()
}

// Delete frees the vertex array and then its buffer.
func (va *VertexArray) Delete() {
	if va.Array != 0 {
		ctx.DeleteVertexArray(va.Array)
		va.Array = 0
	}
	va.Floats.Delete()
}
