package glw

import (
	"math"

	"golang.org/x/image/math/f32"
)

// FloatBuffer is an ARRAY_BUFFER of float32 values.
type FloatBuffer struct {
	Buffer uint32
	bin    []byte
	count  int
	usage  Enum
}

// Create generates the buffer, binds it and uploads data with the given usage.
// The buffer is left bound.
func (buf *FloatBuffer) Create(usage Enum, data []float32) {
	buf.usage = usage
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

// Delete frees the buffer; deleting twice is a no-op.
func (buf *FloatBuffer) Delete() {
	if buf.Buffer != 0 {
		ctx.DeleteBuffer(buf.Buffer)
		buf.Buffer = 0
	}
}

func (buf FloatBuffer) Bind()   { ctx.BindBuffer(ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Unbind() { ctx.BindBuffer(ARRAY_BUFFER, 0) }

// Len returns the number of floats last uploaded.
func (buf FloatBuffer) Len() int { return buf.count }

// Bytes returns the little-endian encoding last uploaded; the slice is owned by buf.
func (buf FloatBuffer) Bytes() []byte { return buf.bin[:4*buf.count] }

// Update replaces the contents of the bound buffer with data.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	if len(buf.bin) < len(data)*4 {
		buf.bin = make([]byte, len(data)*4)
	}
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	ctx.BufferData(ARRAY_BUFFER, buf.bin[:len(data)*4], buf.usage)
}

// Flatten3fv returns the components of vs in order.
func Flatten3fv(vs []f32.Vec3) []float32 {
	fs := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		fs = append(fs, v[0], v[1], v[2])
	}
	return fs
}
