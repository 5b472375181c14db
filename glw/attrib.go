package glw

import "fmt"

// A3fv is a vertex attribute slot of three floats.
type A3fv uint32

// Enable enables the slot in the bound vertex array.
func (a A3fv) Enable() { ctx.EnableVertexAttribArray(uint32(a)) }

// Pointer describes the buffer bound to ARRAY_BUFFER as tightly packed vec3
// values starting at offset bytes and enables the slot.
func (a A3fv) Pointer(stride, offset int) {
	ctx.VertexAttribPointer(uint32(a), 3, FLOAT, false, stride, offset)
	a.Enable()
}

// Layout reads back the state of the slot from the bound vertex array.
func (a A3fv) Layout() Layout {
	i := uint32(a)
	return Layout{
		Index:      i,
		Size:       ctx.GetVertexAttribi(i, VERTEX_ATTRIB_ARRAY_SIZE),
		Type:       Enum(ctx.GetVertexAttribi(i, VERTEX_ATTRIB_ARRAY_TYPE)),
		Normalized: ctx.GetVertexAttribi(i, VERTEX_ATTRIB_ARRAY_NORMALIZED) != FALSE,
		Stride:     ctx.GetVertexAttribi(i, VERTEX_ATTRIB_ARRAY_STRIDE),
		Offset:     ctx.GetVertexAttribOffset(i),
		Enabled:    ctx.GetVertexAttribi(i, VERTEX_ATTRIB_ARRAY_ENABLED) != FALSE,
		Buffer:     uint32(ctx.GetVertexAttribi(i, VERTEX_ATTRIB_ARRAY_BUFFER_BINDING)),
	}
}

// Layout is the recorded state of one vertex attribute slot.
type Layout struct {
	Index      uint32
	Size       int
	Type       Enum
	Normalized bool
	Stride     int
	Offset     int
	Enabled    bool
	Buffer     uint32
}

func (l Layout) String() string {
	return fmt.Sprintf("attrib %v: %vx%v normalized=%v stride=%v offset=%v enabled=%v buffer=%v",
		l.Index, l.Size, l.Type, l.Normalized, l.Stride, l.Offset, l.Enabled, l.Buffer)
}
