package glwtest

import (
	"testing"

	"dasa.cc/triangle/glw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestFrameTriangle(t *testing.T) {
	f := NewFrame(4, 4)
	red := f32.Vec4{1, 0, 0, 1}

	// lower left half, both windings
	f.triangle(f32.Vec2{0, 0}, f32.Vec2{4, 0}, f32.Vec2{0, 4}, red)
	g := NewFrame(4, 4)
	g.triangle(f32.Vec2{0, 0}, f32.Vec2{0, 4}, f32.Vec2{4, 0}, red)
	assert.Equal(t, f.Pix, g.Pix)

	assert.Equal(t, red, f.At(0, 0))
	assert.Equal(t, red, f.At(1, 2))
	assert.Equal(t, f32.Vec4{}, f.At(3, 3))
	assert.Equal(t, f32.Vec4{}, f.At(-1, 0))
	assert.Equal(t, 10, f.Count(red))

	// degenerate
	h := NewFrame(4, 4)
	h.triangle(f32.Vec2{0, 0}, f32.Vec2{2, 2}, f32.Vec2{4, 4}, red)
	assert.Zero(t, h.Count(red))
}

func TestFrameClone(t *testing.T) {
	f := NewFrame(2, 2)
	f.Fill(f32.Vec4{1, 1, 1, 1})
	g := f.Clone()
	f.Fill(f32.Vec4{})
	assert.Equal(t, 4, g.Count(f32.Vec4{1, 1, 1, 1}))
}

func TestParseVec4(t *testing.T) {
	v, ok := parseVec4(" 0.8, 0.3f ,0.02, 1.0")
	require.True(t, ok)
	assert.Equal(t, f32.Vec4{0.8, 0.3, 0.02, 1}, v)

	_, ok = parseVec4("1, 2, 3")
	assert.False(t, ok)
	_, ok = parseVec4("a, b, c, d")
	assert.False(t, ok)
}

func TestUseAfterDelete(t *testing.T) {
	c := New(2, 2)
	b := c.CreateBuffer()
	c.DeleteBuffer(b)
	assert.Panics(t, func() { c.BindBuffer(glw.ARRAY_BUFFER, b) })
}

func TestCoreProfileErrors(t *testing.T) {
	c := New(2, 2)

	// attribute state requires a bound vertex array
	c.EnableVertexAttribArray(0)
	assert.Equal(t, glw.INVALID_OPERATION, c.GetError())

	// drawing requires a program and a vertex array
	c.DrawArrays(glw.TRIANGLES, 0, 3)
	assert.Equal(t, glw.INVALID_OPERATION, c.GetError())
	assert.Empty(t, c.Draws)

	// unlinked program can't be used
	p := c.CreateProgram()
	c.UseProgram(p)
	assert.Equal(t, glw.INVALID_OPERATION, c.GetError())
	assert.Equal(t, glw.NO_ERROR, c.GetError())
}
