package glwtest

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Frame is a float RGBA framebuffer with the origin at the lower left, as in GL.
type Frame struct {
	Width, Height int
	Pix           []f32.Vec4
}

func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]f32.Vec4, width*height)}
}

// At returns the color of pixel x, y; out of range pixels are zero.
func (f *Frame) At(x, y int) f32.Vec4 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return f32.Vec4{}
	}
	return f.Pix[y*f.Width+x]
}

func (f *Frame) Fill(c f32.Vec4) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	g := &Frame{Width: f.Width, Height: f.Height, Pix: make([]f32.Vec4, len(f.Pix))}
	copy(g.Pix, f.Pix)
	return g
}

// Count returns the number of pixels equal to c.
func (f *Frame) Count(c f32.Vec4) (n int) {
	for _, p := range f.Pix {
		if p == c {
			n++
		}
	}
	return n
}

func edge(a, b, p f32.Vec2) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// triangle fills pixels whose centers lie inside a, b, c in window coordinates.
func (f *Frame) triangle(a, b, c f32.Vec2, col f32.Vec4) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}
	minx := int(math.Floor(float64(min3(a[0], b[0], c[0]))))
	maxx := int(math.Ceil(float64(max3(a[0], b[0], c[0]))))
	miny := int(math.Floor(float64(min3(a[1], b[1], c[1]))))
	maxy := int(math.Ceil(float64(max3(a[1], b[1], c[1]))))
	if minx < 0 {
		minx = 0
	}
	if miny < 0 {
		miny = 0
	}
	if maxx > f.Width {
		maxx = f.Width
	}
	if maxy > f.Height {
		maxy = f.Height
	}

	for y := miny; y < maxy; y++ {
		for x := minx; x < maxx; x++ {
			p := f32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			w0, w1, w2 := edge(b, c, p), edge(c, a, p), edge(a, b, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				f.Pix[y*f.Width+x] = col
			}
		}
	}
}

func min3(a, b, c float32) float32 {
	return float32(math.Min(float64(a), math.Min(float64(b), float64(c))))
}

func max3(a, b, c float32) float32 {
	return float32(math.Max(float64(a), math.Max(float64(b), float64(c))))
}
