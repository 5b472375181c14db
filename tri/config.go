package tri

import (
	"errors"
	"fmt"
	"math"

	"dasa.cc/triangle/glw"
	"golang.org/x/image/math/f32"
)

const vsrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fsrc = `#version 330 core
out vec4 FragColor;
void main()
{
	FragColor = vec4(0.8, 0.3, 0.02, 1.0);
}
`

// Vertices returns the lower left, lower right and upper corners of an
// equilateral triangle centered on the origin of normalized device space.
func Vertices() []f32.Vec3 {
	h := float32(math.Sqrt(3)) / 3
	return []f32.Vec3{
		{-0.5, -0.5 * h, 0},
		{+0.5, -0.5 * h, 0},
		{+0.0, +0.5 * h * 2, 0},
	}
}

// Config holds everything the program draws with.
type Config struct {
	Width, Height int
	Title         string
	Major, Minor  int
	SwapInterval  int

	Vertex   glw.VertSrc
	Fragment glw.FragSrc

	ClearColor f32.Vec4
	Vertices   []f32.Vec3

	// Verbose logs context strings and frame counts.
	Verbose bool
}

// DefaultConfig returns an 800x800 window showing an orange triangle on a dark background.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       800,
		Title:        "WindowA",
		Major:        3,
		Minor:        3,
		SwapInterval: 1,
		Vertex:       vsrc,
		Fragment:     fsrc,
		ClearColor:   f32.Vec4{0.07, 0.13, 0.17, 1.0},
		Vertices:     Vertices(),
	}
}

var (
	ErrSize     = errors.New("tri: width and height must be positive")
	ErrTitle    = errors.New("tri: empty title")
	ErrVertices = errors.New("tri: vertex count must be a positive multiple of 3")
)

// Validate reports the first problem with cfg.
func (cfg Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return ErrSize
	case cfg.Title == "":
		return ErrTitle
	case cfg.Major < 3 || (cfg.Major == 3 && cfg.Minor < 3):
		return fmt.Errorf("tri: context version %v.%v below 3.3", cfg.Major, cfg.Minor)
	case cfg.Vertex == "" || cfg.Fragment == "":
		return glw.ErrEmptySource
	case len(cfg.Vertices) == 0 || len(cfg.Vertices)%3 != 0:
		return ErrVertices
	}
	return nil
}
