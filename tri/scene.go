// Package tri draws a single static triangle every frame until its window closes.
package tri

import (
	"fmt"

	"dasa.cc/triangle/glw"
	"golang.org/x/image/math/f32"
)

// Presenter shows the frame rendered so far.
type Presenter interface {
	SwapBuffers()
}

// Scene is the program and geometry drawn each frame.
type Scene struct {
	Program glw.Program
	Vert    glw.VertexArray

	clear f32.Vec4
}

// Create installs the program and uploads the vertices of cfg. Nothing is left
// allocated if Create returns an error.
func (scn *Scene) Create(cfg Config) error {
	if err := scn.Program.Install(cfg.Vertex, cfg.Fragment); err != nil {
		return fmt.Errorf("tri: build program: %w", err)
	}
	scn.Vert.Create(glw.STATIC_DRAW, cfg.Vertices)
	scn.clear = cfg.ClearColor

	if err := glw.CheckError(); err != nil {
		scn.Delete()
		return fmt.Errorf("tri: create scene: %w", err)
	}
	return nil
}

// Frame clears, draws and presents one frame.
func (scn *Scene) Frame(p Presenter) error {
	glw.ClearColor(scn.clear)
	glw.Clear()
	scn.Program.Use()
	scn.Vert.Bind()
	scn.Vert.Draw(glw.TRIANGLES)
	p.SwapBuffers()

	if err := glw.CheckError(); err != nil {
		return fmt.Errorf("tri: frame: %w", err)
	}
	return nil
}

// Delete releases the vertex array, its buffer and then the program.
func (scn *Scene) Delete() {
	scn.Vert.Delete()
	scn.Program.Delete()
}
