package glw

import (
	"fmt"
	"runtime"
	"strings"
)

// caller returns first file and line number outside of this package for calling
// goroutine's stack, prefixed with defaultName which may be overridden based on
// stack frames.
func caller(defaultName string) string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		name  = defaultName
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/triangle/glw.") }
	)

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
		switch frame.Function {
		case "dasa.cc/triangle/glw.VertSrc.Compile":
			name = "VertexShader"
		case "dasa.cc/triangle/glw.FragSrc.Compile":
			name = "FragmentShader"
		}
	}

	return fmt.Sprintf("%s %s:%v", name, frame.File, frame.Line)
}

func compile(typ Enum, src string) (uint32, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, COMPILE_STATUS) == FALSE {
		return shd, fmt.Errorf("%s\n%s", caller("CompileShader"), ctx.GetShaderInfoLog(shd))
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
// A non-zero shader is returned even on error and must be deleted by caller.
func (src VertSrc) Compile() (uint32, error) { return compile(VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
// A non-zero shader is returned even on error and must be deleted by caller.
func (src FragSrc) Compile() (uint32, error) { return compile(FRAGMENT_SHADER, string(src)) }

// Program identifies a linked shader program; the zero value is not valid.
type Program struct{ Program uint32 }

// Valid reports whether prg holds a program name.
func (prg Program) Valid() bool { return prg.Program != 0 }

// Use installs program as part of current rendering state.
func (prg Program) Use() { ctx.UseProgram(prg.Program) }

// Delete frees the memory and invalidates the name associated with the program.
func (prg *Program) Delete() {
	if prg.Program != 0 {
		ctx.DeleteProgram(prg.Program)
		prg.Program = 0
	}
}

// Build compiles shaders and links program. Intermediate shader objects are
// deleted before Build returns. On error, the program is deleted and prg is
// left invalid.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) (err error) {
	if strings.TrimSpace(string(vsrc)) == "" || strings.TrimSpace(string(fsrc)) == "" {
		return ErrEmptySource
	}

	prg.Program = ctx.CreateProgram()
	defer func() {
		if err != nil {
			prg.Delete()
		}
	}()

	vshd, err := vsrc.Compile()
	defer ctx.DeleteShader(vshd)
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, vshd)

	fshd, err := fsrc.Compile()
	defer ctx.DeleteShader(fshd)
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, fshd)

	ctx.LinkProgram(prg.Program)
	if ctx.GetProgrami(prg.Program, LINK_STATUS) == FALSE {
		return fmt.Errorf("%s\n%s", caller("LinkProgram"), ctx.GetProgramInfoLog(prg.Program))
	}

	return nil
}

// Install is a helper that wraps Program.Build and Program.Use.
func (prg *Program) Install(vsrc VertSrc, fsrc FragSrc) error {
	if err := prg.Build(vsrc, fsrc); err != nil {
		return err
	}
	prg.Use()
	return nil
}
