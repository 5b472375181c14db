package tri

import (
	"log"

	"dasa.cc/triangle/glw"
)

// Window is a surface with a current GL context.
type Window interface {
	Presenter
	ShouldClose() bool
	PollEvents()
	Close()
}

// Opener creates a window for cfg along with the context current in it.
type Opener func(cfg Config) (Window, glw.Context, error)

// Exit codes returned by Run.
const (
	ExitOK     = 0
	ExitFail   = 1
	ExitWindow = -1
)

// Run opens a window, draws the scene of cfg until the window should close and
// releases everything in reverse order of creation. It returns the process
// exit code.
func Run(cfg Config, open Opener, logger *log.Logger) int {
	if err := cfg.Validate(); err != nil {
		logger.Println(err)
		return ExitFail
	}

	win, glctx, err := open(cfg)
	if err != nil {
		logger.Printf("Failed to create GLFW Window: %v", err)
		return ExitWindow
	}
	defer win.Close()

	glw.With(glctx)
	defer glw.With(nil)

	if cfg.Verbose {
		version, renderer := glw.Version()
		logger.Printf("OpenGL %s, %s", version, renderer)
	}

	glw.Viewport(0, 0, cfg.Width, cfg.Height)

	var scn Scene
	if err := scn.Create(cfg); err != nil {
		logger.Println(err)
		return ExitFail
	}
	defer scn.Delete()

	glw.ClearColor(cfg.ClearColor)
	glw.Clear()
	win.SwapBuffers()

	frames := 0
	for !win.ShouldClose() {
		if err := scn.Frame(win); err != nil {
			logger.Println(err)
			return ExitFail
		}
		win.PollEvents()
		frames++
	}

	if cfg.Verbose {
		logger.Printf("closed after %v frames", frames)
	}
	return ExitOK
}
