package nui

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window whose context is current on the calling thread.
type Window struct {
	*glfw.Window
}

// Open initializes GLFW and creates a window with a current core profile
// context. GLFW is terminated again if the window can't be created.
func Open(cfg Config) (*Window, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("nui: init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("nui: create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	return &Window{window}, nil
}

// PollEvents processes pending events of all windows.
func (w *Window) PollEvents() { glfw.PollEvents() }

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
