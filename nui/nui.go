// Package nui aims to be unremarkable in aiding windowing.
//
// A Window pairs one GLFW window with the OpenGL context it owns. All
// functions must be called from the main thread.
package nui

import "fmt"

// Config describes the window and context to create.
type Config struct {
	Width, Height int
	Title         string

	// Major and Minor select the core profile context version.
	Major, Minor int

	// SwapInterval is the number of screen updates to wait for on SwapBuffers.
	SwapInterval int
}

// validate rejects hints GLFW would only report once a window is requested.
// Window size and title are left to the caller.
func (cfg Config) validate() error {
	if cfg.Major < 3 || (cfg.Major == 3 && cfg.Minor < 2) {
		return fmt.Errorf("nui: core profile needs context version 3.2 or later, have %v.%v", cfg.Major, cfg.Minor)
	}
	return nil
}
