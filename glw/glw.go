// Package glw wraps the handful of OpenGL objects needed to put vertices on
// screen: shader programs, vertex buffers, attributes and vertex arrays.
//
// All calls go through the Context installed with With. A Context must only
// be used from the goroutine locked to the thread that owns it.
package glw

import (
	"errors"
	"io"
	"log"
	"os"

	"golang.org/x/image/math/f32"
)

var (
	ctx    Context
	logger = log.New(os.Stderr, "glw: ", 0)
)

// ErrEmptySource is returned when building a program from empty shader source.
var ErrEmptySource = errors.New("glw: empty shader source")

// With installs glctx as the context for subsequent calls and returns it.
//
// TODO allow package to be used by multiple contexts in parallel.
func With(glctx Context) Context { ctx = glctx; return glctx }

// SetOutput sets the output destination for the package logger.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// ClearColor sets the clear color of the current context.
func ClearColor(c f32.Vec4) { ctx.ClearColor(c[0], c[1], c[2], c[3]) }

// Clear clears the color buffer of the current context.
func Clear() { ctx.Clear(COLOR_BUFFER_BIT) }

// Viewport sets the viewport of the current context.
func Viewport(x, y, width, height int) { ctx.Viewport(x, y, width, height) }

// Version reports the version and renderer strings of the current context.
func Version() (version, renderer string) {
	return ctx.GetString(VERSION), ctx.GetString(RENDERER)
}
