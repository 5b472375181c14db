package tri_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"dasa.cc/triangle/glw"
	"dasa.cc/triangle/glw/glwtest"
	"dasa.cc/triangle/tri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

var (
	background = f32.Vec4{0.07, 0.13, 0.17, 1.0}
	orange     = f32.Vec4{0.8, 0.3, 0.02, 1.0}
)

// window closes after a fixed number of frames and keeps a copy of every
// presented frame. Window calls are recorded into the context's call log.
type window struct {
	glctx *glwtest.Context
	polls int
	limit int

	// fail queues a GL error when the frame with this index is presented.
	fail int

	presented []*glwtest.Frame
	closed    bool
}

func newWindow(glctx *glwtest.Context, frames int) *window {
	return &window{glctx: glctx, limit: frames, fail: -1}
}

func (w *window) ShouldClose() bool { return w.polls >= w.limit }

func (w *window) SwapBuffers() {
	w.glctx.Calls = append(w.glctx.Calls, "SwapBuffers()")
	if len(w.presented) == w.fail {
		w.glctx.PushError(glw.INVALID_OPERATION)
	}
	w.presented = append(w.presented, w.glctx.Frame().Clone())
}

func (w *window) PollEvents() {
	w.glctx.Calls = append(w.glctx.Calls, "PollEvents()")
	w.polls++
}

func (w *window) Close() {
	w.glctx.Calls = append(w.glctx.Calls, "Close()")
	w.closed = true
}

func opener(w *window) tri.Opener {
	return func(tri.Config) (tri.Window, glw.Context, error) { return w, w.glctx, nil }
}

func testConfig() tri.Config {
	cfg := tri.DefaultConfig()
	cfg.Width, cfg.Height = 80, 80
	return cfg
}

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

func TestRunWindowFailure(t *testing.T) {
	glctx := glwtest.New(80, 80)
	glw.With(glctx)

	logger, out := testLogger()
	code := tri.Run(testConfig(), func(tri.Config) (tri.Window, glw.Context, error) {
		return nil, nil, errors.New("no display")
	}, logger)

	assert.Equal(t, -1, code)
	assert.Equal(t, "Failed to create GLFW Window: no display\n", out.String())
	assert.Empty(t, glctx.Calls, "GL called after window creation failed")
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0

	opened := false
	logger, out := testLogger()
	code := tri.Run(cfg, func(tri.Config) (tri.Window, glw.Context, error) {
		opened = true
		return nil, nil, nil
	}, logger)

	assert.Equal(t, tri.ExitFail, code)
	assert.False(t, opened)
	assert.Contains(t, out.String(), tri.ErrSize.Error())
}

func TestRun(t *testing.T) {
	glctx := glwtest.New(80, 80)
	win := newWindow(glctx, 3)
	logger, out := testLogger()

	require.Equal(t, tri.ExitOK, tri.Run(testConfig(), opener(win), logger))
	assert.Empty(t, out.String())
	assert.True(t, win.closed)

	// setup, prime frame and first loop iteration
	calls := glctx.Calls
	i := indexOf(calls, "Viewport(0, 0, 80, 80)")
	require.NotEqual(t, -1, i)
	j := indexOf(calls, "SwapBuffers()")
	require.NotEqual(t, -1, j)
	assert.Equal(t, []string{
		"ClearColor(0.07, 0.13, 0.17, 1)",
		"Clear(COLOR_BUFFER_BIT)",
		"SwapBuffers()",
		"ClearColor(0.07, 0.13, 0.17, 1)",
		"Clear(COLOR_BUFFER_BIT)",
		"UseProgram(1)",
		"BindVertexArray(4)",
		"DrawArrays(TRIANGLES, 0, 3)",
		"SwapBuffers()",
		"PollEvents()",
	}, calls[j-2:j+8])

	// one draw per frame, each the same
	require.Len(t, glctx.Draws, 3)
	for _, d := range glctx.Draws {
		assert.Equal(t, glwtest.Draw{Mode: glw.TRIANGLES, First: 0, Count: 3, Program: 1, Array: 4}, d)
	}

	// teardown after the loop, before the window goes away
	assert.Equal(t, []string{
		"PollEvents()",
		"DeleteVertexArray(4)",
		"DeleteBuffer(5)",
		"DeleteProgram(1)",
		"Close()",
	}, calls[len(calls)-5:])
	assert.Zero(t, glctx.Live())
}

func TestRunFrames(t *testing.T) {
	glctx := glwtest.New(80, 80)
	win := newWindow(glctx, 4)
	logger, _ := testLogger()

	require.Equal(t, tri.ExitOK, tri.Run(testConfig(), opener(win), logger))
	require.Len(t, win.presented, 5)

	prime := win.presented[0]
	assert.Equal(t, 80*80, prime.Count(background))

	first := win.presented[1]
	covered, uncovered := first.Count(orange), first.Count(background)
	assert.NotZero(t, covered)
	assert.NotZero(t, uncovered)
	assert.Equal(t, 80*80, covered+uncovered, "pixel neither background nor triangle")

	// centroid and apex region inside, corners outside
	assert.Equal(t, orange, first.At(40, 40))
	assert.Equal(t, orange, first.At(40, 58))
	for _, p := range [][2]int{{0, 0}, {79, 0}, {0, 79}, {79, 79}, {40, 70}} {
		assert.Equal(t, background, first.At(p[0], p[1]), "pixel %v", p)
	}

	for i, f := range win.presented[2:] {
		assert.Equal(t, first.Pix, f.Pix, "frame %v differs from first", i+2)
	}
}

func TestRunBuildFailure(t *testing.T) {
	glctx := glwtest.New(80, 80)
	win := newWindow(glctx, 3)
	logger, out := testLogger()

	cfg := testConfig()
	cfg.Fragment = "#version 330 core\n#error no color\n"

	assert.Equal(t, tri.ExitFail, tri.Run(cfg, opener(win), logger))
	assert.True(t, strings.HasPrefix(out.String(), "tri: build program: FragmentShader"), out.String())
	assert.Contains(t, out.String(), "#error no color")

	assert.True(t, win.closed)
	assert.Empty(t, glctx.Draws)
	assert.Empty(t, win.presented)
	assert.Zero(t, glctx.Live())
	assert.Equal(t, "Close()", glctx.Calls[len(glctx.Calls)-1])
}

func TestRunFrameError(t *testing.T) {
	glctx := glwtest.New(80, 80)
	win := newWindow(glctx, 10)
	win.fail = 2
	logger, out := testLogger()

	assert.Equal(t, tri.ExitFail, tri.Run(testConfig(), opener(win), logger))
	assert.Equal(t, "tri: frame: gl error INVALID_OPERATION\n", out.String())
	assert.Len(t, win.presented, 3)
	assert.Equal(t, 1, win.polls)
	assert.True(t, win.closed)
	assert.Zero(t, glctx.Live())
}

func TestRunVerbose(t *testing.T) {
	glctx := glwtest.New(80, 80)
	win := newWindow(glctx, 2)
	logger, out := testLogger()

	cfg := testConfig()
	cfg.Verbose = true
	require.Equal(t, tri.ExitOK, tri.Run(cfg, opener(win), logger))
	assert.Equal(t, "OpenGL 3.3.0 glwtest, glwtest software rasterizer\nclosed after 2 frames\n", out.String())
}

func indexOf(calls []string, call string) int {
	for i, s := range calls {
		if s == call {
			return i
		}
	}
	return -1
}
