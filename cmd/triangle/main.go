// Command triangle opens a window and draws an orange triangle until closed.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"dasa.cc/triangle/glw"
	"dasa.cc/triangle/glw/glcore"
	"dasa.cc/triangle/nui"
	"dasa.cc/triangle/tri"
)

var (
	cfg = tri.DefaultConfig()

	flagVerbose = flag.Bool("v", false, "verbose")
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "window and viewport width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window and viewport height in pixels")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	flag.IntVar(&cfg.SwapInterval, "swap", cfg.SwapInterval, "screen updates to wait for between frames; 0 disables vsync")
}

func open(cfg tri.Config) (tri.Window, glw.Context, error) {
	win, err := nui.Open(nui.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		Major:        cfg.Major,
		Minor:        cfg.Minor,
		SwapInterval: cfg.SwapInterval,
	})
	if err != nil {
		return nil, nil, err
	}
	glctx, err := glcore.New()
	if err != nil {
		win.Close()
		return nil, nil, err
	}
	return win, glctx, nil
}

func main() {
	flag.Parse()
	cfg.Verbose = *flagVerbose

	logger := log.New(os.Stdout, "triangle: ", 0)
	glw.SetOutput(os.Stdout)

	os.Exit(tri.Run(cfg, open, logger))
}
