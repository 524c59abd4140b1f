// main.go - Demo harness entry point
//
// Wires an Engine to whichever Output/Pointer/Key backend this build was
// compiled with (headless for CI, ebiten or terminal otherwise) and draws a
// small sample scene: a fixed background panel, a draggable box, and a
// cursor. Flag handling follows cmd/ie32to64/main.go's style.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	width := flag.Int("width", 640, "display width in pixels")
	height := flag.Int("height", 480, "display height in pixels")
	backend := flag.String("backend", "auto", "output backend: auto, ebiten, or term")
	runSeconds := flag.Int("run-seconds", 0, "exit automatically after N seconds (0 = run until closed)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: guicompositor [options]\n\nRuns the sample scene through the compositor.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	output, pointer, key, err := buildBackend(*backend, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	engine, err := LibConstruct(output, pointer, key, nil, *width/2, *height/2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer engine.LibDestruct()

	scene := buildSampleScene(engine)

	drawCtx := &DrawingContext{}
	deadline := time.Time{}
	if *runSeconds > 0 {
		deadline = time.Now().Add(time.Duration(*runSeconds) * time.Second)
	}

	getCursorImage := func(cursor *CursorViewState, guiCtx any) *Image {
		return scene.cursorImage
	}

	engine.ViewInitialize(drawCtx, scene.screen, getCursorImage, func(any) bool {
		return !deadline.IsZero() && time.Now().After(deadline)
	}, scene)

	engine.RedrawAndFlush(drawCtx)
	engine.DrawLoop(drawCtx)

	fmt.Println(engine.DumpDiagnostics())
}

// validateResolutionOverride accepts a resolution override only when both
// dimensions are positive; otherwise it reports (0, 0, false).
func validateResolutionOverride(width, height int) (int, int, bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
