// Example demonstrates a small keyboard-driven menu: three buttons and a
// name entry cycled with Tab and activated with Enter.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/arcadekit/gui"
	"github.com/arcadekit/gui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the GUI renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := gui.New(renderer, gui.WithTheme(gui.ArcadeTheme()))
	theme := ui.Theme()

	status := "ready"

	play := gui.NewButton(gui.Rect{X: 40, Y: 40, W: 200, H: 40}, "Play", theme, func() {
		status = "playing"
	})
	options := gui.NewButton(gui.Rect{X: 40, Y: 100, W: 200, H: 40}, "Options", theme, func() {
		status = "options"
	})
	quit := gui.NewButton(gui.Rect{X: 40, Y: 160, W: 200, H: 40}, "Quit", theme, func() {
		window.SetShouldClose(true)
	})

	// Player name: slug characters plus interior spaces.
	slug := gui.NewSlugValidator(true)
	name := gui.NewTextEntry(gui.Rect{X: 40, Y: 240, W: 260, H: 36}, theme, slug.Validate)
	name.SetText("PLAYER_1")

	ui.Add(play)
	ui.Add(options)
	ui.Add(quit)
	ui.Add(name)

	tabs := gui.NewTabList(
		[]gui.TabStop{play, options, quit, name},
		gui.RGBA(0, 80, 120, 255), gui.ColorCyan,
		gui.KeyTab, gui.KeyEnter,
	)
	ui.AddTabList(tabs)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()
		input.UpdateKeyRepeat(1.0 / 60.0)

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.10, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.Resize(w, h)
		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		if err := ui.Frame(input, displaySize); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SetTitle(fmt.Sprintf("%s - %s [%s]", windowTitle, status, name.Text()))
		window.SwapBuffers()
	}

	return nil
}
