//go:build !android

// Package desktop is the GLFW/OpenGL front-end.
package desktop

import (
	"fmt"
	"runtime"

	"fortio.org/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"photobreak/internal/app"
	"photobreak/internal/game"
)

// idleWait bounds how long an idle loop blocks on input, in seconds.
const idleWait = 0.05

// Run opens the window and plays until it is closed.
func Run(o app.Options) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	input := NewInput()
	input.Attach(window)
	a, err := app.New(o, func() game.Input { return input.Sample(window) }, nil)
	if err != nil {
		return err
	}

	// Dropping an image file on the window swaps the photo.
	var dropped string
	window.SetDropCallback(func(_ *glfw.Window, names []string) {
		if len(names) > 0 {
			dropped = names[0]
		}
	})

	idle := false
	for !window.ShouldClose() {
		// With no frame queued the picture only changes on input.
		if idle {
			glfw.WaitEventsTimeout(idleWait)
		} else {
			glfw.PollEvents()
		}
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if dropped != "" {
			if err := a.LoadPhoto(dropped); err != nil {
				log.Errf("Dropped file: %v", err)
			}
			dropped = ""
		}
		if input.JustPressed(window, glfw.KeySpace) {
			a.Continue()
		}
		if input.JustPressed(window, glfw.KeyR) {
			a.Reselect()
		}
		if input.JustPressed(window, glfw.KeyM) {
			a.ToggleMute()
		}

		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		if winW <= 0 || winH <= 0 || fbW <= 0 || fbH <= 0 {
			glfw.WaitEventsTimeout(0.1)
			continue
		}
		s := a.Session
		s.Resize(float64(winW), float64(winH))

		a.Tick(glfw.GetTime() * 1000)
		idle = !a.Queue.Pending()

		rend.BeginFrame(fbW, fbH, s.CanvasW, s.CanvasH, s.Shake)
		rend.DrawSession(s)
		window.SwapBuffers()
	}
	return nil
}
