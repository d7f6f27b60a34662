//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"photobreak/internal/game"
)

// Input tracks edge-triggered keys and the pointer for one window.
type Input struct {
	prevKeys map[glfw.Key]bool

	cursorX     float64
	cursorMoved bool
	mouseActive bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Attach installs the cursor callback. Cursor coordinates are window
// coordinates, which are also canvas coordinates.
func (in *Input) Attach(window *glfw.Window) {
	window.SetCursorPosCallback(func(_ *glfw.Window, x, _ float64) {
		in.cursorX = x
		in.cursorMoved = true
	})
}

func keyDown(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Sample builds the per-frame paddle input. Keys override the pointer until
// the mouse moves again.
func (in *Input) Sample(window *glfw.Window) game.Input {
	var dir int
	if keyDown(window, glfw.KeyLeft, glfw.KeyA) {
		dir--
	}
	if keyDown(window, glfw.KeyRight, glfw.KeyD) {
		dir++
	}
	if dir != 0 {
		in.mouseActive = false
	}
	if in.cursorMoved {
		in.mouseActive = true
		in.cursorMoved = false
	}
	return game.Input{TargetX: in.cursorX, HasTarget: in.mouseActive && dir == 0, Dir: dir}
}
