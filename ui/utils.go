package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kestrelbox/nesgo/nes"
)

// getKeys reads the state of the keyboard, WASD for directions, J/H
// for the primary/secondary buttons, F/G for select/start.
func getKeys(window *glfw.Window) [8]bool {
	var keys [8]bool
	keys[nes.ButtonRight] = window.GetKey(glfw.KeyD) == glfw.Press
	keys[nes.ButtonLeft] = window.GetKey(glfw.KeyA) == glfw.Press
	keys[nes.ButtonDown] = window.GetKey(glfw.KeyS) == glfw.Press
	keys[nes.ButtonUp] = window.GetKey(glfw.KeyW) == glfw.Press
	keys[nes.ButtonStart] = window.GetKey(glfw.KeyG) == glfw.Press
	keys[nes.ButtonSelect] = window.GetKey(glfw.KeyF) == glfw.Press
	keys[nes.ButtonB] = window.GetKey(glfw.KeyH) == glfw.Press
	keys[nes.ButtonA] = window.GetKey(glfw.KeyJ) == glfw.Press
	return keys
}

// applyKeys reads the keyboard and pushes the result onto controller
// port 0. Port 1 has no local input source in this build.
func applyKeys(emu *nes.Emulator, window *glfw.Window) {
	keys := getKeys(window)
	for b, pressed := range keys {
		emu.SetButtonPressed(0, nes.Button(b), pressed)
	}
}
