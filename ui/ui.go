package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/kestrelbox/nesgo/nes"
)

const framesPerSecond = 60

func mainLoop(window *glfw.Window, emu *nes.Emulator, program, texture uint32) {
	for range time.Tick(1 * time.Second) {
		// Step until the PPU has delivered a second's worth of frames,
		// painting each one as it completes.
		frames := 0
		for frames < framesPerSecond {
			emu.Step()
			if emu.FrameReady() {
				frames++
				gl.UseProgram(program)
				updateTexture(texture, emu.Buffer())
				window.SwapBuffers()
				glfw.PollEvents()
				applyKeys(emu, window)
			}
		}
		if window.ShouldClose() {
			return
		}
	}
}

// Start opens a window and runs emu until the user closes it. width
// and height are the window's pixel dimensions; the NES's 256x240
// frame is stretched to fill them.
func Start(emu *nes.Emulator, width, height int) {
	if err := glfw.Init(); err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "nesgo", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}

	program, texture, err := newProgram()
	if err != nil {
		glog.Fatalln(err)
	}

	spk := newSpeaker()
	if err := spk.start(); err != nil {
		glog.Errorln("audio disabled: ", err)
	} else {
		defer spk.stop()
		emu.AudioOut(spk.samples)
	}

	mainLoop(window, emu, program, texture)
}
