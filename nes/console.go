// Package nes implements a cycle-driven NES emulator core: cartridge
// loading, CPU, PPU, APU stub, and the handful of supported mapper
// chips, all stepped synchronously through the Emulator facade below.
package nes

const (
	// PPUWidth and PPUHeight are the frame buffer's pixel dimensions.
	PPUWidth  = width
	PPUHeight = height
)

// Emulator is the console: construct one from ROM bytes, then drive it
// by repeatedly calling Step.
type Emulator struct {
	cartridge   *Cartridge
	mapper      Mapper
	cpu         *CPU
	ppu         *PPU
	apu         *APU
	controller1 *Controller
	controller2 *Controller
}

// New parses romBytes as an iNES image and wires up a console ready to
// run from its reset vector.
func New(romBytes []byte) (*Emulator, error) {
	cartridge, err := NewCartridge(romBytes)
	if err != nil {
		return nil, err
	}
	mapper, err := NewMapper(cartridge)
	if err != nil {
		return nil, err
	}
	ppuBus := NewPPUBus(NewRAM(), mapper)
	ppu := NewPPU(ppuBus)
	apu := NewAPU()
	controller1 := NewController()
	controller2 := NewController()
	cpuBus := NewCPUBus(NewRAM(), ppu, apu, mapper, controller1, controller2)
	cpu := NewCPU(cpuBus)
	return &Emulator{
		cartridge:   cartridge,
		mapper:      mapper,
		cpu:         cpu,
		ppu:         ppu,
		apu:         apu,
		controller1: controller1,
		controller2: controller2,
	}, nil
}

// Reset re-initializes the CPU and PPU as if the console's reset
// button had been pressed.
func (e *Emulator) Reset() {
	e.cpu.Reset()
	e.ppu.Reset()
}

// Step runs the CPU for exactly one instruction (or one stalled
// cycle, or one interrupt dispatch), then ticks the PPU three times
// and the APU once per CPU cycle consumed, in that order.
func (e *Emulator) Step() {
	cycles := e.cpu.Step()
	for i := 0; i < cycles; i++ {
		for j := 0; j < 3; j++ {
			if e.ppu.Step() {
				e.cpu.TriggerNMI()
			}
		}
		e.apu.Step()
	}
	// The IRQ line is level-triggered and sampled at instruction
	// boundaries, so once per facade step is enough.
	e.cpu.SetIRQLine(e.apu.IRQ())
}

// Buffer returns the frame buffer as 256*240*3 row-major RGB bytes.
// It is always the same slice, and the PPU draws into it pixel by
// pixel, so mid-frame it holds part of the current frame and part of
// the previous one; check FrameReady to know when a frame completed.
func (e *Emulator) Buffer() []byte {
	return e.ppu.frame[:]
}

// FrameReady reports and clears whether a new frame has completed
// since the last call.
func (e *Emulator) FrameReady() bool {
	_, ok := e.ppu.Frame()
	return ok
}

// SetButtonPressed updates one button on one of the two controller
// ports (pad 0 or 1).
func (e *Emulator) SetButtonPressed(pad int, button Button, pressed bool) {
	switch pad {
	case 0:
		e.controller1.SetButton(button, pressed)
	case 1:
		e.controller2.SetButton(button, pressed)
	}
}

// AudioOut wires a sample channel to the APU stub so a host shell can
// stream its (silent) output.
func (e *Emulator) AudioOut(c chan float32) {
	e.apu.SetAudioOut(c)
}
