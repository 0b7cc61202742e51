package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCPUBus() (*CPUBus, *PPU) {
	m := &fakeMapper{mirror: MirrorHorizontal}
	ppu := NewPPU(NewPPUBus(NewRAM(), m))
	return NewCPUBus(NewRAM(), ppu, NewAPU(), m, NewController(), NewController()), ppu
}

func TestCPUBus_RAMMirrorsEvery2KiB(t *testing.T) {
	b, _ := newTestCPUBus()
	b.write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.read(0x0800))
	assert.Equal(t, byte(0x42), b.read(0x1000))
	assert.Equal(t, byte(0x42), b.read(0x1800))

	b.write(0x1FFF, 0x24)
	assert.Equal(t, byte(0x24), b.read(0x07FF))
}

func TestCPUBus_PPURegistersMirrorEvery8(t *testing.T) {
	b, ppu := newTestCPUBus()
	// $3FFE decodes as PPUADDR ($2006).
	b.write(0x3FFE, 0x21)
	b.write(0x3FFE, 0x08)
	assert.Equal(t, uint16(0x2108), ppu.v)
}

// The full strobe-then-shift sequence, driven through $4016 the way a
// game's input polling loop does it.
func TestCPUBus_ControllerStrobeSequence(t *testing.T) {
	b, _ := newTestCPUBus()
	b.write(0x4016, 0x01)
	b.controller1.SetButton(ButtonA, true)
	b.write(0x4016, 0x00)

	want := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	for i, w := range want {
		assert.Equal(t, w, b.read(0x4016)&1, "read %d", i)
	}
	assert.Equal(t, byte(1), b.read(0x4016)&1, "ninth read returns 1")
}

func TestCPUBus_APUStatusReadRoutesTo4015(t *testing.T) {
	b, _ := newTestCPUBus()
	b.apu.frameIRQ = true
	assert.Equal(t, byte(0x40), b.read(0x4015))
	assert.Equal(t, byte(0x00), b.read(0x4015), "the read acknowledged the frame IRQ")
}

func TestCPUBus_UnmappedReadsReturnZero(t *testing.T) {
	b, _ := newTestCPUBus()
	assert.Equal(t, byte(0), b.read(0x4018))
	assert.Equal(t, byte(0), b.read(0x401F))
}

func TestCPUBus_APUWritesAreAccepted(t *testing.T) {
	b, _ := newTestCPUBus()
	// Must not panic or leak anywhere observable.
	b.write(0x4000, 0xFF)
	b.write(0x4015, 0x0F)
	b.write(0x4017, 0x40)
}
