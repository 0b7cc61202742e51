package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadROM(t *testing.T) {
	_, err := New([]byte{0x00, 0x00})
	require.Error(t, err)
}

// resetVectorLowOffset is the file offset of the RESET vector's low
// byte ($FFFC) for a ROM with a full 32 KiB PRG image (no mirroring),
// which fills the whole $8000-$FFFF window 1:1.
func resetVectorLowOffset(prgBanks int) int {
	return 16 + prgBanks*16384 - 4
}

func TestNew_BootsToResetVector(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	off := resetVectorLowOffset(2)
	rom[off] = 0x00
	rom[off+1] = 0x80

	emu, err := New(rom)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8000), emu.cpu.pc)
}

func TestEmulator_StepDrivesPPUThreeTimesPerCPUCycle(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	// a single NOP ($EA) at $8000, the reset vector's target.
	rom[16] = 0xEA
	off := resetVectorLowOffset(2)
	rom[off] = 0x00
	rom[off+1] = 0x80

	emu, err := New(rom)
	require.NoError(t, err)

	startCycle := emu.ppu.cycle
	emu.Step()
	// NOP takes 2 CPU cycles, so the PPU should have advanced 6 dots.
	assert.Equal(t, (startCycle+6)%341, emu.ppu.cycle)
}

func TestEmulator_SetButtonPressedRoutesToCorrectPad(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	emu, err := New(rom)
	require.NoError(t, err)

	emu.SetButtonPressed(0, ButtonA, true)
	emu.SetButtonPressed(1, ButtonB, true)
	assert.True(t, emu.controller1.buttons[ButtonA])
	assert.False(t, emu.controller1.buttons[ButtonB])
	assert.True(t, emu.controller2.buttons[ButtonB])
}

func TestEmulator_NOPJMPLoopOscillates(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	// $8000: NOP; $8001: JMP $8000.
	rom[16] = 0xEA
	rom[17] = 0x4C
	rom[18] = 0x00
	rom[19] = 0x80
	off := resetVectorLowOffset(2)
	rom[off] = 0x00
	rom[off+1] = 0x80

	emu, err := New(rom)
	require.NoError(t, err)

	emu.Step()
	assert.Equal(t, uint16(0x8001), emu.cpu.pc, "after the NOP")
	cyclesAfterNOP := emu.cpu.cycles

	for i := 0; i < 8; i++ {
		before := emu.cpu.cycles
		emu.Step()
		if i%2 == 0 {
			assert.Equal(t, uint16(0x8000), emu.cpu.pc, "after the JMP")
			assert.Equal(t, uint64(3), emu.cpu.cycles-before, "JMP absolute costs 3 cycles")
		} else {
			assert.Equal(t, uint16(0x8001), emu.cpu.pc, "after the NOP")
			assert.Equal(t, uint64(2), emu.cpu.cycles-before, "NOP costs 2 cycles")
		}
	}
	assert.Greater(t, emu.cpu.cycles, cyclesAfterNOP)
}

func TestEmulator_VBlankNMIFiresOncePerFrame(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	// $8000: LDA #$80; STA $2000; loop: JMP loop.
	program := []byte{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
		0x4C, 0x05, 0x80, // JMP $8005
	}
	copy(rom[16:], program)
	// NMI handler at $8100: INC $00; RTI.
	copy(rom[16+0x100:], []byte{0xE6, 0x00, 0x40})
	off := resetVectorLowOffset(2)
	rom[off] = 0x00 // RESET -> $8000
	rom[off+1] = 0x80
	rom[off-2] = 0x00 // NMI -> $8100
	rom[off-1] = 0x81

	emu, err := New(rom)
	require.NoError(t, err)

	// Run until the first NMI increments $00, bounded to a few frames.
	for i := 0; i < 200000 && emu.cpu.bus.read(0x0000) == 0; i++ {
		emu.Step()
	}
	require.Equal(t, byte(1), emu.cpu.bus.read(0x0000), "the handler ran at least once")

	// One more frame of CPU time delivers exactly one more NMI.
	start := emu.cpu.cycles
	for emu.cpu.cycles < start+35000 {
		emu.Step()
	}
	assert.Equal(t, byte(2), emu.cpu.bus.read(0x0000))
}

func TestEmulator_BufferMatchesPPUFrameDimensions(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	emu, err := New(rom)
	require.NoError(t, err)
	assert.Len(t, emu.Buffer(), PPUWidth*PPUHeight*3)
}
