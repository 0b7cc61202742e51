package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelbox/nesgo/nes"
)

// backdropROM builds a 32 KiB NROM image whose program paints the
// whole screen a single color: it writes palette entry $3F00 and then
// enables background rendering, leaving the nametables and pattern
// tables zeroed so every pixel resolves to the universal background
// color.
func backdropROM(paletteEntry byte) []byte {
	rom := make([]byte, 16+2*16384+8192)
	copy(rom, []byte{0x4E, 0x45, 0x53, 0x1A})
	rom[4] = 2 // PRG banks
	rom[5] = 1 // CHR banks

	program := []byte{
		0xA9, 0x3F, // LDA #$3F
		0x8D, 0x06, 0x20, // STA $2006
		0xA9, 0x00, // LDA #$00
		0x8D, 0x06, 0x20, // STA $2006
		0xA9, paletteEntry, // LDA #entry
		0x8D, 0x07, 0x20, // STA $2007
		0xA9, 0x08, // LDA #$08
		0x8D, 0x01, 0x20, // STA $2001
		0x4C, 0x14, 0x80, // loop: JMP $8014
	}
	copy(rom[16:], program)

	// RESET vector -> $8000.
	resetLow := 16 + 2*16384 - 4
	rom[resetLow] = 0x00
	rom[resetLow+1] = 0x80
	return rom
}

// TestRendersSolidBackdrop runs the whole stack end to end: ROM load,
// CPU execution, PPU register writes over the bus, and three full
// rendered frames, then checks every pixel of the frame buffer.
func TestRendersSolidBackdrop(t *testing.T) {
	emu, err := nes.New(backdropROM(0x21)) // light blue
	require.NoError(t, err)

	frames := 0
	for i := 0; i < 400000 && frames < 3; i++ {
		emu.Step()
		if emu.FrameReady() {
			frames++
		}
	}
	require.Equal(t, 3, frames, "the PPU must keep producing frames")

	buf := emu.Buffer()
	require.Len(t, buf, nes.PPUWidth*nes.PPUHeight*3)

	// Palette entry $21 is light blue in the Famicom palette.
	want := [3]byte{0x6D, 0xB6, 0xFF}
	for i := 0; i < len(buf); i += 3 {
		if buf[i] != want[0] || buf[i+1] != want[1] || buf[i+2] != want[2] {
			t.Fatalf("pixel %d: got (%02x, %02x, %02x), want (%02x, %02x, %02x)",
				i/3, buf[i], buf[i+1], buf[i+2], want[0], want[1], want[2])
		}
	}
}

func TestRejectsGarbageImage(t *testing.T) {
	_, err := nes.New([]byte("NOPE\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"))
	assert.Error(t, err)
}

func TestSetButtonPressedAcceptsAllPadsAndButtons(t *testing.T) {
	emu, err := nes.New(backdropROM(0x21))
	require.NoError(t, err)
	// The facade must accept all pads and buttons without panicking,
	// including out-of-range pad indexes.
	for pad := 0; pad < 3; pad++ {
		for b := nes.ButtonA; b <= nes.ButtonRight; b++ {
			emu.SetButtonPressed(pad, b, true)
			emu.SetButtonPressed(pad, b, false)
		}
	}
}
