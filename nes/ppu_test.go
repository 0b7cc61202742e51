package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPPU() *PPU {
	m := &fakeMapper{mirror: MirrorHorizontal}
	bus := NewPPUBus(NewRAM(), m)
	return NewPPU(bus)
}

func TestPPU_PPUADDRTwoWriteLatch(t *testing.T) {
	p := newTestPPU()
	p.writePPUADDR(0x23)
	assert.True(t, p.w, "first write sets the address latch")
	p.writePPUADDR(0x45)
	assert.False(t, p.w, "second write clears the address latch")
	assert.Equal(t, uint16(0x2345), p.v)
}

func TestPPU_PPUSCROLLTwoWriteLatch(t *testing.T) {
	p := newTestPPU()
	p.writePPUSCROLL(0x7D) // coarse X=15, fine X=5
	assert.Equal(t, byte(5), p.x)
	p.writePPUSCROLL(0x5E)
	assert.False(t, p.w)
}

func TestPPU_PPUSTATUSReadClearsVBlankAndLatch(t *testing.T) {
	p := newTestPPU()
	p.status = 0x80
	p.nmiOccurred = true
	p.w = true
	got := p.readPPUSTATUS()
	assert.Equal(t, byte(0x80), got)
	assert.False(t, p.w)
	assert.False(t, p.nmiOccurred)
	assert.Equal(t, byte(0), p.status&0x80)
}

func TestPPU_PPUDATABufferedReadOutsidePalette(t *testing.T) {
	p := newTestPPU()
	p.bus.write(0x2000, 0xAB)
	p.v = 0x2000
	first := p.readPPUDATA()
	assert.NotEqual(t, byte(0xAB), first, "first read returns the stale buffer contents")
	second := p.readPPUDATA()
	assert.Equal(t, byte(0xAB), second, "second read returns the buffered value")
}

func TestPPU_PPUDATAPaletteReadIsImmediate(t *testing.T) {
	p := newTestPPU()
	p.bus.write(0x3F05, 0x09)
	p.v = 0x3F05
	assert.Equal(t, byte(0x09), p.readPPUDATA(), "palette reads aren't buffered")
}

func TestPPU_PPUDATAWriteIncrementsByCtrlStep(t *testing.T) {
	p := newTestPPU()
	p.writePPUCTRL(0x04) // VRAM increment of 32
	p.v = 0x2000
	p.writePPUDATA(0x01)
	assert.Equal(t, uint16(0x2020), p.v)
}

func TestPPU_OAMDATAReadWrite(t *testing.T) {
	p := newTestPPU()
	p.writeOAMADDR(0x10)
	p.writeOAMDATA(0x99)
	assert.Equal(t, byte(0x11), p.oamAddr, "OAMDATA write auto-increments OAMADDR")
	p.writeOAMADDR(0x10)
	assert.Equal(t, byte(0x99), p.readOAMDATA())
}

func TestPPU_OAMDMACopiesFullPage(t *testing.T) {
	p := newTestPPU()
	var page [256]byte
	for i := range page {
		page[i] = byte(i)
	}
	p.writeOAMDMA(page)
	for i := range page {
		assert.Equal(t, byte(i), p.oam[i])
	}
}

func TestPPU_VBlankFlagAndNMIEdge(t *testing.T) {
	p := newTestPPU()
	p.writePPUCTRL(0x80) // enable NMI generation
	p.cycle = 340
	p.scanline = 240

	var fired bool
	for i := 0; i < 2; i++ {
		if p.Step() {
			fired = true
		}
	}
	assert.True(t, fired, "entering vblank with NMI enabled must raise the CPU's NMI line")
	assert.Equal(t, byte(0x80), p.status&0x80)
}

func TestPPU_VBlankClearedAtPreRenderLine(t *testing.T) {
	p := newTestPPU()
	p.status = 0x80 | 0x40 | 0x20
	p.nmiOccurred = false
	p.cycle = 340
	p.scanline = 260
	p.Step() // rolls over into scanline 261, cycle 0
	p.Step() // advances to cycle 1, the pre-render line's flag-clear point
	assert.Equal(t, byte(0), p.status&(0x40|0x20), "sprite-0-hit and overflow clear at the pre-render line")
}

func TestPPU_ExactlyOneNMIPerFrame(t *testing.T) {
	p := newTestPPU()
	p.writePPUCTRL(0x80)

	count := 0
	for i := 0; i < 341*262*2; i++ {
		if p.Step() {
			count++
		}
	}
	assert.Equal(t, 2, count, "two frames produce exactly two NMI edges")
}

func TestPPU_SpriteZeroHit(t *testing.T) {
	m := &fakeMapper{mirror: MirrorHorizontal}
	// Tile 0 (background) and tile 1 (sprite) fully opaque in the low
	// bit plane.
	for i := 0; i < 8; i++ {
		m.chr[i] = 0xFF
		m.chr[16+i] = 0xFF
	}
	p := NewPPU(NewPPUBus(NewRAM(), m))
	p.mask = 0x18

	// Sprite 0 at x=96; a sprite latched on scanline N draws on N+1.
	p.oam[0] = 49
	p.oam[1] = 1
	p.oam[2] = 0
	p.oam[3] = 96

	p.scanline = 49
	p.cycle = 0
	for p.scanline < 51 {
		p.Step()
	}
	assert.Equal(t, byte(0x40), p.status&0x40, "opaque sprite 0 over opaque background sets the hit flag")
}

func TestPPU_SpriteZeroHitSuppressedAtDot256(t *testing.T) {
	m := &fakeMapper{mirror: MirrorHorizontal}
	for i := 0; i < 8; i++ {
		m.chr[i] = 0xFF
		m.chr[16+i] = 0xFF
	}
	p := NewPPU(NewPPUBus(NewRAM(), m))
	p.mask = 0x18

	// The sprite's only overlap with x=255 is its first column.
	p.oam[0] = 49
	p.oam[1] = 1
	p.oam[2] = 0
	p.oam[3] = 255

	p.scanline = 49
	p.cycle = 0
	for p.scanline < 51 {
		p.Step()
	}
	assert.Equal(t, byte(0), p.status&0x40, "no hit is recorded at x=255")
}

func TestPPU_SpriteOverflowFlag(t *testing.T) {
	p := newTestPPU()
	p.mask = 0x18 // enable background and sprite rendering
	p.scanline = 10
	for i := 0; i < 9; i++ {
		p.oam[i*4] = 9 // every sprite intersects scanline 10 (next row)
	}
	p.evaluateSprites()
	assert.Equal(t, 8, p.spriteCount, "only 8 sprites are kept per scanline")
	assert.Equal(t, byte(0x20), p.status&0x20, "the ninth intersecting sprite sets the overflow flag")
}
