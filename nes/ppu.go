package nes

import "github.com/golang/glog"

// NES PPU generates 256x240 pixels.
const (
	width  = 256
	height = 240
)

// Famicom color palette.
// Reference: https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var colors = [64][3]byte{
	{0x6D, 0x6D, 0x6D}, {0x00, 0x24, 0x92}, {0x00, 0x00, 0xDB}, {0x6D, 0x49, 0xDB},
	{0x92, 0x00, 0x6D}, {0xB6, 0x00, 0x6D}, {0xB6, 0x24, 0x00}, {0x92, 0x49, 0x00},
	{0x6D, 0x49, 0x00}, {0x24, 0x49, 0x00}, {0x00, 0x6D, 0x24}, {0x00, 0x92, 0x00},
	{0x00, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xB6, 0xB6, 0xB6}, {0x00, 0x6D, 0xDB}, {0x00, 0x49, 0xFF}, {0x92, 0x00, 0xFF},
	{0xB6, 0x00, 0xFF}, {0xFF, 0x00, 0x92}, {0xFF, 0x00, 0x00}, {0xDB, 0x6D, 0x00},
	{0x92, 0x6D, 0x00}, {0x24, 0x92, 0x00}, {0x00, 0x92, 0x00}, {0x00, 0xB6, 0x6D},
	{0x00, 0x92, 0x92}, {0x24, 0x24, 0x24}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0x6D, 0xB6, 0xFF}, {0x92, 0x92, 0xFF}, {0xDB, 0x6D, 0xFF},
	{0xFF, 0x00, 0xFF}, {0xFF, 0x6D, 0xFF}, {0xFF, 0x92, 0x00}, {0xFF, 0xB6, 0x00},
	{0xDB, 0xDB, 0x00}, {0x6D, 0xDB, 0x00}, {0x00, 0xFF, 0x00}, {0x49, 0xFF, 0xDB},
	{0x00, 0xFF, 0xFF}, {0x49, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0xB6, 0xDB, 0xFF}, {0xDB, 0xB6, 0xFF}, {0xFF, 0xB6, 0xFF},
	{0xFF, 0x92, 0xFF}, {0xFF, 0xB6, 0xB6}, {0xFF, 0xDB, 0x92}, {0xFF, 0xFF, 0x49},
	{0xFF, 0xFF, 0x6D}, {0xB6, 0xFF, 0x49}, {0x92, 0xFF, 0x6D}, {0x49, 0xFF, 0xDB},
	{0x92, 0xDB, 0xFF}, {0x92, 0x92, 0x92}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}

// PPU stands for Picture Processing Unit, renders 256x240 pixels for
// a screen. It runs 3x the CPU's clock: one dot per PPU cycle, 341
// dots per scanline, 262 scanlines per frame.
// References:
//   https://www.nesdev.org/wiki/PPU
//   https://www.nesdev.org/wiki/PPU_rendering
//   https://www.nesdev.org/wiki/PPU_scrolling
type PPU struct {
	bus *PPUBus

	frame      [width * height * 3]byte
	frameReady bool
	odd        bool

	// PPUCTRL/PPUMASK/PPUSTATUS/OAMADDR latches.
	ctrl    byte
	mask    byte
	status  byte
	oamAddr byte

	oam [256]byte

	// v/t/x/w per the PPU scrolling loopy-register model.
	v uint16
	t uint16
	x byte
	w bool

	buffer byte

	cycle    int
	scanline int

	nmiOccurred bool
	nmiOutput   bool

	// Background pipeline.
	nameTableByte      byte
	attributeTableByte byte
	lowTileByte        byte
	highTileByte       byte
	tileShiftLow       uint16
	tileShiftHigh      uint16
	attrShiftLow       uint16
	attrShiftHigh      uint16

	// Sprite pipeline, re-evaluated once per scanline.
	spriteCount      int
	spritePatterns   [8]uint16hi
	spritePositions  [8]byte
	spritePriorities [8]byte
	spriteIndexes    [8]byte
}

// uint16hi packs the low and high pattern bytes of one sprite row.
type uint16hi struct {
	low, high byte
}

// NewPPU creates a PPU.
func NewPPU(bus *PPUBus) *PPU {
	p := &PPU{bus: bus}
	p.Reset()
	return p
}

func (p *PPU) Reset() {
	p.cycle = 340
	p.scanline = 240
	p.ctrl = 0
	p.mask = 0
	p.status = 0
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&0x18 != 0
}

// readPPUSTATUS reads PPUSTATUS ($2002). Reading clears the vblank
// flag and the address latch.
func (p *PPU) readPPUSTATUS() byte {
	result := p.status & 0xE0
	p.status &^= 0x80
	p.nmiOccurred = false
	p.w = false
	return result
}

func (p *PPU) writePPUCTRL(data byte) {
	p.ctrl = data
	p.nmiOutput = data&0x80 != 0
	p.t = (p.t &^ 0x0C00) | (uint16(data&0x03) << 10)
}

func (p *PPU) writePPUMASK(data byte) {
	p.mask = data
}

func (p *PPU) readOAMDATA() byte {
	return p.oam[p.oamAddr]
}

func (p *PPU) writeOAMDATA(data byte) {
	p.oam[p.oamAddr] = data
	p.oamAddr++
}

func (p *PPU) writeOAMADDR(data byte) {
	p.oamAddr = data
}

// writePPUSCROLL writes PPUSCROLL ($2005), latched across two writes.
func (p *PPU) writePPUSCROLL(data byte) {
	if !p.w {
		p.t = (p.t &^ 0x001F) | uint16(data>>3)
		p.x = data & 0x07
		p.w = true
	} else {
		p.t = (p.t &^ 0x73E0) | (uint16(data&0x07) << 12) | (uint16(data&0xF8) << 2)
		p.w = false
	}
}

// writePPUADDR writes PPUADDR ($2006), latched across two writes.
func (p *PPU) writePPUADDR(data byte) {
	if !p.w {
		p.t = (p.t &^ 0xFF00) | (uint16(data&0x3F) << 8)
		p.w = true
	} else {
		p.t = (p.t &^ 0x00FF) | uint16(data)
		p.v = p.t
		p.w = false
	}
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&0x04 != 0 {
		return 32
	}
	return 1
}

// writePPUDATA writes PPUDATA ($2007).
func (p *PPU) writePPUDATA(data byte) {
	p.bus.write(p.v, data)
	p.v += p.vramIncrement()
}

// readPPUDATA reads PPUDATA ($2007), buffered except for palette reads.
func (p *PPU) readPPUDATA() byte {
	data := p.bus.read(p.v)
	if p.v%0x4000 < 0x3F00 {
		buffered := p.buffer
		p.buffer = data
		data = buffered
	} else {
		p.buffer = p.bus.read(p.v - 0x1000)
	}
	p.v += p.vramIncrement()
	return data
}

// writeOAMDMA copies a 256-byte page of CPU memory into OAM, called by
// the CPU bus when $4014 is written.
func (p *PPU) writeOAMDMA(data [256]byte) {
	for i := 0; i < 256; i++ {
		p.oam[(int(p.oamAddr)+i)%256] = data[i]
	}
}

func (p *PPU) fetchNameTableByte() {
	address := 0x2000 | (p.v & 0x0FFF)
	p.nameTableByte = p.bus.read(address)
}

func (p *PPU) fetchAttributeTableByte() {
	address := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
	shift := ((p.v >> 4) & 4) | (p.v & 2)
	p.attributeTableByte = ((p.bus.read(address) >> shift) & 3) << 2
}

func (p *PPU) backgroundPatternAddress() uint16 {
	var base uint16
	if p.ctrl&0x10 != 0 {
		base = 0x1000
	}
	fineY := (p.v >> 12) & 7
	return base + uint16(p.nameTableByte)*16 + fineY
}

func (p *PPU) fetchLowTileByte() {
	p.lowTileByte = p.bus.read(p.backgroundPatternAddress())
}

func (p *PPU) fetchHighTileByte() {
	p.highTileByte = p.bus.read(p.backgroundPatternAddress() + 8)
}

// reloadShiftRegisters folds the just-fetched tile/attribute bytes
// into the low byte of the 16-bit shift registers.
func (p *PPU) reloadShiftRegisters() {
	p.tileShiftLow = (p.tileShiftLow &^ 0x00FF) | uint16(p.lowTileByte)
	p.tileShiftHigh = (p.tileShiftHigh &^ 0x00FF) | uint16(p.highTileByte)
	var lo, hi uint16
	if p.attributeTableByte&0x04 != 0 {
		lo = 0xFF
	}
	if p.attributeTableByte&0x08 != 0 {
		hi = 0xFF
	}
	p.attrShiftLow = (p.attrShiftLow &^ 0x00FF) | lo
	p.attrShiftHigh = (p.attrShiftHigh &^ 0x00FF) | hi
}

func (p *PPU) shiftRegisters() {
	p.tileShiftLow <<= 1
	p.tileShiftHigh <<= 1
	p.attrShiftLow <<= 1
	p.attrShiftHigh <<= 1
}

// copyX copies the horizontal scroll bits from t into v, per the
// nesdev scrolling diagram.
func (p *PPU) copyX() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

func (p *PPU) copyY() {
	p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
}

func (p *PPU) incrementX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch {
	case y == 29:
		y = 0
		p.v ^= 0x0800
	case y == 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

func (p *PPU) backgroundPixel() byte {
	if p.mask&0x08 == 0 {
		return 0
	}
	shift := uint(15 - p.x)
	lo := (p.tileShiftLow >> shift) & 1
	hi := (p.tileShiftHigh >> shift) & 1
	aLo := (p.attrShiftLow >> shift) & 1
	aHi := (p.attrShiftHigh >> shift) & 1
	return byte(aHi<<3 | aLo<<2 | hi<<1 | lo)
}

// spriteHeight returns 8 or 16 depending on PPUCTRL bit 5.
func (p *PPU) spriteHeight() int {
	if p.ctrl&0x20 != 0 {
		return 16
	}
	return 8
}

// evaluateSprites scans OAM for up to 8 sprites intersecting the next
// scanline, setting the sprite-overflow flag when more are found.
func (p *PPU) evaluateSprites() {
	height := p.spriteHeight()
	count := 0
	for i := 0; i < 64; i++ {
		y := p.oam[i*4]
		row := p.scanline - int(y)
		if row < 0 || row >= height {
			continue
		}
		if count < 8 {
			tile := p.oam[i*4+1]
			attr := p.oam[i*4+2]
			x := p.oam[i*4+3]
			if attr&0x80 != 0 {
				row = height - 1 - row
			}
			var address uint16
			if height == 8 {
				base := uint16(0)
				if p.ctrl&0x08 != 0 {
					base = 0x1000
				}
				address = base + uint16(tile)*16 + uint16(row)
			} else {
				table := uint16(tile&1) * 0x1000
				patternTile := tile &^ 1
				if row >= 8 {
					patternTile++
					row -= 8
				}
				address = table + uint16(patternTile)*16 + uint16(row)
			}
			lo := p.bus.read(address)
			hi := p.bus.read(address + 8)
			if attr&0x40 != 0 {
				lo = reverseBits(lo)
				hi = reverseBits(hi)
			}
			p.spritePatterns[count] = uint16hi{low: lo, high: hi}
			p.spritePositions[count] = x
			p.spritePriorities[count] = (attr >> 5) & 1
			p.spriteIndexes[count] = byte(i)
			count++
		} else {
			p.status |= 0x20 // sprite overflow
			break
		}
	}
	p.spriteCount = count
}

func reverseBits(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// spritePixel returns (colorIndex, latch index, isSprite0, ok) for the
// current dot, or ok=false if no opaque sprite pixel covers it.
func (p *PPU) spritePixel() (color byte, index int, isZero bool, ok bool) {
	if p.mask&0x10 == 0 {
		return 0, 0, false, false
	}
	x := p.cycle - 1
	for i := 0; i < p.spriteCount; i++ {
		offset := x - int(p.spritePositions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		shift := uint(7 - offset)
		lo := (p.spritePatterns[i].low >> shift) & 1
		hi := (p.spritePatterns[i].high >> shift) & 1
		c := hi<<1 | lo
		if c == 0 {
			continue
		}
		return c, i, p.spriteIndexes[i] == 0, true
	}
	return 0, 0, false, false
}

func (p *PPU) paletteColor(index int) [3]byte {
	return colors[p.bus.read(0x3F00+uint16(index))%64]
}

func (p *PPU) setPixel(x, y int, c [3]byte) {
	offset := (y*width + x) * 3
	p.frame[offset] = c[0]
	p.frame[offset+1] = c[1]
	p.frame[offset+2] = c[2]
}

// renderPixel composites the background and sprite pixels for the
// current dot, including sprite-0-hit detection.
func (p *PPU) renderPixel() {
	x := p.cycle - 1
	y := p.scanline
	bg := p.backgroundPixel()
	spriteColor, spriteIdx, isZero, hasSprite := p.spritePixel()

	bgOpaque := bg&0x03 != 0
	spriteOpaque := hasSprite && spriteColor&0x03 != 0

	if bgOpaque && spriteOpaque && isZero && x != 255 && p.renderingEnabled() {
		// No hit inside the left 8 pixels unless both left-column
		// enable bits of PPUMASK are set.
		if x >= 8 || p.mask&0x06 == 0x06 {
			p.status |= 0x40 // sprite 0 hit
		}
	}

	var paletteIndex int
	switch {
	case !bgOpaque && !spriteOpaque:
		paletteIndex = 0
	case !bgOpaque && spriteOpaque:
		paletteIndex = 0x10 + int(spriteColor)
	case bgOpaque && !spriteOpaque:
		paletteIndex = int(bg)
	default:
		if p.spritePriorities[spriteIdx] == 0 {
			paletteIndex = 0x10 + int(spriteColor)
		} else {
			paletteIndex = int(bg)
		}
	}
	p.setPixel(x, y, p.paletteColor(paletteIndex))
}

// Step advances the PPU by one dot and reports whether this dot
// raises the CPU's NMI line.
func (p *PPU) Step() bool {
	nmiBefore := p.nmiOccurred && p.nmiOutput

	p.tick()

	visibleLine := p.scanline < 240
	preLine := p.scanline == 261
	renderLine := preLine || visibleLine
	visibleCycle := p.cycle >= 1 && p.cycle <= 256
	prefetchCycle := p.cycle >= 321 && p.cycle <= 336
	fetchCycle := visibleCycle || prefetchCycle

	if p.renderingEnabled() {
		if visibleLine && visibleCycle {
			p.renderPixel()
		}
		if renderLine && fetchCycle {
			p.shiftRegisters()
			switch p.cycle % 8 {
			case 1:
				p.fetchNameTableByte()
			case 3:
				p.fetchAttributeTableByte()
			case 5:
				p.fetchLowTileByte()
			case 7:
				p.fetchHighTileByte()
			case 0:
				p.reloadShiftRegisters()
				p.incrementX()
			}
		}
		if renderLine && p.cycle == 256 {
			p.incrementY()
		}
		if renderLine && p.cycle == 257 {
			p.copyX()
		}
		if preLine && p.cycle >= 280 && p.cycle <= 304 {
			p.copyY()
		}
		if p.cycle == 257 {
			if visibleLine {
				p.evaluateSprites()
			} else {
				p.spriteCount = 0
			}
		}
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.frameReady = true
		if glog.V(2) {
			glog.Infoln("entered vblank")
		}
	}
	if preLine && p.cycle == 1 {
		p.status &^= 0x40 | 0x20
	}
	if p.nmiOccurred {
		p.status |= 0x80
	} else {
		p.status &^= 0x80
	}

	nmiAfter := p.nmiOccurred && p.nmiOutput
	return !nmiBefore && nmiAfter
}

// tick advances cycle/scanline counters and latches the vblank/NMI
// flag at the two points in the frame where it changes.
func (p *PPU) tick() {
	if p.renderingEnabled() && p.odd && p.scanline == 261 && p.cycle == 339 {
		// Odd-frame dot skip shortens the pre-render line by one dot.
		p.cycle = 0
		p.scanline = 0
		p.odd = !p.odd
		return
	}
	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.odd = !p.odd
		}
	}
	if p.scanline == 241 && p.cycle == 1 {
		p.nmiOccurred = true
	} else if p.scanline == 261 && p.cycle == 1 {
		p.nmiOccurred = false
	}
}

// Frame returns the completed RGB frame buffer if one became ready
// since the last call.
func (p *PPU) Frame() ([]byte, bool) {
	if p.frameReady {
		p.frameReady = false
		return p.frame[:], true
	}
	return nil, false
}
