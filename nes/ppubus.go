package nes

// PPUBus decodes the PPU's 14-bit address space: pattern tables
// through the mapper, nametables through mirroring-aware VRAM
// indexing, and palette RAM as a dedicated 32-byte array.
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
type PPUBus struct {
	vram       *RAM
	fourVRAM   []byte // only allocated for four-screen cartridges
	mapper     Mapper
	paletteRAM [32]byte
}

// NewPPUBus creates a new Bus for the PPU.
func NewPPUBus(vram *RAM, mapper Mapper) *PPUBus {
	b := &PPUBus{vram: vram, mapper: mapper}
	if mapper.Mirroring() == MirrorFourScreen {
		b.fourVRAM = make([]byte, 4096)
	}
	return b
}

// nametableOffsets maps a logical nametable slot (0-3, in address
// order $2000/$2400/$2800/$2C00) to a physical 1 KiB slot within the
// 2 KiB physical VRAM, per mirroring mode.
var nametableOffsets = map[MirrorMode][4]int{
	MirrorHorizontal: {0, 0, 1, 1},
	MirrorVertical:   {0, 1, 0, 1},
	MirrorSingleLow:  {0, 0, 0, 0},
	MirrorSingleHigh: {1, 1, 1, 1},
}

func (b *PPUBus) nametableAddress(address uint16) uint16 {
	rel := (address - 0x2000) % 0x1000
	slot := rel / 0x400
	offset := rel % 0x400
	mode := b.mapper.Mirroring()
	if mode == MirrorFourScreen {
		return uint16(slot)*0x400 + offset
	}
	physical := nametableOffsets[mode][slot]
	return uint16(physical)*0x400 + offset
}

func (b *PPUBus) paletteAddress(address uint16) uint16 {
	idx := (address - 0x3F00) % 32
	// $3F10/$3F14/$3F18/$3F1C mirror the background color entries.
	if idx%4 == 0 && idx >= 0x10 {
		idx -= 0x10
	}
	return idx
}

func (b *PPUBus) read(address uint16) byte {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		return b.mapper.PPURead(address)
	case address < 0x3F00:
		nt := b.nametableAddress(address)
		if b.fourVRAM != nil {
			return b.fourVRAM[nt]
		}
		return b.vram.read(nt)
	default:
		return b.paletteRAM[b.paletteAddress(address)]
	}
}

func (b *PPUBus) write(address uint16, data byte) {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		b.mapper.PPUWrite(address, data)
	case address < 0x3F00:
		nt := b.nametableAddress(address)
		if b.fourVRAM != nil {
			b.fourVRAM[nt] = data
		} else {
			b.vram.write(nt, data)
		}
	default:
		b.paletteRAM[b.paletteAddress(address)] = data
	}
}
