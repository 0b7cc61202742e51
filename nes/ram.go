package nes

// RAM is a flat byte buffer shared by CPU work RAM and PPU nametable
// VRAM; both are 2 KiB physical, addressed through bus-specific mirror
// folding before reaching here.
type RAM struct {
	data [2048]byte
}

// NewRAM creates a RAM for either PPU or CPU use.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) read(address uint16) byte {
	return r.data[address]
}

func (r *RAM) write(address uint16, x byte) {
	r.data[address] = x
}
