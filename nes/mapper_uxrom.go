package nes

// uxrom implements mapper 2, UxROM: the low 16 KiB PRG window at
// $8000-$BFFF is bank-switched by any write to $8000-$FFFF, the high
// window at $C000-$FFFF is fixed to the last bank. UxROM boards carry
// CHR RAM in practice, but the header decides.
// Reference: https://www.nesdev.org/wiki/UxROM
type uxrom struct {
	card       *Cartridge
	bank       int
	totalBanks int
}

func newUxROM(card *Cartridge) *uxrom {
	return &uxrom{
		card:       card,
		totalBanks: len(card.PRG) / prgROMSizeUnit,
	}
}

func (m *uxrom) CPURead(addr uint16) byte {
	switch {
	case addr >= 0xC000:
		offset := (m.totalBanks - 1) * prgROMSizeUnit
		return m.card.PRG[offset+int(addr-0xC000)]
	case addr >= 0x8000:
		offset := m.bank * prgROMSizeUnit
		return m.card.PRG[offset+int(addr-0x8000)]
	case addr >= 0x6000:
		return m.card.SRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *uxrom) CPUWrite(addr uint16, val byte) {
	switch {
	case addr >= 0x8000:
		m.bank = int(val) % m.totalBanks
	case addr >= 0x6000:
		m.card.SRAM[addr-0x6000] = val
	}
}

func (m *uxrom) PPURead(addr uint16) byte {
	return m.card.CHR[addr]
}

func (m *uxrom) PPUWrite(addr uint16, val byte) {
	if m.card.chrIsRAM {
		m.card.CHR[addr] = val
	}
}

func (m *uxrom) Mirroring() MirrorMode {
	return m.card.Mirror
}
