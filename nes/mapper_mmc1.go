package nes

// mmc1 implements mapper 1, MMC1: a serial shift register loaded one
// bit per CPU write (5 writes to complete a load), selecting PRG/CHR
// bank modes and steering nametable mirroring at runtime. A write with
// bit 7 set resets the shift register and forces PRG mode 3.
// Reference: https://www.nesdev.org/wiki/MMC1
type mmc1 struct {
	card *Cartridge

	shift    byte
	control  byte
	chrBank0 byte
	chrBank1 byte
	prgBank  byte

	prgMode byte
	chrMode byte

	prgOffsets [2]int
	chrOffsets [2]int
}

func newMMC1(card *Cartridge) *mmc1 {
	m := &mmc1{card: card, shift: 0x10}
	m.prgMode = 3
	m.prgOffsets[1] = m.prgOffset(-1)
	return m
}

func (m *mmc1) prgOffset(bank int) int {
	if bank >= 0x80 {
		bank -= 0x100
	}
	count := len(m.card.PRG) / prgROMSizeUnit
	offset := (bank % count) * prgROMSizeUnit
	if offset < 0 {
		offset += len(m.card.PRG)
	}
	return offset
}

func (m *mmc1) chrOffset(bank int) int {
	if bank >= 0x80 {
		bank -= 0x100
	}
	count := len(m.card.CHR) / 0x1000
	if count == 0 {
		return 0
	}
	offset := (bank % count) * 0x1000
	if offset < 0 {
		offset += len(m.card.CHR)
	}
	return offset
}

// PRG ROM bank mode: 0,1 switch 32 KiB at $8000 ignoring the low bank
// bit; 2 fixes the first bank at $8000 and switches $C000; 3 fixes the
// last bank at $C000 and switches $8000.
// CHR ROM bank mode: 0 switches 8 KiB at a time; 1 switches two
// independent 4 KiB banks.
func (m *mmc1) updateOffsets() {
	switch m.prgMode {
	case 0, 1:
		m.prgOffsets[0] = m.prgOffset(int(m.prgBank & 0xFE))
		m.prgOffsets[1] = m.prgOffset(int(m.prgBank | 0x01))
	case 2:
		m.prgOffsets[0] = 0
		m.prgOffsets[1] = m.prgOffset(int(m.prgBank))
	case 3:
		m.prgOffsets[0] = m.prgOffset(int(m.prgBank))
		m.prgOffsets[1] = m.prgOffset(-1)
	}
	switch m.chrMode {
	case 0:
		m.chrOffsets[0] = m.chrOffset(int(m.chrBank0 & 0xFE))
		m.chrOffsets[1] = m.chrOffset(int(m.chrBank0 | 0x01))
	case 1:
		m.chrOffsets[0] = m.chrOffset(int(m.chrBank0))
		m.chrOffsets[1] = m.chrOffset(int(m.chrBank1))
	}
}

func (m *mmc1) writeControl(val byte) {
	m.control = val
	m.prgMode = (val >> 2) & 0x3
	m.chrMode = (val >> 4) & 1
	switch val & 0x3 {
	case 0:
		m.card.Mirror = MirrorSingleLow
	case 1:
		m.card.Mirror = MirrorSingleHigh
	case 2:
		m.card.Mirror = MirrorVertical
	case 3:
		m.card.Mirror = MirrorHorizontal
	}
	m.updateOffsets()
}

func (m *mmc1) writeRegister(addr uint16, val byte) {
	switch {
	case addr < 0xA000:
		m.writeControl(val)
	case addr < 0xC000:
		m.chrBank0 = val
	case addr < 0xE000:
		m.chrBank1 = val
	default:
		m.prgBank = val & 0x0F
	}
	m.updateOffsets()
}

func (m *mmc1) loadRegister(addr uint16, val byte) {
	if val&0x80 != 0 {
		m.shift = 0x10
		m.writeControl(m.control | 0x0C)
		return
	}
	complete := m.shift&1 == 1
	m.shift = (m.shift >> 1) | ((val & 1) << 4)
	if complete {
		m.writeRegister(addr, m.shift)
		m.shift = 0x10
	}
}

func (m *mmc1) CPURead(addr uint16) byte {
	switch {
	case addr >= 0x8000:
		bank := (addr - 0x8000) / prgROMSizeUnit
		offset := (addr - 0x8000) % prgROMSizeUnit
		return m.card.PRG[m.prgOffsets[bank]+int(offset)]
	case addr >= 0x6000:
		return m.card.SRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *mmc1) CPUWrite(addr uint16, val byte) {
	switch {
	case addr >= 0x8000:
		m.loadRegister(addr, val)
	case addr >= 0x6000:
		m.card.SRAM[addr-0x6000] = val
	}
}

func (m *mmc1) PPURead(addr uint16) byte {
	bank := addr / 0x1000
	offset := addr % 0x1000
	return m.card.CHR[m.chrOffsets[bank]+int(offset)]
}

func (m *mmc1) PPUWrite(addr uint16, val byte) {
	if !m.card.chrIsRAM {
		return
	}
	bank := addr / 0x1000
	offset := addr % 0x1000
	m.card.CHR[m.chrOffsets[bank]+int(offset)] = val
}

func (m *mmc1) Mirroring() MirrorMode {
	return m.card.Mirror
}
