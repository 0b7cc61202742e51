package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapper_UnsupportedID(t *testing.T) {
	c := &Cartridge{MapperID: 99, PRG: make([]byte, 16384), CHR: make([]byte, 8192), SRAM: make([]byte, 0x2000)}
	_, err := NewMapper(c)
	require.Error(t, err)
	var unsupported *UnsupportedMapperError
	assert.ErrorAs(t, err, &unsupported)
}

func TestNROM_PRGMirroringOn16KiB(t *testing.T) {
	rom := buildROM(nromHeader(1, 1, 0, 0), 1, 1)
	rom[16] = 0x42 // first byte of the single PRG bank
	card, err := NewCartridge(rom)
	require.NoError(t, err)
	m, err := NewMapper(card)
	require.NoError(t, err)

	assert.Equal(t, byte(0x42), m.CPURead(0x8000))
	assert.Equal(t, byte(0x42), m.CPURead(0xC000), "16 KiB PRG must mirror into the upper window")
}

func TestNROM_SRAMReadWrite(t *testing.T) {
	rom := buildROM(nromHeader(1, 1, 0, 0), 1, 1)
	card, err := NewCartridge(rom)
	require.NoError(t, err)
	m, err := NewMapper(card)
	require.NoError(t, err)

	m.CPUWrite(0x6000, 0x7E)
	assert.Equal(t, byte(0x7E), m.CPURead(0x6000))
}

func TestUxROM_BankSwitchesLowWindowFixesHigh(t *testing.T) {
	header := nromHeader(4, 0, 0x20, 0x00) // mapper 2, four 16 KiB banks
	rom := buildROM(header, 4, 0)
	// mark the first byte of each bank distinctly.
	for bank := 0; bank < 4; bank++ {
		rom[16+bank*16384] = byte(0x10 + bank)
	}
	card, err := NewCartridge(rom)
	require.NoError(t, err)
	m, err := NewMapper(card)
	require.NoError(t, err)

	assert.Equal(t, byte(0x13), m.CPURead(0xC000), "fixed window must always show the last bank")

	m.CPUWrite(0x8000, 2)
	assert.Equal(t, byte(0x12), m.CPURead(0x8000))
	assert.Equal(t, byte(0x13), m.CPURead(0xC000))
}

func TestCNROM_CHRBankSelect(t *testing.T) {
	header := nromHeader(1, 2, 0x30, 0x00) // mapper 3, two 8 KiB CHR banks
	rom := buildROM(header, 1, 2)
	rom[16+16384] = 0xAA
	rom[16+16384+8192] = 0xBB
	card, err := NewCartridge(rom)
	require.NoError(t, err)
	m, err := NewMapper(card)
	require.NoError(t, err)

	assert.Equal(t, byte(0xAA), m.PPURead(0))
	m.CPUWrite(0x8000, 1)
	assert.Equal(t, byte(0xBB), m.PPURead(0))
}

func loadMMC1Register(m *mmc1, addr uint16, val byte) {
	for i := 0; i < 5; i++ {
		bit := (val >> i) & 1
		m.loadRegister(addr, bit)
	}
}

func TestMMC1_ShiftRegisterLoadsOnFifthWrite(t *testing.T) {
	header := nromHeader(4, 2, 0x10, 0x00) // mapper 1
	rom := buildROM(header, 4, 2)
	card, err := NewCartridge(rom)
	require.NoError(t, err)
	m := newMMC1(card)

	// control value selecting PRG mode 3 (fixed last bank at C000),
	// CHR mode 0, horizontal mirroring.
	loadMMC1Register(m, 0x8000, 0x0F)
	assert.Equal(t, byte(3), m.prgMode)
	assert.Equal(t, MirrorHorizontal, m.Mirroring())
}

func TestMMC1_ResetOnHighBitWrite(t *testing.T) {
	header := nromHeader(4, 2, 0x10, 0x00)
	rom := buildROM(header, 4, 2)
	card, err := NewCartridge(rom)
	require.NoError(t, err)
	m := newMMC1(card)

	m.loadRegister(0x8000, 0x01)
	m.loadRegister(0x8000, 0x80) // high bit set: reset shift register
	assert.Equal(t, byte(0x10), m.shift)
	assert.Equal(t, byte(3), m.prgMode)
}
