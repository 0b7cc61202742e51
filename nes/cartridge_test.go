package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nromHeader(prgBanks, chrBanks, flags6, flags7 byte) []byte {
	h := make([]byte, 16)
	copy(h, []byte{0x4E, 0x45, 0x53, 0x1A})
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func buildROM(header []byte, prgBanks, chrBanks int) []byte {
	rom := append([]byte{}, header...)
	rom = append(rom, make([]byte, prgBanks*16384)...)
	rom = append(rom, make([]byte, chrBanks*8192)...)
	return rom
}

func TestNewCartridge_RejectsBadMagic(t *testing.T) {
	bad := buildROM(nromHeader(1, 1, 0, 0), 1, 1)
	bad[0] = 0x00
	_, err := NewCartridge(bad)
	require.Error(t, err)
	var badHeader *BadHeaderError
	assert.ErrorAs(t, err, &badHeader)
}

func TestNewCartridge_RejectsTruncatedROM(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	truncated := rom[:len(rom)-100]
	_, err := NewCartridge(truncated)
	require.Error(t, err)
	var truncErr *TruncatedRomError
	assert.ErrorAs(t, err, &truncErr)
}

func TestNewCartridge_ParsesNROM(t *testing.T) {
	rom := buildROM(nromHeader(2, 1, 0, 0), 2, 1)
	c, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Equal(t, byte(0), c.MapperID)
	assert.Len(t, c.PRG, 2*16384)
	assert.Len(t, c.CHR, 8192)
	assert.Equal(t, MirrorHorizontal, c.Mirror)
	assert.False(t, c.HasBattery)
}

func TestNewCartridge_AllocatesCHRRAMWhenAbsent(t *testing.T) {
	rom := buildROM(nromHeader(1, 0, 0, 0), 1, 0)
	c, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Len(t, c.CHR, 8192)
}

func TestNewCartridge_DecodesMapperIDAndFlags(t *testing.T) {
	// flags6 high nibble 0x1, flags7 high nibble 0x0 -> mapper 1 (MMC1);
	// battery bit and vertical mirroring set.
	rom := buildROM(nromHeader(2, 1, 0x13, 0x00), 2, 1)
	c, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Equal(t, byte(1), c.MapperID)
	assert.Equal(t, MirrorVertical, c.Mirror)
	assert.True(t, c.HasBattery)
}

func TestNewCartridge_FourScreenMirroring(t *testing.T) {
	rom := buildROM(nromHeader(1, 1, 0x08, 0x00), 1, 1)
	c, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Equal(t, MirrorFourScreen, c.Mirror)
}

func TestNewCartridge_SkipsTrainer(t *testing.T) {
	header := nromHeader(1, 1, 0x04, 0x00) // trainer present bit
	rom := append([]byte{}, header...)
	rom = append(rom, make([]byte, 512)...) // trainer
	prg := make([]byte, 16384)
	prg[0] = 0xAB
	rom = append(rom, prg...)
	rom = append(rom, make([]byte, 8192)...)
	c, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), c.PRG[0])
}
