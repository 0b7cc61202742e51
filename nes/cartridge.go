package nes

import "fmt"

const (
	inesHeaderSizeBytes = 16
	trainerSizeBytes    = 512
	prgROMSizeUnit      = 0x4000 // 16 KiB
	chrROMSizeUnit      = 0x2000 // 8 KiB
	sramSizeBytes       = 0x2000 // 8 KiB, $6000-$7FFF
	msDOSEOF            = 0x1A
)

// MirrorMode describes how the PPU's two physical nametables are
// projected into the four logical nametable slots.
// Reference: https://www.nesdev.org/wiki/Mirroring
type MirrorMode int

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
	MirrorSingleLow
	MirrorSingleHigh
	MirrorFourScreen
)

// BadHeaderError is returned when a ROM image doesn't start with the
// iNES magic tag or is too short to hold a header.
type BadHeaderError struct {
	Reason string
}

func (e *BadHeaderError) Error() string {
	return fmt.Sprintf("nes: bad iNES header: %s", e.Reason)
}

// TruncatedRomError is returned when the header promises more PRG/CHR
// banks than the file actually contains.
type TruncatedRomError struct {
	Want, Got int
}

func (e *TruncatedRomError) Error() string {
	return fmt.Sprintf("nes: truncated rom: want %d bytes, got %d", e.Want, e.Got)
}

// UnsupportedMapperError is returned when the cartridge declares a
// mapper id outside the documented supported set.
type UnsupportedMapperError struct {
	ID byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("nes: unsupported mapper id %d", e.ID)
}

// Cartridge holds the parsed contents of an iNES image: PRG/CHR
// banks, the battery-backed SRAM window, and the mirroring mode
// declared by the header (mutable for mappers, like MMC1, that steer
// mirroring at runtime).
//
// The cartridge owns the PRG/CHR bank bytes exclusively; a mapper
// that wraps it only ever addresses into these slices.
type Cartridge struct {
	PRG []byte
	CHR []byte
	// SRAM is the optional 8 KiB battery-backed window at $6000-$7FFF.
	// It's always allocated; whether a game relies on it for saves is
	// the header's HasBattery flag. This emulator never persists it.
	SRAM []byte

	MapperID   byte
	Mirror     MirrorMode
	HasBattery bool
	// chrIsRAM is true when the header declared zero CHR banks: the
	// cartridge provides 8 KiB of writable CHR RAM instead of CHR ROM.
	chrIsRAM bool
}

// NewCartridge parses raw iNES v1 bytes into a Cartridge.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) < inesHeaderSizeBytes {
		return nil, &BadHeaderError{Reason: "file shorter than the 16-byte header"}
	}
	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != msDOSEOF {
		return nil, &BadHeaderError{Reason: "magic tag is not 'NES\\x1A'"}
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	flags6 := data[6]
	flags7 := data[7]

	hasTrainer := flags6&0x04 != 0
	hasBattery := flags6&0x02 != 0
	fourScreen := flags6&0x08 != 0

	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	offset := inesHeaderSizeBytes
	if hasTrainer {
		offset += trainerSizeBytes
	}

	prgSize := prgBanks * prgROMSizeUnit
	chrSize := chrBanks * chrROMSizeUnit
	want := offset + prgSize + chrSize
	if len(data) < want {
		return nil, &TruncatedRomError{Want: want, Got: len(data)}
	}

	c := &Cartridge{
		MapperID:   mapperID,
		HasBattery: hasBattery,
		SRAM:       make([]byte, sramSizeBytes),
	}

	c.PRG = append(c.PRG, data[offset:offset+prgSize]...)
	offset += prgSize

	if chrBanks == 0 {
		c.chrIsRAM = true
		c.CHR = make([]byte, chrROMSizeUnit)
	} else {
		c.CHR = append(c.CHR, data[offset:offset+chrSize]...)
	}

	switch {
	case fourScreen:
		c.Mirror = MirrorFourScreen
	case flags6&0x01 != 0:
		c.Mirror = MirrorVertical
	default:
		c.Mirror = MirrorHorizontal
	}

	return c, nil
}
