package nes

import "github.com/golang/glog"

// CPUBus decodes the CPU's 16-bit address space.
// 0x0000 - 0x07FF  WRAM
// 0x0800 - 0x1FFF  WRAM mirrors
// 0x2000 - 0x2007  PPU registers
// 0x2008 - 0x3FFF  PPU register mirrors
// 0x4000 - 0x4013  APU registers
// 0x4014           OAMDMA
// 0x4015           APU status
// 0x4016 - 0x4017  Controllers (reads; $4017 writes go to the APU)
// 0x4018 - 0x401F  APU/IO test registers, unused
// 0x4020 - 0xFFFF  Cartridge space (mapper-decoded)
type CPUBus struct {
	wram        *RAM
	ppu         *PPU
	apu         *APU
	mapper      Mapper
	controller1 *Controller
	controller2 *Controller
}

func NewCPUBus(wram *RAM, ppu *PPU, apu *APU, mapper Mapper, controller1, controller2 *Controller) *CPUBus {
	return &CPUBus{wram, ppu, apu, mapper, controller1, controller2}
}

func (b *CPUBus) readPPURegister(address uint16) byte {
	switch address % 8 {
	case 2:
		return b.ppu.readPPUSTATUS()
	case 4:
		return b.ppu.readOAMDATA()
	case 7:
		return b.ppu.readPPUDATA()
	default:
		return 0
	}
}

func (b *CPUBus) writePPURegister(address uint16, data byte) {
	switch address % 8 {
	case 0:
		b.ppu.writePPUCTRL(data)
	case 1:
		b.ppu.writePPUMASK(data)
	case 3:
		b.ppu.writeOAMADDR(data)
	case 4:
		b.ppu.writeOAMDATA(data)
	case 5:
		b.ppu.writePPUSCROLL(data)
	case 6:
		b.ppu.writePPUADDR(data)
	case 7:
		b.ppu.writePPUDATA(data)
	}
}

// read reads a byte. Unmapped reads return 0 and are logged, matching
// the "runtime is infallible" contract: bad addresses never panic or
// propagate an error.
func (b *CPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address % 0x0800)
	case address < 0x4000:
		return b.readPPURegister(address)
	case address == 0x4015:
		return b.apu.ReadStatus()
	case address == 0x4016:
		return b.controller1.read()
	case address == 0x4017:
		return b.controller2.read()
	case address < 0x4015:
		glog.V(2).Infof("ignoring APU register read: address=0x%04x", address)
		return 0
	case address < 0x4020:
		glog.V(1).Infof("unimplemented CPU bus read: address=0x%04x", address)
		return 0
	default:
		return b.mapper.CPURead(address)
	}
}

// read16 reads two bytes in little-endian order.
func (b *CPUBus) read16(address uint16) uint16 {
	lo := b.read(address)
	hi := b.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16Wrap reproduces the JMP ($xxFF) page-wrap bug: the high byte
// is fetched from the start of the same page, not the next page.
func (b *CPUBus) read16Wrap(address uint16) uint16 {
	lo := b.read(address)
	hiAddress := (address & 0xFF00) | uint16(byte(address)+1)
	hi := b.read(hiAddress)
	return uint16(hi)<<8 | uint16(lo)
}

// write writes a byte. OAMDMA ($4014) is handled on the CPU, since it
// needs to read from this same bus while stalling the CPU.
func (b *CPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.wram.write(address%0x0800, data)
	case address < 0x4000:
		b.writePPURegister(address, data)
	case address == 0x4016:
		b.controller1.write(data)
		b.controller2.write(data)
	case address <= 0x4013, address == 0x4015, address == 0x4017:
		b.apu.WriteRegister(address, data)
	case address < 0x4020:
		glog.V(1).Infof("unimplemented CPU bus write: address=0x%04x, data=0x%02x", address, data)
	default:
		b.mapper.CPUWrite(address, data)
	}
}
