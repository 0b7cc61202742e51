package nes

// instruction describes one opcode: its mnemonic (for disassembly),
// addressing mode, implementation, byte size, and base cycle cost.
// pageCrossCycle marks addressing modes that charge one extra cycle
// when the effective address crosses a page boundary on a read.
type instruction struct {
	mnemonic       string
	mode           addressingMode
	execute        func(*CPU, addressingMode, uint16) int
	size           byte
	cycles         int
	pageCrossCycle bool
}

// branch applies a conditional branch, returning the extra cycles a
// taken branch costs: 1 normally, 2 if it also crosses a page.
func branch(c *CPU, operand uint16, taken bool) int {
	if !taken {
		return 0
	}
	old := c.pc
	c.pc = operand
	if pagesDiffer(old, operand) {
		return 2
	}
	return 1
}

func (c *CPU) adc(mode addressingMode, operand uint16) int {
	a := c.a
	data := c.bus.read(operand)
	var carry byte
	if c.p.c {
		carry = 1
	}
	sum := uint16(a) + uint16(data) + uint16(carry)
	c.a = byte(sum)
	c.p.c = sum > 0xFF
	c.p.v = (a^data)&0x80 == 0 && (a^c.a)&0x80 != 0
	c.setNZ(c.a)
	return 0
}

func (c *CPU) and(mode addressingMode, operand uint16) int {
	c.a &= c.bus.read(operand)
	c.setNZ(c.a)
	return 0
}

func (c *CPU) asl(mode addressingMode, operand uint16) int {
	if mode == accumulator {
		c.p.c = c.a&0x80 != 0
		c.a <<= 1
		c.setNZ(c.a)
		return 0
	}
	c.rmw(operand, func(x byte) byte {
		c.p.c = x&0x80 != 0
		x <<= 1
		c.setNZ(x)
		return x
	})
	return 0
}

func (c *CPU) bcc(mode addressingMode, operand uint16) int { return branch(c, operand, !c.p.c) }
func (c *CPU) bcs(mode addressingMode, operand uint16) int { return branch(c, operand, c.p.c) }
func (c *CPU) beq(mode addressingMode, operand uint16) int { return branch(c, operand, c.p.z) }

func (c *CPU) bit(mode addressingMode, operand uint16) int {
	data := c.bus.read(operand)
	c.p.z = c.a&data == 0
	c.p.v = data&0x40 != 0
	c.p.n = data&0x80 != 0
	return 0
}

func (c *CPU) bmi(mode addressingMode, operand uint16) int { return branch(c, operand, c.p.n) }
func (c *CPU) bne(mode addressingMode, operand uint16) int { return branch(c, operand, !c.p.z) }
func (c *CPU) bpl(mode addressingMode, operand uint16) int { return branch(c, operand, !c.p.n) }

func (c *CPU) brk(mode addressingMode, operand uint16) int {
	c.pc++
	c.push16(c.pc)
	flags := c.p
	flags.b = true
	flags.r = true
	c.push(flags.encode())
	c.p.i = true
	c.pc = c.bus.read16(0xFFFE)
	return 0
}

func (c *CPU) bvc(mode addressingMode, operand uint16) int { return branch(c, operand, !c.p.v) }
func (c *CPU) bvs(mode addressingMode, operand uint16) int { return branch(c, operand, c.p.v) }

func (c *CPU) clc(mode addressingMode, operand uint16) int { c.p.c = false; return 0 }
func (c *CPU) cld(mode addressingMode, operand uint16) int { c.p.d = false; return 0 }
func (c *CPU) cli(mode addressingMode, operand uint16) int { c.p.i = false; return 0 }
func (c *CPU) clv(mode addressingMode, operand uint16) int { c.p.v = false; return 0 }

func compare(c *CPU, reg, data byte) {
	c.p.c = reg >= data
	c.setNZ(reg - data)
}

func (c *CPU) cmp(mode addressingMode, operand uint16) int {
	compare(c, c.a, c.bus.read(operand))
	return 0
}
func (c *CPU) cpx(mode addressingMode, operand uint16) int {
	compare(c, c.x, c.bus.read(operand))
	return 0
}
func (c *CPU) cpy(mode addressingMode, operand uint16) int {
	compare(c, c.y, c.bus.read(operand))
	return 0
}

func (c *CPU) dec(mode addressingMode, operand uint16) int {
	c.rmw(operand, func(x byte) byte {
		x--
		c.setNZ(x)
		return x
	})
	return 0
}

func (c *CPU) dex(mode addressingMode, operand uint16) int { c.x--; c.setNZ(c.x); return 0 }
func (c *CPU) dey(mode addressingMode, operand uint16) int { c.y--; c.setNZ(c.y); return 0 }

func (c *CPU) eor(mode addressingMode, operand uint16) int {
	c.a ^= c.bus.read(operand)
	c.setNZ(c.a)
	return 0
}

func (c *CPU) inc(mode addressingMode, operand uint16) int {
	c.rmw(operand, func(x byte) byte {
		x++
		c.setNZ(x)
		return x
	})
	return 0
}

func (c *CPU) inx(mode addressingMode, operand uint16) int { c.x++; c.setNZ(c.x); return 0 }
func (c *CPU) iny(mode addressingMode, operand uint16) int { c.y++; c.setNZ(c.y); return 0 }

func (c *CPU) jmp(mode addressingMode, operand uint16) int { c.pc = operand; return 0 }

func (c *CPU) jsr(mode addressingMode, operand uint16) int {
	c.push16(c.pc - 1)
	c.pc = operand
	return 0
}

func (c *CPU) lda(mode addressingMode, operand uint16) int {
	c.a = c.bus.read(operand)
	c.setNZ(c.a)
	return 0
}
func (c *CPU) ldx(mode addressingMode, operand uint16) int {
	c.x = c.bus.read(operand)
	c.setNZ(c.x)
	return 0
}
func (c *CPU) ldy(mode addressingMode, operand uint16) int {
	c.y = c.bus.read(operand)
	c.setNZ(c.y)
	return 0
}

func (c *CPU) lsr(mode addressingMode, operand uint16) int {
	if mode == accumulator {
		c.p.c = c.a&1 != 0
		c.a >>= 1
		c.setNZ(c.a)
		return 0
	}
	c.rmw(operand, func(x byte) byte {
		c.p.c = x&1 != 0
		x >>= 1
		c.setNZ(x)
		return x
	})
	return 0
}

func (c *CPU) nop(mode addressingMode, operand uint16) int { return 0 }

// nopRead is an unofficial NOP that still performs its addressed read,
// so page-cross timing for e.g. $1C (NOP absoluteX) matches hardware.
func (c *CPU) nopRead(mode addressingMode, operand uint16) int {
	if mode != implied {
		c.bus.read(operand)
	}
	return 0
}

func (c *CPU) ora(mode addressingMode, operand uint16) int {
	c.a |= c.bus.read(operand)
	c.setNZ(c.a)
	return 0
}

func (c *CPU) pha(mode addressingMode, operand uint16) int { c.push(c.a); return 0 }
func (c *CPU) php(mode addressingMode, operand uint16) int {
	flags := c.p
	flags.b = true
	flags.r = true
	c.push(flags.encode())
	return 0
}
func (c *CPU) pla(mode addressingMode, operand uint16) int {
	c.a = c.pop()
	c.setNZ(c.a)
	return 0
}
func (c *CPU) plp(mode addressingMode, operand uint16) int {
	c.p.decodeFrom(c.pop())
	return 0
}

func (c *CPU) rol(mode addressingMode, operand uint16) int {
	var carry byte
	if c.p.c {
		carry = 1
	}
	if mode == accumulator {
		c.p.c = c.a&0x80 != 0
		c.a = (c.a << 1) | carry
		c.setNZ(c.a)
		return 0
	}
	c.rmw(operand, func(x byte) byte {
		c.p.c = x&0x80 != 0
		x = (x << 1) | carry
		c.setNZ(x)
		return x
	})
	return 0
}

func (c *CPU) ror(mode addressingMode, operand uint16) int {
	var carry byte
	if c.p.c {
		carry = 1
	}
	if mode == accumulator {
		c.p.c = c.a&1 != 0
		c.a = (c.a >> 1) | (carry << 7)
		c.setNZ(c.a)
		return 0
	}
	c.rmw(operand, func(x byte) byte {
		c.p.c = x&1 != 0
		x = (x >> 1) | (carry << 7)
		c.setNZ(x)
		return x
	})
	return 0
}

func (c *CPU) rti(mode addressingMode, operand uint16) int {
	c.p.decodeFrom(c.pop())
	c.pc = c.pop16()
	return 0
}

func (c *CPU) rts(mode addressingMode, operand uint16) int {
	c.pc = c.pop16() + 1
	return 0
}

func (c *CPU) sbc(mode addressingMode, operand uint16) int {
	a := c.a
	data := c.bus.read(operand)
	var carry byte
	if c.p.c {
		carry = 1
	}
	sub := uint16(a) - uint16(data) - uint16(1-carry)
	c.a = byte(sub)
	c.p.c = sub < 0x100
	c.p.v = (a^data)&0x80 != 0 && (a^c.a)&0x80 != 0
	c.setNZ(c.a)
	return 0
}

func (c *CPU) sec(mode addressingMode, operand uint16) int { c.p.c = true; return 0 }
func (c *CPU) sed(mode addressingMode, operand uint16) int { c.p.d = true; return 0 }
func (c *CPU) sei(mode addressingMode, operand uint16) int { c.p.i = true; return 0 }

func (c *CPU) sta(mode addressingMode, operand uint16) int { c.write(operand, c.a); return 0 }
func (c *CPU) stx(mode addressingMode, operand uint16) int { c.write(operand, c.x); return 0 }
func (c *CPU) sty(mode addressingMode, operand uint16) int { c.write(operand, c.y); return 0 }

func (c *CPU) tax(mode addressingMode, operand uint16) int { c.x = c.a; c.setNZ(c.x); return 0 }
func (c *CPU) tay(mode addressingMode, operand uint16) int { c.y = c.a; c.setNZ(c.y); return 0 }
func (c *CPU) tsx(mode addressingMode, operand uint16) int { c.x = c.s; c.setNZ(c.x); return 0 }
func (c *CPU) txa(mode addressingMode, operand uint16) int { c.a = c.x; c.setNZ(c.a); return 0 }
func (c *CPU) txs(mode addressingMode, operand uint16) int { c.s = c.x; return 0 }
func (c *CPU) tya(mode addressingMode, operand uint16) int { c.a = c.y; c.setNZ(c.a); return 0 }

// Unofficial opcodes. Reference: https://www.nesdev.org/wiki/CPU_unofficial_opcodes

// LAX - load A and X at once.
func (c *CPU) lax(mode addressingMode, operand uint16) int {
	data := c.bus.read(operand)
	c.a = data
	c.x = data
	c.setNZ(data)
	return 0
}

// SAX - store A AND X.
func (c *CPU) sax(mode addressingMode, operand uint16) int {
	c.write(operand, c.a&c.x)
	return 0
}

// DCP - decrement memory, then compare with A.
func (c *CPU) dcp(mode addressingMode, operand uint16) int {
	result := c.rmw(operand, func(x byte) byte { return x - 1 })
	compare(c, c.a, result)
	return 0
}

// ISC - increment memory, then subtract from A with carry.
func (c *CPU) isc(mode addressingMode, operand uint16) int {
	c.rmw(operand, func(x byte) byte { return x + 1 })
	return c.sbc(mode, operand)
}

// SLO - shift memory left, then OR with A.
func (c *CPU) slo(mode addressingMode, operand uint16) int {
	result := c.rmw(operand, func(x byte) byte {
		c.p.c = x&0x80 != 0
		return x << 1
	})
	c.a |= result
	c.setNZ(c.a)
	return 0
}

// RLA - rotate memory left, then AND with A.
func (c *CPU) rla(mode addressingMode, operand uint16) int {
	var carry byte
	if c.p.c {
		carry = 1
	}
	result := c.rmw(operand, func(x byte) byte {
		c.p.c = x&0x80 != 0
		return (x << 1) | carry
	})
	c.a &= result
	c.setNZ(c.a)
	return 0
}

// SRE - shift memory right, then EOR with A.
func (c *CPU) sre(mode addressingMode, operand uint16) int {
	result := c.rmw(operand, func(x byte) byte {
		c.p.c = x&1 != 0
		return x >> 1
	})
	c.a ^= result
	c.setNZ(c.a)
	return 0
}

// RRA - rotate memory right, then add to A with carry.
func (c *CPU) rra(mode addressingMode, operand uint16) int {
	var carry byte
	if c.p.c {
		carry = 1
	}
	c.rmw(operand, func(x byte) byte {
		c.p.c = x&1 != 0
		return (x >> 1) | (carry << 7)
	})
	return c.adc(mode, operand)
}

// ANC (AAC) - AND then copy bit 7 into carry.
func (c *CPU) anc(mode addressingMode, operand uint16) int {
	c.a &= c.bus.read(operand)
	c.p.c = c.a&0x80 != 0
	c.setNZ(c.a)
	return 0
}

// ALR (ASR) - AND then shift right.
func (c *CPU) alr(mode addressingMode, operand uint16) int {
	c.a &= c.bus.read(operand)
	c.p.c = c.a&1 != 0
	c.a >>= 1
	c.setNZ(c.a)
	return 0
}

// ARR - AND then rotate right, with a peculiar carry/overflow rule.
func (c *CPU) arr(mode addressingMode, operand uint16) int {
	var carry byte
	if c.p.c {
		carry = 1
	}
	c.a &= c.bus.read(operand)
	c.a = (c.a >> 1) | (carry << 7)
	c.p.c = c.a&0x40 != 0
	c.p.v = (c.a>>6)&1^(c.a>>5)&1 != 0
	c.setNZ(c.a)
	return 0
}

// LAS (LAX/AXS variants) - LAX load via the stack pointer.
func (c *CPU) las(mode addressingMode, operand uint16) int {
	data := c.bus.read(operand) & c.s
	c.a = data
	c.x = data
	c.s = data
	c.setNZ(data)
	return 0
}

// AXS (SBX) - (A AND X) minus immediate, result into X.
func (c *CPU) axs(mode addressingMode, operand uint16) int {
	data := c.bus.read(operand)
	result := (c.a & c.x) - data
	c.p.c = (c.a & c.x) >= data
	c.x = result
	c.setNZ(c.x)
	return 0
}

// hlt (JAM/KIL) - halts on real hardware; here it just stops advancing
// the program counter so a runaway jump into unmapped opcode space is
// visible instead of silently executing garbage.
func (c *CPU) hlt(mode addressingMode, operand uint16) int {
	c.pc -= 1
	return 0
}

func (c *CPU) createInstructions() [256]instruction {
	var t [256]instruction
	set := func(op byte, mnemonic string, mode addressingMode, fn func(*CPU, addressingMode, uint16) int, size byte, cycles int, pageCrossCycle bool) {
		t[op] = instruction{mnemonic, mode, fn, size, cycles, pageCrossCycle}
	}

	set(0x00, "BRK", implied, (*CPU).brk, 1, 7, false)
	set(0x01, "ORA", indirectX, (*CPU).ora, 2, 6, false)
	set(0x05, "ORA", zeropage, (*CPU).ora, 2, 3, false)
	set(0x06, "ASL", zeropage, (*CPU).asl, 2, 5, false)
	set(0x08, "PHP", implied, (*CPU).php, 1, 3, false)
	set(0x09, "ORA", immediate, (*CPU).ora, 2, 2, false)
	set(0x0A, "ASL", accumulator, (*CPU).asl, 1, 2, false)
	set(0x0D, "ORA", absolute, (*CPU).ora, 3, 4, false)
	set(0x0E, "ASL", absolute, (*CPU).asl, 3, 6, false)
	set(0x10, "BPL", relative, (*CPU).bpl, 2, 2, false)
	set(0x11, "ORA", indirectY, (*CPU).ora, 2, 5, true)
	set(0x15, "ORA", zeropageX, (*CPU).ora, 2, 4, false)
	set(0x16, "ASL", zeropageX, (*CPU).asl, 2, 6, false)
	set(0x18, "CLC", implied, (*CPU).clc, 1, 2, false)
	set(0x19, "ORA", absoluteY, (*CPU).ora, 3, 4, true)
	set(0x1D, "ORA", absoluteX, (*CPU).ora, 3, 4, true)
	set(0x1E, "ASL", absoluteX, (*CPU).asl, 3, 7, false)
	set(0x20, "JSR", absolute, (*CPU).jsr, 3, 6, false)
	set(0x21, "AND", indirectX, (*CPU).and, 2, 6, false)
	set(0x24, "BIT", zeropage, (*CPU).bit, 2, 3, false)
	set(0x25, "AND", zeropage, (*CPU).and, 2, 3, false)
	set(0x26, "ROL", zeropage, (*CPU).rol, 2, 5, false)
	set(0x28, "PLP", implied, (*CPU).plp, 1, 4, false)
	set(0x29, "AND", immediate, (*CPU).and, 2, 2, false)
	set(0x2A, "ROL", accumulator, (*CPU).rol, 1, 2, false)
	set(0x2C, "BIT", absolute, (*CPU).bit, 3, 4, false)
	set(0x2D, "AND", absolute, (*CPU).and, 3, 4, false)
	set(0x2E, "ROL", absolute, (*CPU).rol, 3, 6, false)
	set(0x30, "BMI", relative, (*CPU).bmi, 2, 2, false)
	set(0x31, "AND", indirectY, (*CPU).and, 2, 5, true)
	set(0x35, "AND", zeropageX, (*CPU).and, 2, 4, false)
	set(0x36, "ROL", zeropageX, (*CPU).rol, 2, 6, false)
	set(0x38, "SEC", implied, (*CPU).sec, 1, 2, false)
	set(0x39, "AND", absoluteY, (*CPU).and, 3, 4, true)
	set(0x3D, "AND", absoluteX, (*CPU).and, 3, 4, true)
	set(0x3E, "ROL", absoluteX, (*CPU).rol, 3, 7, false)
	set(0x40, "RTI", implied, (*CPU).rti, 1, 6, false)
	set(0x41, "EOR", indirectX, (*CPU).eor, 2, 6, false)
	set(0x45, "EOR", zeropage, (*CPU).eor, 2, 3, false)
	set(0x46, "LSR", zeropage, (*CPU).lsr, 2, 5, false)
	set(0x48, "PHA", implied, (*CPU).pha, 1, 3, false)
	set(0x49, "EOR", immediate, (*CPU).eor, 2, 2, false)
	set(0x4A, "LSR", accumulator, (*CPU).lsr, 1, 2, false)
	set(0x4C, "JMP", absolute, (*CPU).jmp, 3, 3, false)
	set(0x4D, "EOR", absolute, (*CPU).eor, 3, 4, false)
	set(0x4E, "LSR", absolute, (*CPU).lsr, 3, 6, false)
	set(0x50, "BVC", relative, (*CPU).bvc, 2, 2, false)
	set(0x51, "EOR", indirectY, (*CPU).eor, 2, 5, true)
	set(0x55, "EOR", zeropageX, (*CPU).eor, 2, 4, false)
	set(0x56, "LSR", zeropageX, (*CPU).lsr, 2, 6, false)
	set(0x58, "CLI", implied, (*CPU).cli, 1, 2, false)
	set(0x59, "EOR", absoluteY, (*CPU).eor, 3, 4, true)
	set(0x5D, "EOR", absoluteX, (*CPU).eor, 3, 4, true)
	set(0x5E, "LSR", absoluteX, (*CPU).lsr, 3, 7, false)
	set(0x60, "RTS", implied, (*CPU).rts, 1, 6, false)
	set(0x61, "ADC", indirectX, (*CPU).adc, 2, 6, false)
	set(0x65, "ADC", zeropage, (*CPU).adc, 2, 3, false)
	set(0x66, "ROR", zeropage, (*CPU).ror, 2, 5, false)
	set(0x68, "PLA", implied, (*CPU).pla, 1, 4, false)
	set(0x69, "ADC", immediate, (*CPU).adc, 2, 2, false)
	set(0x6A, "ROR", accumulator, (*CPU).ror, 1, 2, false)
	set(0x6C, "JMP", indirect, (*CPU).jmp, 3, 5, false)
	set(0x6D, "ADC", absolute, (*CPU).adc, 3, 4, false)
	set(0x6E, "ROR", absolute, (*CPU).ror, 3, 6, false)
	set(0x70, "BVS", relative, (*CPU).bvs, 2, 2, false)
	set(0x71, "ADC", indirectY, (*CPU).adc, 2, 5, true)
	set(0x75, "ADC", zeropageX, (*CPU).adc, 2, 4, false)
	set(0x76, "ROR", zeropageX, (*CPU).ror, 2, 6, false)
	set(0x78, "SEI", implied, (*CPU).sei, 1, 2, false)
	set(0x79, "ADC", absoluteY, (*CPU).adc, 3, 4, true)
	set(0x7D, "ADC", absoluteX, (*CPU).adc, 3, 4, true)
	set(0x7E, "ROR", absoluteX, (*CPU).ror, 3, 7, false)
	set(0x81, "STA", indirectX, (*CPU).sta, 2, 6, false)
	set(0x84, "STY", zeropage, (*CPU).sty, 2, 3, false)
	set(0x85, "STA", zeropage, (*CPU).sta, 2, 3, false)
	set(0x86, "STX", zeropage, (*CPU).stx, 2, 3, false)
	set(0x88, "DEY", implied, (*CPU).dey, 1, 2, false)
	set(0x8A, "TXA", implied, (*CPU).txa, 1, 2, false)
	set(0x8C, "STY", absolute, (*CPU).sty, 3, 4, false)
	set(0x8D, "STA", absolute, (*CPU).sta, 3, 4, false)
	set(0x8E, "STX", absolute, (*CPU).stx, 3, 4, false)
	set(0x90, "BCC", relative, (*CPU).bcc, 2, 2, false)
	set(0x91, "STA", indirectY, (*CPU).sta, 2, 6, false)
	set(0x94, "STY", zeropageX, (*CPU).sty, 2, 4, false)
	set(0x95, "STA", zeropageX, (*CPU).sta, 2, 4, false)
	set(0x96, "STX", zeropageY, (*CPU).stx, 2, 4, false)
	set(0x98, "TYA", implied, (*CPU).tya, 1, 2, false)
	set(0x99, "STA", absoluteY, (*CPU).sta, 3, 5, false)
	set(0x9A, "TXS", implied, (*CPU).txs, 1, 2, false)
	set(0x9D, "STA", absoluteX, (*CPU).sta, 3, 5, false)
	set(0xA0, "LDY", immediate, (*CPU).ldy, 2, 2, false)
	set(0xA1, "LDA", indirectX, (*CPU).lda, 2, 6, false)
	set(0xA2, "LDX", immediate, (*CPU).ldx, 2, 2, false)
	set(0xA4, "LDY", zeropage, (*CPU).ldy, 2, 3, false)
	set(0xA5, "LDA", zeropage, (*CPU).lda, 2, 3, false)
	set(0xA6, "LDX", zeropage, (*CPU).ldx, 2, 3, false)
	set(0xA8, "TAY", implied, (*CPU).tay, 1, 2, false)
	set(0xA9, "LDA", immediate, (*CPU).lda, 2, 2, false)
	set(0xAA, "TAX", implied, (*CPU).tax, 1, 2, false)
	set(0xAC, "LDY", absolute, (*CPU).ldy, 3, 4, false)
	set(0xAD, "LDA", absolute, (*CPU).lda, 3, 4, false)
	set(0xAE, "LDX", absolute, (*CPU).ldx, 3, 4, false)
	set(0xB0, "BCS", relative, (*CPU).bcs, 2, 2, false)
	set(0xB1, "LDA", indirectY, (*CPU).lda, 2, 5, true)
	set(0xB4, "LDY", zeropageX, (*CPU).ldy, 2, 4, false)
	set(0xB5, "LDA", zeropageX, (*CPU).lda, 2, 4, false)
	set(0xB6, "LDX", zeropageY, (*CPU).ldx, 2, 4, false)
	set(0xB8, "CLV", implied, (*CPU).clv, 1, 2, false)
	set(0xB9, "LDA", absoluteY, (*CPU).lda, 3, 4, true)
	set(0xBA, "TSX", implied, (*CPU).tsx, 1, 2, false)
	set(0xBC, "LDY", absoluteX, (*CPU).ldy, 3, 4, true)
	set(0xBD, "LDA", absoluteX, (*CPU).lda, 3, 4, true)
	set(0xBE, "LDX", absoluteY, (*CPU).ldx, 3, 4, true)
	set(0xC0, "CPY", immediate, (*CPU).cpy, 2, 2, false)
	set(0xC1, "CMP", indirectX, (*CPU).cmp, 2, 6, false)
	set(0xC4, "CPY", zeropage, (*CPU).cpy, 2, 3, false)
	set(0xC5, "CMP", zeropage, (*CPU).cmp, 2, 3, false)
	set(0xC6, "DEC", zeropage, (*CPU).dec, 2, 5, false)
	set(0xC8, "INY", implied, (*CPU).iny, 1, 2, false)
	set(0xC9, "CMP", immediate, (*CPU).cmp, 2, 2, false)
	set(0xCA, "DEX", implied, (*CPU).dex, 1, 2, false)
	set(0xCC, "CPY", absolute, (*CPU).cpy, 3, 4, false)
	set(0xCD, "CMP", absolute, (*CPU).cmp, 3, 4, false)
	set(0xCE, "DEC", absolute, (*CPU).dec, 3, 6, false)
	set(0xD0, "BNE", relative, (*CPU).bne, 2, 2, false)
	set(0xD1, "CMP", indirectY, (*CPU).cmp, 2, 5, true)
	set(0xD5, "CMP", zeropageX, (*CPU).cmp, 2, 4, false)
	set(0xD6, "DEC", zeropageX, (*CPU).dec, 2, 6, false)
	set(0xD8, "CLD", implied, (*CPU).cld, 1, 2, false)
	set(0xD9, "CMP", absoluteY, (*CPU).cmp, 3, 4, true)
	set(0xDD, "CMP", absoluteX, (*CPU).cmp, 3, 4, true)
	set(0xDE, "DEC", absoluteX, (*CPU).dec, 3, 7, false)
	set(0xE0, "CPX", immediate, (*CPU).cpx, 2, 2, false)
	set(0xE1, "SBC", indirectX, (*CPU).sbc, 2, 6, false)
	set(0xE4, "CPX", zeropage, (*CPU).cpx, 2, 3, false)
	set(0xE5, "SBC", zeropage, (*CPU).sbc, 2, 3, false)
	set(0xE6, "INC", zeropage, (*CPU).inc, 2, 5, false)
	set(0xE8, "INX", implied, (*CPU).inx, 1, 2, false)
	set(0xE9, "SBC", immediate, (*CPU).sbc, 2, 2, false)
	set(0xEA, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0xEC, "CPX", absolute, (*CPU).cpx, 3, 4, false)
	set(0xED, "SBC", absolute, (*CPU).sbc, 3, 4, false)
	set(0xEE, "INC", absolute, (*CPU).inc, 3, 6, false)
	set(0xF0, "BEQ", relative, (*CPU).beq, 2, 2, false)
	set(0xF1, "SBC", indirectY, (*CPU).sbc, 2, 5, true)
	set(0xF5, "SBC", zeropageX, (*CPU).sbc, 2, 4, false)
	set(0xF6, "INC", zeropageX, (*CPU).inc, 2, 6, false)
	set(0xF8, "SED", implied, (*CPU).sed, 1, 2, false)
	set(0xF9, "SBC", absoluteY, (*CPU).sbc, 3, 4, true)
	set(0xFD, "SBC", absoluteX, (*CPU).sbc, 3, 4, true)
	set(0xFE, "INC", absoluteX, (*CPU).inc, 3, 7, false)

	// Unofficial opcodes actually exercised by commercial games and by
	// nestest's extended opcode coverage.
	set(0x02, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x03, "SLO", indirectX, (*CPU).slo, 2, 8, false)
	set(0x04, "NOP", zeropage, (*CPU).nopRead, 2, 3, false)
	set(0x07, "SLO", zeropage, (*CPU).slo, 2, 5, false)
	set(0x0B, "ANC", immediate, (*CPU).anc, 2, 2, false)
	set(0x0C, "NOP", absolute, (*CPU).nopRead, 3, 4, false)
	set(0x0F, "SLO", absolute, (*CPU).slo, 3, 6, false)
	set(0x12, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x13, "SLO", indirectY, (*CPU).slo, 2, 8, false)
	set(0x14, "NOP", zeropageX, (*CPU).nopRead, 2, 4, false)
	set(0x17, "SLO", zeropageX, (*CPU).slo, 2, 6, false)
	set(0x1A, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0x1B, "SLO", absoluteY, (*CPU).slo, 3, 7, false)
	set(0x1C, "NOP", absoluteX, (*CPU).nopRead, 3, 4, true)
	set(0x1F, "SLO", absoluteX, (*CPU).slo, 3, 7, false)
	set(0x22, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x23, "RLA", indirectX, (*CPU).rla, 2, 8, false)
	set(0x27, "RLA", zeropage, (*CPU).rla, 2, 5, false)
	set(0x2B, "ANC", immediate, (*CPU).anc, 2, 2, false)
	set(0x2F, "RLA", absolute, (*CPU).rla, 3, 6, false)
	set(0x32, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x33, "RLA", indirectY, (*CPU).rla, 2, 8, false)
	set(0x34, "NOP", zeropageX, (*CPU).nopRead, 2, 4, false)
	set(0x37, "RLA", zeropageX, (*CPU).rla, 2, 6, false)
	set(0x3A, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0x3B, "RLA", absoluteY, (*CPU).rla, 3, 7, false)
	set(0x3C, "NOP", absoluteX, (*CPU).nopRead, 3, 4, true)
	set(0x3F, "RLA", absoluteX, (*CPU).rla, 3, 7, false)
	set(0x42, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x43, "SRE", indirectX, (*CPU).sre, 2, 8, false)
	set(0x44, "NOP", zeropage, (*CPU).nopRead, 2, 3, false)
	set(0x47, "SRE", zeropage, (*CPU).sre, 2, 5, false)
	set(0x4B, "ALR", immediate, (*CPU).alr, 2, 2, false)
	set(0x4F, "SRE", absolute, (*CPU).sre, 3, 6, false)
	set(0x52, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x53, "SRE", indirectY, (*CPU).sre, 2, 8, false)
	set(0x54, "NOP", zeropageX, (*CPU).nopRead, 2, 4, false)
	set(0x57, "SRE", zeropageX, (*CPU).sre, 2, 6, false)
	set(0x5A, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0x5B, "SRE", absoluteY, (*CPU).sre, 3, 7, false)
	set(0x5C, "NOP", absoluteX, (*CPU).nopRead, 3, 4, true)
	set(0x5F, "SRE", absoluteX, (*CPU).sre, 3, 7, false)
	set(0x62, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x63, "RRA", indirectX, (*CPU).rra, 2, 8, false)
	set(0x64, "NOP", zeropage, (*CPU).nopRead, 2, 3, false)
	set(0x67, "RRA", zeropage, (*CPU).rra, 2, 5, false)
	set(0x6B, "ARR", immediate, (*CPU).arr, 2, 2, false)
	set(0x6F, "RRA", absolute, (*CPU).rra, 3, 6, false)
	set(0x72, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x73, "RRA", indirectY, (*CPU).rra, 2, 8, false)
	set(0x74, "NOP", zeropageX, (*CPU).nopRead, 2, 4, false)
	set(0x77, "RRA", zeropageX, (*CPU).rra, 2, 6, false)
	set(0x7A, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0x7B, "RRA", absoluteY, (*CPU).rra, 3, 7, false)
	set(0x7C, "NOP", absoluteX, (*CPU).nopRead, 3, 4, true)
	set(0x7F, "RRA", absoluteX, (*CPU).rra, 3, 7, false)
	set(0x80, "NOP", immediate, (*CPU).nopRead, 2, 2, false)
	set(0x82, "NOP", immediate, (*CPU).nopRead, 2, 2, false)
	set(0x83, "SAX", indirectX, (*CPU).sax, 2, 6, false)
	set(0x87, "SAX", zeropage, (*CPU).sax, 2, 3, false)
	set(0x89, "NOP", immediate, (*CPU).nopRead, 2, 2, false)
	set(0x8B, "NOP", immediate, (*CPU).nopRead, 2, 2, false)
	set(0x8F, "SAX", absolute, (*CPU).sax, 3, 4, false)
	set(0x92, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0x93, "SAX", indirectY, (*CPU).sax, 2, 6, false)
	set(0x97, "SAX", zeropageY, (*CPU).sax, 2, 4, false)
	set(0x9B, "NOP", absoluteY, (*CPU).nopRead, 3, 5, false)
	set(0x9C, "NOP", absoluteX, (*CPU).nopRead, 3, 5, false)
	set(0x9E, "NOP", absoluteY, (*CPU).nopRead, 3, 5, false)
	set(0x9F, "SAX", absoluteY, (*CPU).sax, 3, 5, false)
	set(0xA3, "LAX", indirectX, (*CPU).lax, 2, 6, false)
	set(0xA7, "LAX", zeropage, (*CPU).lax, 2, 3, false)
	set(0xAB, "LAX", immediate, (*CPU).lax, 2, 2, false)
	set(0xAF, "LAX", absolute, (*CPU).lax, 3, 4, false)
	set(0xB2, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0xB3, "LAX", indirectY, (*CPU).lax, 2, 5, true)
	set(0xB7, "LAX", zeropageY, (*CPU).lax, 2, 4, false)
	set(0xBB, "LAS", absoluteY, (*CPU).las, 3, 4, true)
	set(0xBF, "LAX", absoluteY, (*CPU).lax, 3, 4, true)
	set(0xC2, "NOP", immediate, (*CPU).nopRead, 2, 2, false)
		set(0xC3, "DCP", indirectX, (*CPU).dcp, 2, 8, false)
	set(0xC7, "DCP", zeropage, (*CPU).dcp, 2, 5, false)
	set(0xCB, "AXS", immediate, (*CPU).axs, 2, 2, false)
	set(0xCF, "DCP", absolute, (*CPU).dcp, 3, 6, false)
	set(0xD2, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0xD3, "DCP", indirectY, (*CPU).dcp, 2, 8, false)
	set(0xD4, "NOP", zeropageX, (*CPU).nopRead, 2, 4, false)
	set(0xD7, "DCP", zeropageX, (*CPU).dcp, 2, 6, false)
	set(0xDA, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0xDB, "DCP", absoluteY, (*CPU).dcp, 3, 7, false)
	set(0xDC, "NOP", absoluteX, (*CPU).nopRead, 3, 4, true)
	set(0xDF, "DCP", absoluteX, (*CPU).dcp, 3, 7, false)
	set(0xE2, "NOP", immediate, (*CPU).nopRead, 2, 2, false)
		set(0xE3, "ISC", indirectX, (*CPU).isc, 2, 8, false)
	set(0xE7, "ISC", zeropage, (*CPU).isc, 2, 5, false)
	set(0xEB, "SBC", immediate, (*CPU).sbc, 2, 2, false)
	set(0xEF, "ISC", absolute, (*CPU).isc, 3, 6, false)
	set(0xF2, "HLT", implied, (*CPU).hlt, 1, 2, false)
	set(0xF3, "ISC", indirectY, (*CPU).isc, 2, 8, false)
	set(0xF4, "NOP", zeropageX, (*CPU).nopRead, 2, 4, false)
	set(0xF7, "ISC", zeropageX, (*CPU).isc, 2, 6, false)
	set(0xFA, "NOP", implied, (*CPU).nop, 1, 2, false)
	set(0xFB, "ISC", absoluteY, (*CPU).isc, 3, 7, false)
	set(0xFC, "NOP", absoluteX, (*CPU).nopRead, 3, 4, true)
	set(0xFF, "ISC", absoluteX, (*CPU).isc, 3, 7, false)

	return t
}
