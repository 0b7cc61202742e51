package nes

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DebugSession wraps an Emulator with an interactive stdio REPL: step
// N instructions, print CPU/PPU state, set breakpoints on PC values.
// commands:
//   s [n]     step n instructions (default 1)
//   p [c|p]   print console / cpu / ppu state
//   br 0xNNNN set a breakpoint
//   r         reset
//   q         quit
type DebugSession struct {
	emu         *Emulator
	cycles      uint64
	breakpoints []uint16
}

func NewDebugSession(emu *Emulator) *DebugSession {
	return &DebugSession{emu: emu}
}

func (d *DebugSession) stepOnce() {
	d.cycles += uint64(d.emu.cpu.Step())
}

func (d *DebugSession) atBreakpoint() bool {
	for _, bp := range d.breakpoints {
		if bp == d.emu.cpu.pc {
			fmt.Printf("break at 0x%04x\n", bp)
			return true
		}
	}
	return false
}

func (d *DebugSession) printState() {
	fmt.Println("----------------------------------------")
	fmt.Printf("cycles: %d\n", d.cycles)
	fmt.Println(d.emu.cpu.Disassemble())
	fmt.Printf("ppu: cycle=%d scanline=%d v=0x%04x\n", d.emu.ppu.cycle, d.emu.ppu.scanline, d.emu.ppu.v)
}

func (d *DebugSession) handleStep(args []string) {
	n := 1
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			n = v
		}
	}
	for i := 0; i < n; i++ {
		d.stepOnce()
		if d.atBreakpoint() {
			break
		}
	}
}

func (d *DebugSession) handlePrint(args []string) {
	if len(args) < 2 {
		d.printState()
		return
	}
	switch args[1] {
	case "c", "cpu":
		fmt.Printf("%+v\n", *d.emu.cpu)
	case "p", "ppu":
		fmt.Printf("%+v\n", *d.emu.ppu)
	}
}

func (d *DebugSession) handleBreakpoint(args []string) {
	if len(args) < 2 {
		return
	}
	var addr uint16
	fmt.Sscanf(args[1], "0x%x", &addr)
	d.breakpoints = append(d.breakpoints, addr)
}

// RunCommand reads and executes one command line from stdin.
func (d *DebugSession) RunCommand() error {
	fmt.Print("(nes-debug) ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "s", "step":
		d.handleStep(args)
		d.printState()
	case "p", "print":
		d.handlePrint(args)
	case "br", "breakpoint":
		d.handleBreakpoint(args)
	case "r", "reset":
		d.emu.Reset()
	case "q", "quit":
		os.Exit(0)
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
	return nil
}
