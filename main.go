package main

import (
	"flag"
	"io/ioutil"
	"os"
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/profile"

	"github.com/kestrelbox/nesgo/nes"
	"github.com/kestrelbox/nesgo/ui"
)

var (
	path   = flag.String("path", "./rom/sample1.nes", "path to NES ROM file")
	width  = flag.Int("width", 256*4, "window width")
	height = flag.Int("height", 240*4, "window height")
	cpu    = flag.Bool("cpuprofile", false, "write a cpu profile to ./cpu.pprof on exit")
	debug  = flag.Bool("debug", false, "run an interactive stdio debugger instead of the GUI")
)

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ioutil.ReadAll(f)
}

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if *cpu {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	buf, err := readFile(*path)
	if err != nil {
		glog.Fatalln("failed to read ", *path, ": ", err)
	}
	emu, err := nes.New(buf)
	if err != nil {
		glog.Fatalln("failed to load cartridge: ", err)
	}

	if *debug {
		session := nes.NewDebugSession(emu)
		for {
			if err := session.RunCommand(); err != nil {
				return
			}
		}
	}
	ui.Start(emu, *width, *height)
}
