package nes

const (
	// SampleRate is the rate of the (silent) sample stream the APU
	// emits for the host's audio output.
	SampleRate = 44100

	samplePeriod = CPUFrequency / SampleRate

	// frameCounterPeriod is the CPU-cycle length of the frame
	// sequencer's 4-step cycle; mode 0 raises the frame IRQ at its end.
	// Reference: https://www.nesdev.org/wiki/APU_Frame_Counter
	frameCounterPeriod = 29830
)

// APU decodes the same $4000-$4017 writes a real 2A03 APU would, but
// never synthesizes audio: channel register writes are accepted and
// discarded, and the sample stream always carries silence. The frame
// counter is the one real piece, because its IRQ is observable by the
// CPU through $4015 and the interrupt line.
type APU struct {
	out chan float32

	frameCycle  int
	sampleCycle int
	fiveStep    bool
	irqInhibit  bool
	frameIRQ    bool
}

func NewAPU() *APU {
	return &APU{}
}

func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}

// Step advances the frame sequencer by one CPU cycle and emits one
// silent sample every samplePeriod cycles; a real APU would clock its
// pulse/triangle/noise/DMC channels here instead.
func (a *APU) Step() {
	a.frameCycle++
	if a.frameCycle >= frameCounterPeriod {
		a.frameCycle = 0
		if !a.fiveStep && !a.irqInhibit {
			a.frameIRQ = true
		}
	}

	a.sampleCycle++
	if a.sampleCycle >= samplePeriod {
		a.sampleCycle = 0
		if a.out != nil {
			select {
			case a.out <- 0:
			default:
			}
		}
	}
}

// IRQ reports the frame interrupt line. It stays asserted until a
// $4015 read acknowledges it or the inhibit bit is set.
func (a *APU) IRQ() bool {
	return a.frameIRQ
}

// ReadStatus reads $4015. Only the frame-IRQ bit ever sets; reading
// acknowledges it.
func (a *APU) ReadStatus() byte {
	var status byte
	if a.frameIRQ {
		status |= 0x40
	}
	a.frameIRQ = false
	return status
}

func (a *APU) WriteRegister(address uint16, data byte) {
	switch address {
	case 0x4017:
		a.fiveStep = data&0x80 != 0
		a.irqInhibit = data&0x40 != 0
		if a.irqInhibit {
			a.frameIRQ = false
		}
		a.frameCycle = 0
	default:
		// Channel and length-counter registers: accepted, discarded.
	}
}
