package ui

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/kestrelbox/nesgo/nes"
)

// speaker drains the emulator's mono sample stream into the default
// output device, writing each sample to both stereo channels. When the
// emulator falls behind the audio clock the callback pads with
// silence instead of blocking the audio thread.
type speaker struct {
	stream  *portaudio.Stream
	samples chan float32
}

func newSpeaker() *speaker {
	// Half a second of buffering absorbs the bursts the emulator
	// produces between frame paints.
	return &speaker{samples: make(chan float32, nes.SampleRate/2)}
}

func (s *speaker) start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, nes.SampleRate, 0, s.fill)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("opening audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("starting audio stream: %w", err)
	}
	s.stream = stream
	return nil
}

// fill is the portaudio callback; out holds interleaved left/right
// frames.
func (s *speaker) fill(out []float32) {
	for i := 0; i < len(out); i += 2 {
		var sample float32
		select {
		case sample = <-s.samples:
		default:
		}
		out[i] = sample
		out[i+1] = sample
	}
}

func (s *speaker) stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
	}
	portaudio.Terminate()
}
