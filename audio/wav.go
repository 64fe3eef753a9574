package audio

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// WAVOpener renders sessions to a 16-bit WAV file instead of a device. The
// file is written when the sink is closed.
type WAVOpener struct {
	Path string
}

func (o WAVOpener) Open(sampleRate, channels int) (Sink, error) {
	if o.Path == "" {
		return nil, fmt.Errorf("no output file given")
	}
	if channels != 1 {
		return nil, fmt.Errorf("wav output is mono, got %d channels", channels)
	}

	return &WAVSink{
		path: o.Path,
		format: beep.Format{
			SampleRate:  beep.SampleRate(sampleRate),
			NumChannels: channels,
			Precision:   2,
		},
	}, nil
}

// WAVSink collects samples in memory and encodes them with beep on Close.
type WAVSink struct {
	path    string
	format  beep.Format
	samples []float32
	closed  bool
}

func (s *WAVSink) Write(samples []float32) error {
	if s.closed {
		return fmt.Errorf("cannot write to closed wav sink %s", s.path)
	}
	s.samples = append(s.samples, samples...)
	return nil
}

// Len returns the number of samples collected.
func (s *WAVSink) Len() int {
	return len(s.samples)
}

func (s *WAVSink) Stop() error {
	return nil
}

func (s *WAVSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", s.path, err)
	}
	if err := wav.Encode(f, &sampleStreamer{samples: s.samples}, s.format); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %s: %w", s.path, err)
	}
	return f.Close()
}

// sampleStreamer plays a mono float32 buffer as a beep.Streamer.
type sampleStreamer struct {
	samples []float32
	pos     int
}

func (s *sampleStreamer) Stream(out [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(out) && s.pos < len(s.samples) {
		v := float64(s.samples[s.pos])
		out[n][0] = v
		out[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *sampleStreamer) Err() error {
	return nil
}
