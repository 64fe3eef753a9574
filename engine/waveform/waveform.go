// Package waveform generates the fixed buffers streamed by the scheduler: one
// sine tick per accent and the silence that pads a tick out to a full beat.
package waveform

import (
	"math"

	"github.com/robmorgan/clave/engine/scale"
	"github.com/robmorgan/clave/profile"
)

const twoPi = 2 * math.Pi

// Buffer is a run of mono 32-bit float samples.
type Buffer []float32

// Tick returns sampleCount samples of a sine at frequency hertz, scaled by
// amplitude. Identical arguments always give bit-identical buffers.
func Tick(frequency float64, sampleCount int, amplitude float64, sampleRate int) Buffer {
	if sampleCount <= 0 {
		return Buffer{}
	}

	amplitude = scale.UnitClamp(amplitude)
	out := make(Buffer, sampleCount)
	for i := range out {
		out[i] = float32(amplitude * math.Sin(twoPi*float64(i)*frequency/float64(sampleRate)))
	}
	return out
}

// Silence returns sampleCount zero samples.
func Silence(sampleCount int) Buffer {
	if sampleCount <= 0 {
		return Buffer{}
	}
	return make(Buffer, sampleCount)
}

// TickSet holds the three tick timbres of a session.
type TickSet struct {
	Primary  Buffer
	Strong   Buffer
	Ordinary Buffer
}

// NewTickSet renders one tick per voice. voices is keyed by the profile.Voice*
// constants.
func NewTickSet(voices map[string]profile.Profile, sampleCount, sampleRate int) TickSet {
	render := func(voice string) Buffer {
		p := voices[voice]
		return Tick(p.Frequency, sampleCount, p.Amplitude, sampleRate)
	}

	return TickSet{
		Primary:  render(profile.VoicePrimary),
		Strong:   render(profile.VoiceStrong),
		Ordinary: render(profile.VoiceOrdinary),
	}
}
