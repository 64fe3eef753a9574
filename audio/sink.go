// Package audio is the boundary between the scheduler and whatever consumes
// the generated samples. Every sink takes mono or interleaved 32-bit float
// samples and blocks the writer until the samples have been accepted, so the
// sink itself paces playback.
package audio

import "time"

// Sink is an open PCM output stream.
type Sink interface {
	// Write blocks until every sample has been accepted. A buffer is never
	// partially written: an error means the stream is unusable.
	Write(samples []float32) error

	// Stop halts output. Buffered samples may be dropped.
	Stop() error

	// Close releases the stream. It is safe to call more than once.
	Close() error
}

// Opener opens output streams.
type Opener interface {
	Open(sampleRate, channels int) (Sink, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(sampleRate, channels int) (Sink, error)

func (f OpenerFunc) Open(sampleRate, channels int) (Sink, error) {
	return f(sampleRate, channels)
}

// SamplesToDuration converts a sample count to wall-clock time without
// overflowing for long sessions.
func SamplesToDuration(samples int64, sampleRate int) time.Duration {
	rate := int64(sampleRate)
	whole := samples / rate
	rest := samples % rate
	return time.Duration(whole)*time.Second + time.Duration(rest)*time.Second/time.Duration(rate)
}
