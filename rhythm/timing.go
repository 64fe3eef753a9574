package rhythm

import "math"

const (
	// DefaultSampleRate is the rate every buffer is generated and played at.
	DefaultSampleRate = 44100

	// QuarterNote is the beat type used by clave: one beat is a quarter of a semibreve.
	QuarterNote = 0.25
)

// BeatSamples returns the exact number of samples in one beat at the given
// tempo. A semibreve lasts 60/tempo*4 seconds and a beat is beatType of it.
func BeatSamples(tempo int, beatType float64, sampleRate int) (int, error) {
	if tempo <= 0 {
		return 0, invalidConfiguration("tempo must be a positive number of beats per minute, got %d", tempo)
	}
	if beatType <= 0 || beatType > 1 {
		return 0, invalidConfiguration("beat type must be in (0, 1], got %v", beatType)
	}
	if sampleRate <= 0 {
		return 0, invalidConfiguration("sample rate must be positive, got %d", sampleRate)
	}

	semibreve := 60 / float64(tempo) * 4
	beatSeconds := semibreve * beatType
	return int(math.Round(beatSeconds * float64(sampleRate))), nil
}

// InterTickSilence returns how many samples of silence follow a tick of
// tickSamples so that tick plus silence fill exactly one beat.
func InterTickSilence(tempo int, beatType float64, tickSamples, sampleRate int) (int, error) {
	if tickSamples <= 0 {
		return 0, invalidConfiguration("tick length must be positive, got %d samples", tickSamples)
	}

	total, err := BeatSamples(tempo, beatType, sampleRate)
	if err != nil {
		return 0, err
	}
	if total < tickSamples {
		return 0, invalidConfiguration("tempo %d bpm is too fast: a beat lasts %d samples but a tick needs %d, the fastest playable tempo is %d bpm",
			tempo, total, tickSamples, MaxTempo(beatType, tickSamples, sampleRate))
	}
	return total - tickSamples, nil
}

// MaxTempo returns the fastest tempo at which a tick of tickSamples still fits
// inside one beat.
func MaxTempo(beatType float64, tickSamples, sampleRate int) int {
	if tickSamples <= 0 || beatType <= 0 || sampleRate <= 0 {
		return 0
	}

	fits := func(tempo int) bool {
		total, err := BeatSamples(tempo, beatType, sampleRate)
		return err == nil && total >= tickSamples
	}

	// start from the unrounded estimate and correct for rounding
	tempo := int(240 * beatType * float64(sampleRate) / float64(tickSamples))
	for tempo > 0 && !fits(tempo) {
		tempo--
	}
	for fits(tempo + 1) {
		tempo++
	}
	return tempo
}
