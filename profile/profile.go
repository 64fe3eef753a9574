package profile

const (
	VoicePrimary  = "voice:accent:primary"
	VoiceStrong   = "voice:accent:strong"
	VoiceOrdinary = "voice:accent:ordinary"
)

// Voices lists the accent voices in order of decreasing emphasis.
var Voices = []string{VoicePrimary, VoiceStrong, VoiceOrdinary}

// Profile holds the timbre of a single tick: a sine at Frequency hertz scaled
// by Amplitude (0.0 - 1.0).
type Profile struct {
	Name      string  `yaml:"name"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
}
