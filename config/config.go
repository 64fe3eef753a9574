package config

import (
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/clave/effect"
	"github.com/robmorgan/clave/profile"
	"github.com/robmorgan/clave/rhythm"
)

// ClaveConfig represents options that configure the global behavior of the program
type ClaveConfig struct {
	// Output sample rate in hertz
	SampleRate int `yaml:"sample_rate"`

	// Number of output channels. Ticks are mono.
	Channels int `yaml:"channels"`

	// Length of every tick in samples
	TickSamples int `yaml:"tick_samples"`

	// Fraction of a semibreve that makes up one beat
	BeatType float64 `yaml:"beat_type"`

	// The group lengths a bar may be divided into
	GroupSizes []int `yaml:"group_sizes"`

	// Name of the envelope applied to each tick, see the effect package
	Envelope string `yaml:"envelope"`

	// Size of the audio device buffer in bytes
	BufferSize int `yaml:"buffer_size"`

	// logrus level name
	LogLevel string `yaml:"log_level"`

	// The tick profiles available to the patch
	Profiles map[string]profile.Profile `yaml:"profiles"`

	// Patch maps each accent voice to a profile name
	Patch Patch `yaml:"patch"`
}

// NewClaveConfig creates a new ClaveConfig object with reasonable defaults for real usage
func NewClaveConfig() (ClaveConfig, error) {
	cfg := ClaveConfig{
		SampleRate:  rhythm.DefaultSampleRate,
		Channels:    1,
		TickSamples: 1400,
		BeatType:    rhythm.QuarterNote,
		GroupSizes:  append([]int(nil), rhythm.DefaultGroupSizes...),
		Envelope:    effect.EnvelopeNone,
		BufferSize:  8192,
		LogLevel:    "info",
		Profiles:    initializeTickProfiles(),
		Patch:       DefaultPatch(),
	}
	return cfg, cfg.Validate()
}

// Validate checks every value a session depends on.
func (c ClaveConfig) Validate() error {
	if c.SampleRate <= 0 {
		return invalid("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.Channels != 1 {
		return invalid("only mono output is supported, got %d channels", c.Channels)
	}
	if c.TickSamples <= 0 {
		return invalid("tick_samples must be positive, got %d", c.TickSamples)
	}
	if c.BeatType <= 0 || c.BeatType > 1 {
		return invalid("beat_type must be in (0, 1], got %v", c.BeatType)
	}
	if len(c.GroupSizes) == 0 {
		return invalid("group_sizes must not be empty")
	}
	for _, size := range c.GroupSizes {
		if size <= 0 {
			return invalid("group_sizes must be positive, got %d", size)
		}
	}
	if _, err := effect.NewEnvelope(c.Envelope); err != nil {
		return err
	}
	if c.BufferSize <= 0 {
		return invalid("buffer_size must be positive, got %d", c.BufferSize)
	}

	nyquist := float64(c.SampleRate) / 2
	for name, p := range c.Profiles {
		if p.Frequency <= 0 || p.Frequency >= nyquist {
			return invalid("profile %q: frequency %v must be between 0 and %v", name, p.Frequency, nyquist)
		}
		if p.Amplitude < 0 || p.Amplitude > 1 {
			return invalid("profile %q: amplitude %v must be between 0 and 1", name, p.Amplitude)
		}
	}

	for _, voice := range profile.Voices {
		name, ok := c.Patch[voice]
		if !ok {
			return invalid("patch has no profile for %s", voice)
		}
		if _, ok := c.Profiles[name]; !ok {
			return invalid("patch maps %s to unknown profile %q", voice, name)
		}
	}
	return nil
}

// Voices resolves the patch to the profile played for each accent voice.
func (c ClaveConfig) Voices() map[string]profile.Profile {
	out := make(map[string]profile.Profile, len(profile.Voices))
	for _, voice := range profile.Voices {
		out[voice] = c.Profiles[c.Patch[voice]]
	}
	return out
}

func invalid(format string, args ...interface{}) error {
	return goerrors.WithStackTrace(rhythm.InvalidConfigurationError{Reason: fmt.Sprintf("config: "+format, args...)})
}
