package playback

import (
	"github.com/robmorgan/clave/config"
	"github.com/robmorgan/clave/effect"
	"github.com/robmorgan/clave/engine/waveform"
	"github.com/robmorgan/clave/rhythm"
)

// Params are the user's choices for one session.
type Params struct {
	Tempo      int
	BeatsInBar int

	// nil means no grouping
	Grouping rhythm.Grouping
}

// Plan is everything the scheduler streams during a session. It is computed
// once before playback starts and is read-only afterwards.
type Plan struct {
	Metronome  *rhythm.Metronome
	Ticks      waveform.TickSet
	Silence    waveform.Buffer
	SampleRate int
	Channels   int
}

// NewPlan validates params against cfg and renders the buffers. Any error is
// an InvalidConfiguration and means playback must not start.
func NewPlan(cfg config.ClaveConfig, params Params) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metronome, err := rhythm.NewMetronomeWithBeatType(params.Tempo, params.BeatsInBar, params.Grouping, cfg.GroupSizes, cfg.BeatType)
	if err != nil {
		return nil, err
	}

	silence, err := rhythm.InterTickSilence(metronome.GetTempo(), metronome.GetBeatType(), cfg.TickSamples, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	ticks := waveform.NewTickSet(cfg.Voices(), cfg.TickSamples, cfg.SampleRate)
	envelope, err := effect.NewEnvelope(cfg.Envelope)
	if err != nil {
		return nil, err
	}
	if envelope != nil {
		ticks = waveform.TickSet{
			Primary:  envelope.Apply(ticks.Primary),
			Strong:   envelope.Apply(ticks.Strong),
			Ordinary: envelope.Apply(ticks.Ordinary),
		}
	}

	return &Plan{
		Metronome:  metronome,
		Ticks:      ticks,
		Silence:    waveform.Silence(silence),
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
	}, nil
}

// TickFor returns the tick played on beat of the bar.
func (p *Plan) TickFor(beat int) waveform.Buffer {
	switch p.Metronome.AccentOf(beat) {
	case rhythm.AccentPrimary:
		return p.Ticks.Primary
	case rhythm.AccentStrong:
		return p.Ticks.Strong
	default:
		return p.Ticks.Ordinary
	}
}

// BeatSamples returns the length of one beat in samples.
func (p *Plan) BeatSamples() int {
	return len(p.Ticks.Primary) + len(p.Silence)
}
