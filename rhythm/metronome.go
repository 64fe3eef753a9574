package rhythm

// Accent is the emphasis a beat receives.
type Accent int

const (
	AccentOrdinary Accent = iota
	AccentStrong
	AccentPrimary
)

func (a Accent) String() string {
	switch a {
	case AccentPrimary:
		return "primary"
	case AccentStrong:
		return "strong"
	default:
		return "ordinary"
	}
}

// Metronome holds the fixed parameters of one playback session. It is built
// once from the user's choices and never changes afterwards.
// Loosely modelled on https://github.com/Deep-Symmetry/electro/blob/main/src/main/java/org/deepsymmetry/electro/Metronome.java
type Metronome struct {
	tempo       int
	beatsPerBar int
	beatType    float64
	grouping    Grouping
	strongBeats StrongBeats
}

// NewMetronome validates the tempo, bar length and grouping and derives the
// strong beats. A nil grouping means no grouping. Beats are quarter notes.
func NewMetronome(tempo, beatsPerBar int, grouping Grouping, groupSizes []int) (*Metronome, error) {
	return NewMetronomeWithBeatType(tempo, beatsPerBar, grouping, groupSizes, QuarterNote)
}

// NewMetronomeWithBeatType is NewMetronome for a beat of beatType semibreves.
func NewMetronomeWithBeatType(tempo, beatsPerBar int, grouping Grouping, groupSizes []int, beatType float64) (*Metronome, error) {
	if beatType <= 0 || beatType > 1 {
		return nil, invalidConfiguration("beat type must be in (0, 1], got %v", beatType)
	}
	if tempo <= 0 {
		return nil, invalidConfiguration("tempo must be a positive number of beats per minute, got %d", tempo)
	}
	if beatsPerBar <= 0 {
		return nil, invalidConfiguration("beats in bar must be positive, got %d", beatsPerBar)
	}
	if grouping == nil {
		grouping = NoGrouping(beatsPerBar)
	}
	if err := ValidateGrouping(groupSizes, beatsPerBar, grouping); err != nil {
		return nil, err
	}

	g := make(Grouping, len(grouping))
	copy(g, grouping)

	return &Metronome{
		tempo:       tempo,
		beatsPerBar: beatsPerBar,
		beatType:    beatType,
		grouping:    g,
		strongBeats: DeriveStrongBeats(beatsPerBar, g),
	}, nil
}

func (m *Metronome) GetTempo() int {
	return m.tempo
}

func (m *Metronome) GetBeatsPerBar() int {
	return m.beatsPerBar
}

func (m *Metronome) GetBeatType() float64 {
	return m.beatType
}

func (m *Metronome) GetGrouping() Grouping {
	return m.grouping
}

func (m *Metronome) GetStrongBeats() StrongBeats {
	return m.strongBeats
}

// GetBeatInterval returns the number of milliseconds a beat lasts.
func (m *Metronome) GetBeatInterval() float64 {
	return beatsToMilliseconds(1, m.tempo, m.beatType)
}

// GetBarInterval returns the number of milliseconds a bar lasts.
func (m *Metronome) GetBarInterval() float64 {
	return beatsToMilliseconds(m.beatsPerBar, m.tempo, m.beatType)
}

// AccentOf returns how beat (1-indexed within the bar) is accented.
func (m *Metronome) AccentOf(beat int) Accent {
	switch {
	case beat == 1:
		return AccentPrimary
	case m.strongBeats.Contains(beat):
		return AccentStrong
	default:
		return AccentOrdinary
	}
}

// beatsToMilliseconds calculates milliseconds for given beats and tempo
func beatsToMilliseconds(beats int, tempo int, beatType float64) float64 {
	return (60000.0 / float64(tempo)) * 4 * beatType * float64(beats)
}
