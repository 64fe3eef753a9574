package rhythm

import "fmt"

// Position is the scheduler's cursor: the bar number, counted from 1 and only
// ever increasing, and the beat within that bar.
type Position struct {
	Bar  int
	Beat int
}

// Start is the position of the first beat of a session.
func Start() Position {
	return Position{Bar: 1, Beat: 1}
}

// Next advances one beat, wrapping to beat 1 of the following bar once the
// bar is complete.
func (p Position) Next(beatsPerBar int) Position {
	if p.Beat < beatsPerBar {
		return Position{Bar: p.Bar, Beat: p.Beat + 1}
	}
	return Position{Bar: p.Bar + 1, Beat: 1}
}

// IsDownBeat checks whether the position is the first beat in its bar.
func (p Position) IsDownBeat() bool {
	return p.Beat == 1
}

// IsLastBeat checks whether the position closes its bar.
func (p Position) IsLastBeat(beatsPerBar int) bool {
	return p.Beat == beatsPerBar
}

// GetMarker returns the position as "bar.beat".
func (p Position) GetMarker() string {
	return fmt.Sprintf("%d.%d", p.Bar, p.Beat)
}
