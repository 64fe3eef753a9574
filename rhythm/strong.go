package rhythm

import "golang.org/x/exp/slices"

// StrongBeats holds the 1-indexed beats that open a group. The first entry is
// always beat 1, which the scheduler accents as the downbeat.
type StrongBeats []int

// DeriveStrongBeats walks the grouping from beat 1, adding each group length
// in turn. A position is only kept while it is strictly inside the bar, so a
// group ending exactly on the bar line never marks a strong beat.
func DeriveStrongBeats(beatsInBar int, grouping Grouping) StrongBeats {
	strong := StrongBeats{1}
	position := 1
	for _, size := range grouping {
		position += size
		if position < beatsInBar {
			strong = append(strong, position)
		}
	}
	return strong
}

// Contains reports whether beat opens a group.
func (s StrongBeats) Contains(beat int) bool {
	return slices.Contains(s, beat)
}
