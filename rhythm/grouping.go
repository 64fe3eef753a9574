package rhythm

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultGroupSizes are the group lengths a bar may be divided into.
var DefaultGroupSizes = []int{2, 3, 4}

// Grouping divides a bar into consecutive accent groups, e.g. 2+2+3 for a bar
// of seven beats. Order matters: it decides where the accents fall.
type Grouping []int

// NoGrouping is the degenerate grouping of a whole bar in one group.
func NoGrouping(beatsInBar int) Grouping {
	return Grouping{beatsInBar}
}

// Sum returns the number of beats covered by the grouping.
func (g Grouping) Sum() int {
	sum := 0
	for _, size := range g {
		sum += size
	}
	return sum
}

// IsNoGrouping reports whether g is the single group spanning beatsInBar.
func (g Grouping) IsNoGrouping(beatsInBar int) bool {
	return len(g) == 1 && g[0] == beatsInBar
}

func (g Grouping) String() string {
	parts := make([]string, len(g))
	for i, size := range g {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, ", ")
}

// ParseGrouping parses a comma separated list such as "2,2,3".
func ParseGrouping(s string) (Grouping, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '+' || r == ' ' })
	if len(fields) == 0 {
		return nil, invalidConfiguration("grouping %q is empty", s)
	}

	grouping := make(Grouping, 0, len(fields))
	for _, field := range fields {
		size, err := strconv.Atoi(field)
		if err != nil || size <= 0 {
			return nil, invalidConfiguration("grouping %q contains %q which is not a positive number", s, field)
		}
		grouping = append(grouping, size)
	}
	return grouping, nil
}

// EnumerateGroupings returns every ordered sequence of sizes that sums to
// target. The search is depth first and extends each partial sequence with the
// sizes in ascending order, so the result order is always the same.
func EnumerateGroupings(sizes []int, target int) []Grouping {
	ordered := normaliseSizes(sizes)
	out := []Grouping{}
	if len(ordered) == 0 || target < ordered[0] {
		return out
	}

	extendGrouping(ordered, target, Grouping{}, 0, &out)
	return out
}

func extendGrouping(sizes []int, target int, partial Grouping, sum int, out *[]Grouping) {
	for _, size := range sizes {
		next := sum + size
		switch {
		case next < target:
			extendGrouping(sizes, target, append(partial[:len(partial):len(partial)], size), next, out)
		case next == target:
			found := make(Grouping, len(partial)+1)
			copy(found, partial)
			found[len(partial)] = size
			*out = append(*out, found)
		default:
			// sizes are ascending so every later size overshoots too
			return
		}
	}
}

// GroupingChoices returns the menu offered to the user: "no grouping" first,
// followed by every enumerated grouping.
func GroupingChoices(sizes []int, beatsInBar int) []Grouping {
	return append([]Grouping{NoGrouping(beatsInBar)}, EnumerateGroupings(sizes, beatsInBar)...)
}

// ValidateGrouping checks that grouping can be used for a bar of beatsInBar.
func ValidateGrouping(sizes []int, beatsInBar int, grouping Grouping) error {
	if beatsInBar <= 0 {
		return invalidConfiguration("beats in bar must be positive, got %d", beatsInBar)
	}
	if grouping.IsNoGrouping(beatsInBar) {
		return nil
	}

	ordered := normaliseSizes(sizes)
	if len(ordered) == 0 || beatsInBar < ordered[0] {
		return invalidConfiguration("a bar of %d beats cannot be grouped", beatsInBar)
	}
	for _, size := range grouping {
		if !slices.Contains(ordered, size) {
			return invalidConfiguration("group size %d is not one of %v", size, ordered)
		}
	}
	if sum := grouping.Sum(); sum != beatsInBar {
		return invalidConfiguration("grouping %s covers %d beats, the bar has %d", grouping, sum, beatsInBar)
	}
	return nil
}

// normaliseSizes returns the positive sizes sorted ascending without duplicates.
func normaliseSizes(sizes []int) []int {
	out := make([]int, 0, len(sizes))
	for _, size := range sizes {
		if size > 0 {
			out = append(out, size)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
