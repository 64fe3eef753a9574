package scale

import "math"

// Clamp restricts t to the interval between min and max, in either order.
func Clamp(t, min, max float64) float64 {
	min, max = math.Min(min, max), math.Max(min, max)
	return math.Max(math.Min(t, max), min)
}

// UnitClamp clamps t to [0,1].
func UnitClamp(t float64) float64 {
	return Clamp(t, 0, 1)
}

// ToInt16 converts a float sample in [-1,1] to signed 16-bit PCM. Values
// outside the range are clipped.
func ToInt16(v float32) int16 {
	return int16(Clamp(float64(v), -1, 1) * math.MaxInt16)
}
