package fract

import "math"

// Range limits for [Unit] values and their float64 equivalents.
const (
	MaxUnit Unit = math.MaxInt32
	MinUnit Unit = math.MinInt32
	MaxFloat64 float64 = float64(MaxUnit)/64
	MinFloat64 float64 = float64(MinUnit)/64
)

// Converts an int to a [Unit]. Values outside the representable
// range overflow silently.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest [Unit], rounding ties up.
// Doesn't account for NaNs, infinities nor overflows.
func FromFloat64Up(value float64) Unit {
	return Unit(math.Floor(value*64 + 0.5))
}

// Like [FromFloat64Up], but clamping the result to [MinUnit, MaxUnit]
// and mapping NaNs to zero. Used for cache keys built from user input.
func FromFloat64Clamped(value float64) Unit {
	if math.IsNaN(value) { return 0 }
	if value >= MaxFloat64 { return MaxUnit }
	if value <= MinFloat64 { return MinUnit }
	return FromFloat64Up(value)
}
