package fract

// A 26.6 fixed point value: the lowest 6 bits store 64ths, so a
// size of 12.5 points is stored as 800. Same layout as
// [golang.org/x/image/math/fixed.Int26_6].
//
// Units are used wherever float64 values need to be compared or
// hashed exactly, like sizes, rotations and pen offsets in cache keys.
type Unit int32

// Returns the unit as a float64. The conversion is exact.
func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

// Returns the integer part of the unit, rounding towards
// negative infinity.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

// Returns the unit with its fractional bits cleared
// (rounded towards negative infinity).
func (self Unit) Floor() Unit {
	return self & ^0x3F
}

// Snaps the fractional part of the unit to a multiple of the given
// step (between 1 and 64), rounding ties up. A step of 64 rounds to
// the closest whole value.
func (self Unit) QuantizeUp(step Unit) Unit {
	if step < 1 || step > 64 { panic("quantization step out of [1, 64] range") }

	frac := self - self.Floor()
	excess := frac % step
	if excess == 0 { return self }
	snapped := frac - excess
	if excess*2 >= step { snapped = min(snapped + step, 64) }
	return self.Floor() + snapped
}
