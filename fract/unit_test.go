package fract

import "testing"
import "math"

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in  Unit
		out float64
	}{
		{0, 0}, {64, 1}, {32, 0.5}, {-32, -0.5},
		{1, 1.0/64.0}, {-2, -2.0/64.0}, {63, 63.0/64.0}, {96, 1.5},
		{MinUnit, MinFloat64}, {MaxUnit, MaxFloat64},
	}

	for i, test := range tests {
		out := test.in.ToFloat64()
		if out != test.out {
			t.Fatalf("test #%d: in %d expected out %f, but got %f", i, test.in, test.out, out)
		}
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		in    Unit
		floor int
	}{
		{0, 0}, {1, 0}, {32, 0}, {63, 0}, {64, 1}, {-1, -1}, {-64, -1}, {-65, -2},
	}

	for i, test := range tests {
		if test.in.ToIntFloor() != test.floor {
			t.Fatalf("test #%d: in %d expected %d, got %d", i, test.in, test.floor, test.in.ToIntFloor())
		}
		if test.in.Floor() != FromInt(test.floor) {
			t.Fatalf("test #%d: expected Floor() %d, got %d", i, FromInt(test.floor), test.in.Floor())
		}
	}
}

func TestQuantizeUp(t *testing.T) {
	tests := []struct {
		in   Unit
		step Unit
		out  Unit
	}{
		{0, 1, 0}, {5, 1, 5}, {5, 16, 0}, {8, 16, 16}, {24, 16, 32},
		{63, 16, 64}, {31, 64, 0}, {32, 64, 64}, {100, 64, 128},
		{-1, 16, 0}, {-40, 5, -39}, {-42, 5, -44},
	}

	for i, test := range tests {
		out := test.in.QuantizeUp(test.step)
		if out != test.out {
			t.Fatalf("test #%d: %d.QuantizeUp(%d) expected %d, got %d", i, test.in, test.step, test.out, out)
		}
	}
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		in  float64
		out Unit
	}{
		{0, 0}, {1, 64}, {-1, -64}, {0.5, 32}, {3.14, 201}, {-3.14, -201},
		{8.3359375, 534}, {-8.3359375, -533},
	}

	for i, test := range tests {
		out := FromFloat64Up(test.in)
		if out != test.out {
			t.Fatalf("test #%d: FromFloat64Up(%f) expected %d, got %d", i, test.in, test.out, out)
		}
	}

	if FromFloat64Clamped(math.NaN()) != 0 {
		t.Fatalf("expected NaN to clamp to 0")
	}
	if FromFloat64Clamped(math.Inf(1)) != MaxUnit {
		t.Fatalf("expected +Inf to clamp to MaxUnit")
	}
	if FromFloat64Clamped(-1e12) != MinUnit {
		t.Fatalf("expected -1e12 to clamp to MinUnit")
	}
}
