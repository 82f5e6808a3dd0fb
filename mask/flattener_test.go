package mask

import "math"
import "testing"

func TestFlattenerSegments(t *testing.T) {
	var f flattener
	f.SetTolerance(0.1)
	f.SetMaxDepth(3)

	var points [][2]float64
	record := func(x, y float64) { points = append(points, [2]float64{x, y}) }

	// degenerate quad: control point on the chord
	f.FlattenQuad(record, 0, 0, 5, 0, 10, 0)
	if len(points) != 1 || points[0] != [2]float64{10, 0} {
		t.Fatalf("expected a single line to (10, 0), got %v", points)
	}

	// a very curved quad hits the max depth
	points = points[ : 0]
	f.FlattenQuad(record, 0, 0, 50, 100, 100, 0)
	if len(points) != 8 { t.Fatalf("expected %d lines, got %d", 8, len(points)) }
	if points[7] != [2]float64{100, 0} { t.Fatalf("expected last point (100, 0), got %v", points[7]) }
	for i := 1; i < len(points); i++ {
		if points[i][0] <= points[i - 1][0] { t.Fatalf("expected points in curve order, got %v", points) }
	}

	// points on a cubic must lie on the curve at t = k/2^depth
	points = points[ : 0]
	f.FlattenCube(record, 0, 0, 0, 40, 40, 40, 40, 0)
	if len(points) != 8 { t.Fatalf("expected %d lines, got %d", 8, len(points)) }
	mid := points[3]
	if math.Abs(mid[0] - 20) > 1e-9 || math.Abs(mid[1] - 30) > 1e-9 {
		t.Fatalf("expected midpoint (20, 30), got %v", mid)
	}
}

func TestFlattenerSignature(t *testing.T) {
	var f flattener
	f.SetTolerance(9) // clamped to 6.5
	f.SetMaxDepth(-4)
	if f.Signature() != 6500 { t.Fatalf("expected signature %d, got %d", 6500, f.Signature()) }
	f.SetTolerance(0.25)
	f.SetMaxDepth(300)
	expected := uint64(250) | (255 << 16)
	if f.Signature() != expected { t.Fatalf("expected signature %d, got %d", expected, f.Signature()) }
}
