package font

import "testing"

import "golang.org/x/image/font/gofont/goregular"

func TestFaceMetrics(t *testing.T) {
	cache := NewCache()
	id, err := cache.LoadBytes("goregular", goregular.TTF, "", Regular)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	face, _ := cache.Face(id)

	metrics := face.Metrics()
	if metrics.Ascent <= 0 || metrics.Descent <= 0 {
		t.Fatalf("expected positive ascent and descent, got %+v", metrics)
	}
	if metrics.Ascent <= metrics.Descent {
		t.Fatalf("expected ascent > descent, got %+v", metrics)
	}
	if metrics.LineHeight() < float64(face.UnitsPerEm) {
		t.Fatalf("expected line height >= %d, got %f", face.UnitsPerEm, metrics.LineHeight())
	}
}

func TestFallbackMetrics(t *testing.T) {
	metrics := fallbackMetrics(1000)
	if metrics.Ascent != 800 || metrics.Descent != 200 || metrics.LineGap != 100 {
		t.Fatalf("unexpected fallback metrics %+v", metrics)
	}
	if metrics.LineHeight() != 1100 { t.Fatalf("expected %d, got %f", 1100, metrics.LineHeight()) }
}
