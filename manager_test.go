package showtxt

import "image"
import "errors"
import "testing"
import "image/color"

import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/showtxt/surface"

func TestManagerBeginEnd(t *testing.T) {
	renderer, regular := newTestRenderer(t)
	renderer.SetDefaultFace(regular)
	manager := NewManager(renderer)
	recorder := surface.NewRecorder(image.Rect(0, 0, 200, 100), 72, surface.Vector)
	native := recorder.TextDrawer()

	err := manager.Begin(recorder)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if !manager.IsActive(recorder) { t.Fatal("expected interception to be active") }
	if recorder.TextDrawer() != surface.TextDrawer(renderer) { t.Fatal("expected renderer in the text slot") }
	err = manager.Begin(recorder)
	if !errors.Is(err, ErrAlreadyActive) { t.Fatalf("expected ErrAlreadyActive, got %v", err) }

	_, err = recorder.DrawText(&surface.TextRequest{ Text: "ok", X: 10, Y: 50 })
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	_ = recorder.FillRect(image.Rect(0, 0, 5, 5), color.Black)

	manager.End(recorder)
	manager.End(recorder) // no-op
	if manager.IsActive(recorder) { t.Fatal("expected interception to be inactive") }
	if recorder.TextDrawer() != native { t.Fatal("expected native drawer to be restored") }
	_, err = recorder.DrawText(&surface.TextRequest{ Text: "ok", X: 10, Y: 50 })
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	expected := []surface.OpKind{
		surface.OpFillPath, surface.OpFillPath, surface.OpFillRect, surface.OpNativeText,
	}
	if diff := cmp.Diff(expected, opKinds(recorder.Ops())); diff != "" {
		t.Fatalf("unexpected ops (-want +got):\n%s", diff)
	}
}

func TestManagerErrors(t *testing.T) {
	renderer, _ := newTestRenderer(t)
	manager := NewManager(renderer)

	if err := manager.Begin(nil); !errors.Is(err, ErrNoSurfaceOpen) {
		t.Fatalf("expected ErrNoSurfaceOpen, got %v", err)
	}
	if err := manager.BeginCurrent(); !errors.Is(err, ErrNoSurfaceOpen) {
		t.Fatalf("expected ErrNoSurfaceOpen, got %v", err)
	}
	manager.End(nil)
	manager.EndCurrent()

	recorder := surface.NewRecorder(image.Rect(0, 0, 10, 10), 0, surface.Raster)
	_ = recorder.Close()
	if err := manager.Begin(recorder); !errors.Is(err, ErrNoSurfaceOpen) {
		t.Fatalf("expected ErrNoSurfaceOpen, got %v", err)
	}
	if err := manager.Open(recorder); !errors.Is(err, ErrNoSurfaceOpen) {
		t.Fatalf("expected ErrNoSurfaceOpen, got %v", err)
	}
}

func TestManagerAutoMode(t *testing.T) {
	renderer, _ := newTestRenderer(t)
	manager := NewManager(renderer)
	if manager.AutoMode() { t.Fatal("expected auto mode to be disabled by default") }
	manager.SetAutoMode(true)

	first  := surface.NewRecorder(image.Rect(0, 0, 10, 10), 0, surface.Vector)
	second := surface.NewRecorder(image.Rect(0, 0, 10, 10), 0, surface.Raster)
	for _, target := range []*surface.Recorder{ first, second } {
		err := manager.Open(target)
		if err != nil { t.Fatalf("unexpected error: %s", err) }
		if !manager.IsActive(target) { t.Fatal("expected auto mode interception") }
	}
	if manager.Current() != surface.Surface(second) { t.Fatal("expected last opened surface to be current") }

	manager.EndCurrent()
	if manager.IsActive(second) { t.Fatal("expected interception to end on the current surface") }
	if err := manager.BeginCurrent(); err != nil { t.Fatalf("unexpected error: %s", err) }

	err := manager.Close(second)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if !second.Closed() { t.Fatal("expected surface to be closed") }
	if manager.IsActive(second) { t.Fatal("expected interception to end on close") }
	if manager.Current() != nil { t.Fatal("expected no current surface") }
	if !manager.IsActive(first) { t.Fatal("expected first surface to remain intercepted") }

	err = manager.Close(second)
	if !errors.Is(err, surface.ErrClosed) { t.Fatalf("expected ErrClosed, got %v", err) }
}
