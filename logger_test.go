package showtxt

import "image"
import "context"
import "bytes"
import "strings"
import "testing"
import "log/slog"

import "github.com/tinne26/showtxt/surface"

func TestLogger(t *testing.T) {
	var buffer bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{ Level: slog.LevelWarn })))
	defer SetLogger(nil)

	renderer, regular := newTestRenderer(t)
	recorder := surface.NewRecorder(image.Rect(0, 0, 100, 100), 72, surface.Vector)
	_, err := renderer.DrawText(recorder, &surface.TextRequest{ Text: "\uE000", Face: regular })
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	output := buffer.String()
	if !strings.Contains(output, "missing glyph replaced") || !strings.Contains(output, "U+E000") {
		t.Fatalf("unexpected log output %q", output)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) { t.Fatal("expected silent default logger") }
}
