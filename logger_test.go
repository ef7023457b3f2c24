package nvg

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLog routes nvg logging into a buffer at debug level for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilence(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	tests := []struct {
		name  string
		setup func()
	}{
		{"default", func() {}},
		{"reset with nil", func() {
			SetLogger(slog.Default())
			SetLogger(nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			l := Logger()
			if l == nil {
				t.Fatal("Logger() = nil")
			}
			for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
				if l.Enabled(context.Background(), level) {
					t.Errorf("Enabled(%v) = true, want false", level)
				}
			}
		})
	}
}

func TestFrameLogsStatistics(t *testing.T) {
	buf := captureLog(t)

	c := New(newFakeRenderer())
	if err := c.BeginFrame(nil); err != nil {
		t.Fatalf("BeginFrame() = %v", err)
	}
	c.Rect(RectXYWH(0, 0, 10, 10))
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	if err := c.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}
	if err := c.EndFrame(); err != nil {
		t.Fatalf("EndFrame() = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"nvg: begin frame", "width=100", "ratio=1",
		"nvg: end frame", "drawCalls=3", "fillTriangles=10",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestImageCreationLogged(t *testing.T) {
	var data bytes.Buffer
	if err := png.Encode(&data, image.NewNRGBA(image.Rect(0, 0, 2, 3))); err != nil {
		t.Fatalf("png.Encode() = %v", err)
	}
	buf := captureLog(t)

	c, _ := newTestCanvas(t)
	if _, err := c.CreateImage(0, data.Bytes()); err != nil {
		t.Fatalf("CreateImage() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"nvg: image created", "format=png", "width=2", "height=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("nvg: begin frame")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledFrameLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("nvg: end frame", "drawCalls", 2, "fillTriangles", 10)
	}
}
