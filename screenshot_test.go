package starfield

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-scroll", "after-scroll"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if len(s.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(s.screenshotQueue))
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" || s.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", s.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := NewScene(DefaultConfig())
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestFlushScreenshotsWritesFiles(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.Screenshot("first")
	s.Screenshot("second one")

	s.FlushScreenshots(image.NewRGBA(image.Rect(0, 0, 4, 4)))

	for _, label := range []string{"first", "second_one"} {
		matches, err := filepath.Glob(filepath.Join(s.ScreenshotDir, "*_"+label+".png"))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 1 {
			t.Errorf("files for %q = %v, want exactly one", label, matches)
		}
	}
	if len(s.screenshotQueue) != 0 {
		t.Errorf("queue = %v, want empty after flush", s.screenshotQueue)
	}
}

func TestFlushScreenshotsEmptyQueue(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.ScreenshotDir = filepath.Join(t.TempDir(), "never")
	s.FlushScreenshots(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if matches, _ := filepath.Glob(filepath.Join(s.ScreenshotDir, "*")); len(matches) != 0 {
		t.Errorf("unexpected files %v", matches)
	}
}

func TestUnpremultiply(t *testing.T) {
	src := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	dst := make([]byte, len(src))
	unpremultiply(dst, src)

	want := []color.NRGBA{{255, 127, 0, 128}, {10, 20, 30, 255}, {0, 0, 0, 0}}
	for i, w := range want {
		got := color.NRGBA{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != w {
			t.Errorf("pixel %d = %v, want %v", i, got, w)
		}
	}
}
