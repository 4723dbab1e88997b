package starfield

import (
	"strings"
	"testing"
)

func TestOverlayText(t *testing.T) {
	s := newTestScene(t, testConfig(), 200, 100)
	s.SetScroll(1e6, 100)
	got := overlayText(s, 59.94, 60)
	for _, want := range []string{"FPS: 59.9", "TPS: 60.0", "Stars: 3", "Shooting: 0", "Dim: 0.35"} {
		if !strings.Contains(got, want) {
			t.Errorf("overlay %q missing %q", got, want)
		}
	}
}
