package starfield

import (
	"time"

	"go.uber.org/zap"
)

// debugLogInterval is the number of drawn frames aggregated per stats line.
const debugLogInterval = 120

// debugStats accumulates timing and draw-op metrics between log lines.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	updates    int
	frames     int
	drawOps    int
}

// debugLog emits averaged stats for the last interval and resets them.
func (s *Scene) debugLog() {
	st := s.stats
	s.stats = debugStats{}
	if !s.debug || st.frames == 0 {
		return
	}
	avgUpdate := time.Duration(0)
	if st.updates > 0 {
		avgUpdate = st.updateTime / time.Duration(st.updates)
	}
	s.logger.Debug("frame stats",
		zap.Duration("avg_update", avgUpdate),
		zap.Duration("avg_draw", st.drawTime/time.Duration(st.frames)),
		zap.Int("avg_draw_ops", st.drawOps/st.frames),
		zap.Int("stars", len(s.stars)),
		zap.Int("shooting_stars", len(s.shooting)),
		zap.Float64("dim", s.dim),
		zap.Uint64("tick", s.tick))
}
