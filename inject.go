package starfield

// syntheticEventKind selects which scene input a synthetic event drives.
type syntheticEventKind uint8

const (
	eventPointerMove syntheticEventKind = iota
	eventPointerLeave
	eventScroll
	eventResize
)

// syntheticEvent is a single queued input event. Surface coordinates are
// used, exactly as the live input path would report them.
type syntheticEvent struct {
	kind syntheticEventKind
	x, y float64
	w, h int
}

// InjectPointer queues a pointer move to (x, y). The event is applied on the
// next Update, before physics runs.
func (s *Scene) InjectPointer(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventPointerMove, x: x, y: y})
}

// InjectPointerLeave queues the pointer leaving the surface.
func (s *Scene) InjectPointerLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventPointerLeave})
}

// InjectScroll queues a scroll offset measured against viewportHeight.
func (s *Scene) InjectScroll(offset, viewportHeight float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventScroll, x: offset, y: viewportHeight})
}

// InjectResize queues a surface resize.
func (s *Scene) InjectResize(w, h int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventResize, w: w, h: h})
}

// InjectSweep queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spread over frames events. Minimum frames is 2.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectPointer(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// processInjected pops one event from the inject queue and applies it.
// The game loop skips live input while Injecting reports true.
func (s *Scene) processInjected() {
	if len(s.injectQueue) == 0 {
		return
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case eventPointerMove:
		s.SetPointer(evt.x, evt.y)
	case eventPointerLeave:
		s.ClearPointer()
	case eventScroll:
		s.SetScroll(evt.x, evt.y)
	case eventResize:
		s.Resize(evt.w, evt.h)
	}
}

// Injecting reports whether synthetic input is queued or a test script is
// still running.
func (s *Scene) Injecting() bool {
	return len(s.injectQueue) > 0 || (s.testRunner != nil && !s.testRunner.Done())
}
