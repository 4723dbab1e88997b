package starfield

// DimFactor maps a scroll offset to the global brightness multiplier.
// It falls linearly from 1 at offset 0 to cfg.Floor at cfg.Span viewport
// heights and stays at the floor beyond. A non-positive viewport height
// yields 1.
func DimFactor(offset, viewportHeight float64, cfg DimConfig) float64 {
	if viewportHeight <= 0 || cfg.Span <= 0 {
		return 1
	}
	progress := clamp01(offset / (viewportHeight * cfg.Span))
	return clamp(1-progress*(1-cfg.Floor), cfg.Floor, 1)
}
