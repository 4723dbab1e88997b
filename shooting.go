package starfield

// maybeSpawnShootingStar spawns one shooting star with the configured per-tick
// chance while fewer than MaxActive are alive.
func (s *Scene) maybeSpawnShootingStar() {
	cfg := &s.cfg.Shooting
	if len(s.shooting) >= cfg.MaxActive {
		return
	}
	if s.rng.Float64() >= cfg.SpawnChance {
		return
	}
	s.shooting = append(s.shooting, s.factory.NewShootingStar(s.layout.Width, s.layout.Height))
}

// stepShootingStars advances every shooting star by one tick and removes the
// ones whose life ran out. Survivors keep their relative order.
func (s *Scene) stepShootingStars() {
	alive := s.shooting[:0]
	for i := range s.shooting {
		ss := &s.shooting[i]
		ss.X += ss.VX
		ss.Y += ss.VY
		ss.Life -= ss.Decay
		ss.Trail.Push(TrailSample{Pos: Vec2{ss.X, ss.Y}, Life: max(ss.Life, 0)})
		if !ss.IsAlive() {
			continue
		}
		alive = append(alive, *ss)
	}
	// Drop references held by the tail so dead trails can be collected.
	for i := len(alive); i < len(s.shooting); i++ {
		s.shooting[i] = ShootingStar{}
	}
	s.shooting = alive
}
