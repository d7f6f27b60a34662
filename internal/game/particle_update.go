package game

// Update advances every particle and flash by dt nominal frames, then drops
// those whose alpha reached zero. Positions integrate before gravity, so a
// particle's first frame moves at its spawn velocity.
func (fx *Effects) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range fx.P {
		p := &fx.P[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += p.Gravity * dt
		p.Alpha -= p.Decay * dt
	}
	for i := range fx.Flashes {
		f := &fx.Flashes[i]
		f.Alpha -= f.Decay * dt
	}
	fx.compact()
}

func (fx *Effects) compact() {
	for i := 0; i < len(fx.P); {
		if fx.P[i].Alpha > 0 {
			i++
			continue
		}
		last := len(fx.P) - 1
		fx.P[i] = fx.P[last]
		fx.P = fx.P[:last]
	}
	if fx.ovrIdx > len(fx.P) {
		fx.ovrIdx = 0
	}
	for i := 0; i < len(fx.Flashes); {
		if fx.Flashes[i].Alpha > 0 {
			i++
			continue
		}
		last := len(fx.Flashes) - 1
		fx.Flashes[i] = fx.Flashes[last]
		fx.Flashes = fx.Flashes[:last]
	}
}
