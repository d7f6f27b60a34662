package game

import "math"

// SpawnShatter emits the debris burst and flash for one destroyed brick.
// Debris starts anywhere inside the brick and is kicked slightly upward.
func (fx *Effects) SpawnShatter(b *Brick) {
	fx.spawns++
	r := NewRand(splitmix64(fx.seed ^ fx.spawns*0x9E3779B97F4A7C15))

	for range ParticlesPerBrick {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(2, 7)
		fx.Add(Particle{
			X:       b.Rect.X0 + r.Float64()*b.Rect.W(),
			Y:       b.Rect.Y0 + r.Float64()*b.Rect.H(),
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang)*spd - 2,
			Size:    ParticleSizeMin + r.Float64()*ParticleSizeSpread,
			Col:     DebrisColors[r.Intn(len(DebrisColors))],
			Alpha:   1,
			Decay:   r.RangeF(0.02, 0.06),
			Gravity: ParticleGravity,
			Kind:    ParticleDebris,
		})
	}
	fx.AddFlash(FlashEffect{Rect: b.Rect, Alpha: FlashAlpha, Decay: FlashDecay})
}

// SpawnDetonation emits a ring of sparks around a detonating bomb.
func (fx *Effects) SpawnDetonation(b *Brick) {
	fx.spawns++
	r := NewRand(splitmix64(fx.seed ^ 0xB0B0 ^ fx.spawns*0xC2B2AE3D27D4EB4F))
	cx, cy := b.Rect.Center()

	for i := range ParticlesPerBomb {
		ang := float64(i)/ParticlesPerBomb*math.Pi*2 + r.RangeF(-0.15, 0.15)
		spd := r.RangeF(4, 9)
		col := lerpRGB(Palette.Bomb, Palette.BombCore, r.Float64())
		fx.Add(Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Size:    r.RangeF(2, 4),
			Col:     col,
			Alpha:   1,
			Decay:   r.RangeF(0.03, 0.05),
			Gravity: ParticleGravity * 0.5,
			Kind:    ParticleSpark,
		})
	}
}
