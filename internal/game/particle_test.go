package game

import "testing"

func testBrick() *Brick {
	return &Brick{Alive: true, Rect: RectF{X0: 10, Y0: 70, X1: 54, Y1: 88}}
}

// TestSpawnShatter checks the debris burst shape.
func TestSpawnShatter(t *testing.T) {
	fx := NewEffects(64, 9)
	b := testBrick()
	fx.SpawnShatter(b)

	if len(fx.P) != ParticlesPerBrick {
		t.Fatalf("particles = %d, want %d", len(fx.P), ParticlesPerBrick)
	}
	if len(fx.Flashes) != 1 || fx.Flashes[0].Rect != b.Rect || fx.Flashes[0].Alpha != FlashAlpha {
		t.Fatalf("flash = %+v", fx.Flashes)
	}
	for i, p := range fx.P {
		if p.X < b.Rect.X0 || p.X > b.Rect.X1 || p.Y < b.Rect.Y0 || p.Y > b.Rect.Y1 {
			t.Errorf("particle %d spawned outside brick at (%v,%v)", i, p.X, p.Y)
		}
		if p.Size < ParticleSizeMin || p.Size > ParticleSizeMin+ParticleSizeSpread {
			t.Errorf("particle %d size %v", i, p.Size)
		}
		if p.Decay < 0.02 || p.Decay > 0.06 {
			t.Errorf("particle %d decay %v", i, p.Decay)
		}
		if p.Alpha != 1 || p.Gravity != ParticleGravity {
			t.Errorf("particle %d alpha %v gravity %v", i, p.Alpha, p.Gravity)
		}
	}
}

// TestEffectsUpdate verifies integration order and compaction by alpha.
func TestEffectsUpdate(t *testing.T) {
	fx := NewEffects(8, 1)
	fx.Add(Particle{X: 0, Y: 0, VX: 1, VY: -2, Alpha: 1, Decay: 0.5, Gravity: 0.15})
	fx.Add(Particle{Alpha: 0.1, Decay: 0.5})
	fx.AddFlash(FlashEffect{Alpha: 0.6, Decay: 0.12})

	fx.Update(1)

	if len(fx.P) != 1 {
		t.Fatalf("particles = %d, want 1 after compaction", len(fx.P))
	}
	p := fx.P[0]
	if p.X != 1 || p.Y != -2 || !near(p.VY, -1.85, 1e-12) || p.Alpha != 0.5 {
		t.Errorf("particle = %+v", p)
	}
	if len(fx.Flashes) != 1 || !near(fx.Flashes[0].Alpha, 0.48, 1e-12) {
		t.Errorf("flash = %+v", fx.Flashes)
	}

	for range 10 {
		fx.Update(1)
	}
	if fx.Len() != 0 {
		t.Errorf("effects left: %d", fx.Len())
	}
}

// TestEffectsOverwrite verifies a full pool recycles the oldest slots.
func TestEffectsOverwrite(t *testing.T) {
	fx := NewEffects(4, 1)
	for i := range 6 {
		fx.Add(Particle{X: float64(i), Alpha: 1})
	}
	if len(fx.P) != 4 {
		t.Fatalf("len = %d, want 4", len(fx.P))
	}
	if fx.P[0].X != 4 || fx.P[1].X != 5 || fx.P[2].X != 2 {
		t.Errorf("overwrite order wrong: %+v", fx.P)
	}
}

// TestParticleRenderData checks sparks go to the additive buffer.
func TestParticleRenderData(t *testing.T) {
	fx := NewEffects(64, 3)
	b := testBrick()
	fx.SpawnShatter(b)
	fx.SpawnDetonation(b)

	glow, norm := fx.ParticleRenderData(nil, nil)
	if len(norm) != ParticlesPerBrick*8 {
		t.Errorf("normal floats = %d, want %d", len(norm), ParticlesPerBrick*8)
	}
	if len(glow) != ParticlesPerBomb*8 {
		t.Errorf("glow floats = %d, want %d", len(glow), ParticlesPerBomb*8)
	}
}

// TestShakeDecays verifies shake fades out and resets its offset.
func TestShakeDecays(t *testing.T) {
	var sh Shake
	sh.Add(6, 0.35)
	sh.Add(2, 0.1)
	if sh.Intensity != 6 || sh.Timer != 0.35 {
		t.Fatalf("shake = %+v, want the stronger parameters kept", sh)
	}
	for i := range 60 {
		sh.Update(1.0/60, uint64(i))
		if sh.X < -6 || sh.X > 6 || sh.Y < -6 || sh.Y > 6 {
			t.Fatalf("offset (%v,%v) beyond intensity", sh.X, sh.Y)
		}
	}
	sh.Update(1.0/60, 99)
	if sh.Active() || sh.X != 0 || sh.Y != 0 {
		t.Errorf("shake still active: %+v", sh)
	}
}
