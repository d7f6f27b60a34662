package game

import "math"

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleSpark               // additive, spawned by bomb detonations
)

// Particle velocities are canvas pixels per nominal frame; Decay is alpha lost
// per nominal frame.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Col     RGB
	Alpha   float64
	Decay   float64
	Gravity float64
	Kind    ParticleKind
}

// FlashEffect is a fading overlay over a destroyed brick's rect.
type FlashEffect struct {
	Rect  RectF
	Alpha float64
	Decay float64
}

// Effects is the fixed-capacity pool of particles and flashes. Both slices
// are flat; expired entries are dropped in a compaction pass after update.
type Effects struct {
	Max     int
	P       []Particle
	Flashes []FlashEffect
	seed    uint64
	spawns  uint64
	ovrIdx  int // circular overwrite index when full
}

func NewEffects(maxParticles int, seed uint64) *Effects {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &Effects{
		Max:     maxParticles,
		P:       make([]Particle, 0, maxParticles),
		Flashes: make([]FlashEffect, 0, 64),
		seed:    seed,
	}
}

func (fx *Effects) Clear() {
	fx.P = fx.P[:0]
	fx.Flashes = fx.Flashes[:0]
	fx.ovrIdx = 0
}

func (fx *Effects) Len() int {
	return len(fx.P) + len(fx.Flashes)
}

func (fx *Effects) Add(p Particle) {
	if len(fx.P) < fx.Max {
		fx.P = append(fx.P, p)
		return
	}
	// Circular overwrite.
	if fx.ovrIdx >= fx.Max {
		fx.ovrIdx = 0
	}
	fx.P[fx.ovrIdx] = p
	fx.ovrIdx++
}

func (fx *Effects) AddFlash(f FlashEffect) {
	fx.Flashes = append(fx.Flashes, f)
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (fx *Effects) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range fx.P {
		if p.Alpha <= 0 {
			continue
		}
		a := float32(clampF(p.Alpha, 0, 1))
		rc := float32(p.Col.R) / 255.0
		gc := float32(p.Col.G) / 255.0
		bc := float32(p.Col.B) / 255.0

		sx := float32(math.Round(p.X))
		sy := float32(math.Round(p.Y))
		sz := float32(p.Size)

		if p.Kind == ParticleSpark {
			// Additive: pre-multiply color by alpha.
			glowBuf = append(glowBuf, sx, sy, sz*1.5, rc*a, gc*a, bc*a, a, 0)
			continue
		}
		normBuf = append(normBuf, sx, sy, sz, rc, gc, bc, a, 0)
	}
	return glowBuf, normBuf
}
