package game

// Shake is the screen-shake state. Front-ends offset the whole playfield by
// (X, Y) when drawing.
type Shake struct {
	X, Y      float64 // current offset in canvas pixels
	Timer     float64 // remaining shake time, seconds
	Intensity float64 // max offset magnitude
}

// Add triggers shake with given intensity and duration. Overlapping shakes
// keep the stronger of each parameter.
func (s *Shake) Add(intensity, duration float64) {
	if intensity > s.Intensity {
		s.Intensity = intensity
	}
	if duration > s.Timer {
		s.Timer = duration
	}
}

// Update decays shake and computes random offsets.
func (s *Shake) Update(dt float64, seed uint64) {
	if s.Timer <= 0 {
		s.Reset()
		return
	}
	s.Timer -= dt
	if s.Timer < 0 {
		s.Timer = 0
	}
	// Decaying intensity.
	t := s.Timer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := s.Intensity * (t / (t + 0.08))
	s.X = rr.RangeF(-mag, mag)
	s.Y = rr.RangeF(-mag, mag)
}

func (s *Shake) Reset() {
	*s = Shake{}
}

func (s *Shake) Active() bool {
	return s.Timer > 0
}
