package audio

import (
	"encoding/binary"
	"math"

	"photobreak/internal/game"
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := range 2 {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// panned returns a copy of interleaved stereo float32 samples with the left
// channel attenuated for pan > 0 and the right one for pan < 0.
func panned(buf []byte, pan float64) []byte {
	pan = clampF(pan, -1, 1)
	gain := [2]float64{min(1, 1-pan), min(1, 1+pan)}
	out := make([]byte, len(buf))
	for o := 0; o+4 <= len(buf); o += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(buf[o:]))
		v *= float32(gain[(o/4)%2])
		binary.LittleEndian.PutUint32(out[o:], math.Float32bits(v))
	}
	return out
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// expRamp follows an exponential gain ramp from g0 down to 0.001 over dur
// seconds, and stays silent after it.
func expRamp(t, g0, dur float64) float64 {
	if t >= dur {
		return 0
	}
	return g0 * math.Pow(0.001/g0, t/dur)
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func frames(seconds float64) int { return int(seconds * SampleRate) }

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Cues ---------------------------------------------------------------

func generate(c game.Cue, seed uint64) []byte {
	switch c {
	case game.CueShatter:
		return genShatter(seed)
	case game.CueWallBounce:
		return genWallBounce()
	case game.CueLoseLife:
		return genLoseLife()
	case game.CueWin:
		return genWin()
	case game.CueBombExplosion:
		return genBombExplosion(seed)
	case game.CueStageClear:
		return genStageClear()
	case game.CueMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genShatter: bandpassed noise burst around 1.2 kHz with a quadratic fade,
// topped with a short glassy tick.
func genShatter(seed uint64) []byte {
	n := frames(0.15)
	mix := make([]float64, n)
	s := seed*0x9E3779B97F4A7C15 | 1
	lpHi, lpLo := 0.0, 0.0
	tick := 2600 + 500*float64(seed%4)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&s) * (1 - p) * (1 - p)
		lpHi = lpHi*0.72 + raw*0.28
		lpLo = lpLo*0.93 + raw*0.07
		body := (lpHi - lpLo) * 2.2
		glass := math.Sin(2*math.Pi*tick*t) * math.Exp(-p*26) * 0.18
		mix[i] = (body + glass) * expRamp(t, 0.8, 0.15)
	}
	return render(mix)
}

// genWallBounce: short square tick sweeping 440 to 200 Hz.
func genWallBounce() []byte {
	n := frames(0.06)
	mix := make([]float64, n)
	phase := 0.0
	for i := range mix {
		t := float64(i) / SampleRate
		freq := 200.0
		if t < 0.05 {
			freq = 440 * math.Pow(200.0/440.0, t/0.05)
		}
		phase += freq / SampleRate
		sq := 1.0
		if math.Mod(phase, 1) >= 0.5 {
			sq = -1
		}
		mix[i] = sq * expRamp(t, 0.3, 0.06) * 0.8
	}
	return render(mix)
}

// genLoseLife: three falling sawtooth steps.
func genLoseLife() []byte {
	notes := []float64{300, 220, 160}
	step := 0.12
	mix := make([]float64, frames(step*float64(len(notes))+0.02))
	for k, freq := range notes {
		start := frames(step * float64(k))
		for j := range frames(step) {
			if start+j >= len(mix) {
				break
			}
			t := float64(j) / SampleRate
			saw := 2*math.Mod(freq*t, 1) - 1
			mix[start+j] += saw * expRamp(t, 0.4, 0.1) * 0.7
		}
	}
	return render(mix)
}

// genWin: rising C major arpeggio of bells, each note ringing over the next.
func genWin() []byte {
	notes := []float64{523, 659, 784, 1047}
	step := 0.1
	mix := make([]float64, frames(step*float64(len(notes))+0.35))
	for k, freq := range notes {
		start := frames(step * float64(k))
		for j := range frames(0.35) {
			if start+j >= len(mix) {
				break
			}
			t := float64(j) / SampleRate
			env := expRamp(t, 0.35, 0.3)
			s := math.Sin(2*math.Pi*freq*t) * env
			s += fm(t, freq, 2.0, 1.5*env) * env * 0.25
			mix[start+j] += s * 0.7
		}
	}
	return render(mix)
}

// genBombExplosion: phase-correct sub boom + crack + bandpassed body + rumble.
// Kept short so overlapping detonations don't stack into clipping.
func genBombExplosion(seed uint64) []byte {
	const norm = 0.45
	dur := 0.26 + 0.64*norm
	n := frames(dur)
	mix := make([]float64, n)
	s := seed*0xC2B2AE3D27D4EB4F | 1
	lp1, lp2 := 0.0, 0.0 // two lowpasses for bandpass body
	rumLP := 0.0
	subPhase := 0.0
	for i := range mix {
		p := float64(i) / float64(n)

		subStart := 155.0 - 65.0*norm
		subEnd := 34.0 - 18.0*norm
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.6+1.5*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(7.0-3.8*norm)) * (0.44 + 0.34*norm)

		crack := 0.0
		crackWin := 0.038 - 0.020*norm
		if p < crackWin {
			crack = lcg(&s) * (1 - p/crackWin) * (0.88 - 0.28*norm)
		}

		raw := lcg(&s)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(6.2-2.2*norm)) * (0.30 + 0.17*norm)

		rumLP = rumLP*0.95 + lcg(&s)*0.05
		rumble := rumLP * math.Exp(-p*(3.0-1.5*norm)) * (0.06 + 0.20*norm)

		mix[i] = (sub + crack + body + rumble) * 0.86
	}
	return render(mix)
}

// genStageClear: ascending FM bell staircase.
func genStageClear() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := frames(0.09)
	total := len(notes)*noteStep + frames(0.25)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return render(mix)
}
