// Package audio turns game cues into procedurally synthesized sound.
package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"fortio.org/log"
	"github.com/hajimehoshi/oto/v2"

	"photobreak/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Variants kept per cue. Hot cues rotate through them so rapid hits don't
// sound identical.
const cueVariants = 4

// maxExplosions limits simultaneous explosion sounds to avoid speaker clipping.
const maxExplosions = 2

// panWidth keeps panned cues partly audible on the far side.
const panWidth = 0.7

// Player plays cues without ever blocking the caller. A Player without an
// output device is valid and silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	muted  atomic.Bool

	mu    sync.Mutex
	cache map[game.Cue][][]byte

	explosions atomic.Int32
	variant    atomic.Uint64

	// out starts playback and calls done when it finishes.
	out func(samples []byte, done func())
}

// New opens the audio device. Synthesis of the cue buffers happens lazily on
// first use.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	p := newPlayer(volume)
	p.ctx = ctx
	p.ready = ready
	p.out = p.playOto
	return p, nil
}

// Silent returns a player that discards every cue.
func Silent() *Player {
	return newPlayer(0)
}

func newPlayer(volume float64) *Player {
	return &Player{
		volume: clampF(volume, 0, 1),
		cache:  make(map[game.Cue][][]byte),
	}
}

// Attach plays every cue emitted on bus at its stereo position.
func (p *Player) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventCue, func(e game.Event) { p.PlayAt(e.Cue, e.Pan) })
}

func (p *Player) SetMuted(m bool) { p.muted.Store(m) }
func (p *Player) Muted() bool     { return p.muted.Load() }

// Play starts cue c in the background and returns immediately.
func (p *Player) Play(c game.Cue) {
	p.PlayAt(c, 0)
}

// PlayAt is Play with the cue placed at pan, -1 left to 1 right.
func (p *Player) PlayAt(c game.Cue, pan float64) {
	if p == nil || p.out == nil || p.muted.Load() {
		return
	}
	if p.ready != nil {
		select {
		case <-p.ready:
		default:
			return
		}
	}
	done := func() {}
	if c == game.CueBombExplosion {
		if !p.acquireExplosion() {
			return
		}
		done = func() { p.explosions.Add(-1) }
	}
	samples := p.samples(c)
	if len(samples) == 0 {
		done()
		return
	}
	if pan != 0 {
		samples = panned(samples, pan*panWidth)
	}
	p.out(samples, done)
}

// acquireExplosion takes one of the explosion slots if any is free.
func (p *Player) acquireExplosion() bool {
	for {
		n := p.explosions.Load()
		if n >= maxExplosions {
			return false
		}
		if p.explosions.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// samples returns a cached buffer for c, synthesizing it on first use.
func (p *Player) samples(c game.Cue) []byte {
	v := int(p.variant.Add(1) % cueVariants)
	if !variesPerPlay(c) {
		v = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	bufs := p.cache[c]
	if bufs == nil {
		bufs = make([][]byte, cueVariants)
		p.cache[c] = bufs
	}
	if bufs[v] == nil {
		start := time.Now()
		bufs[v] = generate(c, uint64(v)+1)
		log.Debugf("synthesized %s variant %d: %d bytes in %v", c, v, len(bufs[v]), time.Since(start))
	}
	return bufs[v]
}

func variesPerPlay(c game.Cue) bool {
	return c == game.CueShatter || c == game.CueBombExplosion
}

func (p *Player) playOto(samples []byte, done func()) {
	go func() {
		defer done()
		reader := &soundReader{data: samples}
		player := p.ctx.NewPlayer(reader)
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.LogVf("audio player close: %v", err)
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
