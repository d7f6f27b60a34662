package game

import "fortio.org/log"

type cell struct {
	c, r int
}

// detonate runs the chain reaction from a bomb at (c, r) that has already
// been destroyed. Bombs caught in a blast join the queue once each. It
// returns the number of bricks the blasts destroyed.
func (s *Session) detonate(c, r int) int {
	near, far := s.Cfg.Blast()
	start := cell{c, r}
	queue := []cell{start}
	visited := map[cell]bool{start: true}
	destroyed := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		pan := 0.0
		if b := s.Grid.At(cur.c, cur.r); b != nil {
			s.Effects.SpawnDetonation(b)
			cx, _ := b.Rect.Center()
			pan = s.pan(cx)
		}
		s.Events.PlayAt(CueBombExplosion, pan)
		s.Shake.Add(BombShakeIntensity, BombShakeDuration)

		for dc := -near; dc <= far; dc++ {
			for dr := -near; dr <= far; dr++ {
				if dc == 0 && dr == 0 {
					continue
				}
				b := s.Grid.At(cur.c+dc, cur.r+dr)
				if b == nil || !s.award(b) {
					continue
				}
				destroyed++
				next := cell{b.Col, b.Row}
				if b.Bomb && !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	if destroyed > 0 {
		log.Debugf("chain explosion from %d,%d: %d seeds, %d bricks", c, r, len(visited), destroyed)
	}
	return destroyed
}
