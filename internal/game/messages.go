package game

import (
	"fmt"
	"strings"
)

// Banner pools. A %d verb, when present, receives the pool-specific number
// (lives left or the cleared stage).
var (
	retryBanners = []string{
		"Not giving up yet! (%d left)",
		"Spared this time (%d left)",
		"Next time you're done for! (%d)",
	}
	winBanners = []string{
		"Totally smashed!",
		"Justice served!",
		"That felt great!",
	}
	loseBanners = []string{
		"The ball had a rough day",
		"Hands too slow...",
		"Just not your day",
	}
	stageBanners = []string{
		"Stage %d wrecked!",
		"Stage %d down, keep going!",
	}
)

func pickBanner(r *Rand, pool []string, n int) string {
	if len(pool) == 0 {
		return ""
	}
	msg := pool[r.Intn(len(pool))]
	if strings.Contains(msg, "%d") {
		return fmt.Sprintf(msg, n)
	}
	return msg
}

// Title is the headline for an end-of-play state.
func (s *Session) Title() string {
	switch s.State {
	case StateNotStarted:
		if s.Photo == nil {
			return "Pick a photo to smash"
		}
		return "Ready! Time to smash"
	case StateBallLost:
		return "Missed the ball!"
	case StateStageCleared:
		return fmt.Sprintf("Stage %d clear", s.Stage)
	case StateAllCleared:
		return "Completely smashed!"
	case StateLivesExhausted:
		return "Game over"
	}
	return ""
}

// Actions lists the prompts a front-end should offer in the current state.
func (s *Session) Actions() []string {
	switch s.State {
	case StateNotStarted:
		if s.Photo == nil {
			return []string{"drop or pass a photo"}
		}
		return []string{"SPACE start"}
	case StateBallLost:
		return []string{"SPACE smash again"}
	case StateStageCleared:
		return []string{"SPACE next stage"}
	case StateAllCleared, StateLivesExhausted:
		return []string{"SPACE smash again", "R pick another photo"}
	}
	return nil
}
