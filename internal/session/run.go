package session

import (
	"context"
	"time"
)

// RunBatch plays games back to back without pacing, countdowns, or
// postgame holds. It returns nil once the configured game count is
// reached, or the context error on cancellation.
func (s *Session) RunBatch(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.tick(ctx) {
			continue
		}
		if s.finishedAll() {
			return nil
		}
		s.nextGame()
	}
}

// RunPaced plays games on the arena's tick delay. Physics pauses while
// a countdown is showing and while a finished game is held on screen
// for PostgameDelay; the tick timer keeps running through both so
// pacing stays uniform. Returns nil when the session completes, or the
// context error on cancellation.
func (s *Session) RunPaced(ctx context.Context) error {
	sim := time.NewTimer(s.arena.Delay())
	defer sim.Stop()

	var countdown, restart *time.Timer
	defer func() {
		if countdown != nil {
			countdown.Stop()
		}
		if restart != nil {
			restart.Stop()
		}
	}()

	remaining := 0
	if s.countdown > 0 {
		remaining = s.countdown
		s.events.CountdownTick(remaining)
		countdown = time.NewTimer(time.Second)
	}

	for {
		// A nil timer contributes a nil channel, which never fires.
		var countdownC, restartC <-chan time.Time
		if countdown != nil {
			countdownC = countdown.C
		}
		if restart != nil {
			restartC = restart.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-sim.C:
			if countdown == nil && restart == nil {
				if s.tick(ctx) {
					restart = time.NewTimer(s.postgame)
				}
			}
			sim.Reset(s.arena.Delay())

		case <-countdownC:
			remaining--
			s.events.CountdownTick(remaining)
			if remaining <= 0 {
				countdown = nil
			} else {
				countdown.Reset(time.Second)
			}

		case <-restartC:
			restart = nil
			if s.finishedAll() {
				return nil
			}
			s.nextGame()
			if s.countdown > 0 {
				remaining = s.countdown
				s.events.CountdownTick(remaining)
				countdown = time.NewTimer(time.Second)
			}
		}
	}
}
