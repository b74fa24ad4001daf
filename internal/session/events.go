package session

import "github.com/nvandessel/rps-arena/internal/obstacle"

// Events receives session lifecycle notifications. Methods fire on the
// session's goroutine; implementations that share state with another
// goroutine must synchronize.
type Events interface {
	// GameStarted fires once per game, after its field and population
	// are placed. The first game fires during New.
	GameStarted(game int, seed int64, field obstacle.Field)

	// CountdownTick fires once per countdown second. Zero means the
	// countdown just ended and physics is about to resume.
	CountdownTick(remaining int)

	// StepDone fires after every physics step.
	StepDone(step int)

	// GameEnded fires when one kind remains.
	GameEnded(res Result)
}

// NopEvents ignores all notifications.
type NopEvents struct{}

func (NopEvents) GameStarted(int, int64, obstacle.Field) {}

func (NopEvents) CountdownTick(int) {}

func (NopEvents) StepDone(int) {}

func (NopEvents) GameEnded(Result) {}
