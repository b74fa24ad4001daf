package arena

// Agent geometry and placement constants. All distances are in play-area
// units (pixels when rendered).
const (
	// Radius is the collision radius of an agent. Walls, obstacles, and
	// contact checks all measure against the agent's center plus this.
	Radius = 14

	// MinSeparation is the minimum center-to-center distance between
	// agents during constrained placement, and the range within which
	// allies push each other apart.
	MinSeparation = Radius*2 + 6

	// PlacementMargin keeps agent centers and obstacle edges away from
	// the play-area boundary during placement and generation.
	PlacementMargin = Radius + 2

	// ContactRadius is the center distance at or under which two agents
	// of rival kinds interact. Slightly above Radius so touching edges
	// count as contact.
	ContactRadius = Radius * 1.1
)

// Movement tuning. Forces are added to velocity each tick, then the
// velocity magnitude is capped at BaseSpeed.
const (
	// BaseSpeed caps per-tick movement distance.
	BaseSpeed = 2.2

	// Attraction scales the unit vector toward the nearest prey.
	Attraction = 1.6

	// Repulsion scales the unit vector away from the nearest predator.
	Repulsion = 1.8

	// AllyRepel scales the short-range push between same-kind agents.
	// The push grows as allies get closer than MinSeparation.
	AllyRepel = 1.3

	// WallBounce damps the reflected velocity component on any wall or
	// obstacle bounce.
	WallBounce = 0.9

	// SteerJitter is the half-width of the uniform noise added to each
	// force axis every tick. Breaks symmetric stand-offs.
	SteerJitter = 0.25

	// BounceJitter is the half-width of the uniform noise added to each
	// velocity axis after a bounce, so agents do not ride walls forever.
	BounceJitter = 0.2
)

// Placement attempt budgets. Exhaustion is not an error: leftover agents
// fall back to a looser policy rather than failing the game.
const (
	// placementAttemptsPerUnit bounds the constrained phase at
	// unitCount*placementAttemptsPerUnit total draws.
	placementAttemptsPerUnit = 500

	// fallbackTries bounds the per-agent obstacle-avoidance loop in the
	// fallback phase. Past this the last sampled point is used as is.
	fallbackTries = 2000
)
