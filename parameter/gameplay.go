package parameter

import "time"

// Arena dimensions
const (
	ArenaWidth  = 20
	ArenaHeight = 20
)

// Route planning
const (
	// PathBound caps simple-path enumeration depth. Exhaustive simple-path
	// search on a grid is combinatorial without it.
	PathBound = 8

	// WanderHalfWidth is the half-width of the box wander targets are
	// drawn from, centered on the agent's head
	WanderHalfWidth = PathBound / 2

	// WanderAttempts bounds retries when drawing a free wander cell
	WanderAttempts = 10
)

// Movement and planning cadences per creature kind
const (
	SnakeMovePeriod = 500 * time.Millisecond
	SnakePlanPeriod = 3 * time.Second

	CobraMovePeriod = 350 * time.Millisecond
	CobraPlanPeriod = 2 * time.Second

	MouseMovePeriod = 400 * time.Millisecond
	MousePlanPeriod = 1500 * time.Millisecond

	// PlayerInputPeriod throttles protagonist steps
	PlayerInputPeriod = 200 * time.Millisecond
)

// Spawn cadences
const (
	BerrySpawnPeriod = 3 * time.Second
	SnakeSpawnPeriod = 5 * time.Second
	MouseSpawnPeriod = 7 * time.Second
	CobraSpawnPeriod = 20 * time.Second

	// SnakeMaxStartSegments is the most trailing segments an edge-spawned
	// snake starts with (head excluded)
	SnakeMaxStartSegments = 3

	// SpawnPlacementAttempts bounds retries for random free-cell placement
	SpawnPlacementAttempts = 10
)

// Target roll outcomes. Each planning cycle draws one integer in [0,10)
// and maps it through the kind's weight table.
const (
	RollChaseBerry = iota
	RollChaseMouse
	RollWander
	RollIdle
)

// Per-kind weight tables, indexed by the roll.
var (
	// Snakes mostly go for berries
	SnakeWeights = [10]int{
		RollChaseBerry, RollChaseBerry, RollChaseBerry, RollChaseBerry, RollChaseBerry,
		RollChaseMouse, RollChaseMouse,
		RollWander, RollWander,
		RollIdle,
	}

	// Cobras move faster and prefer hunting mice over berries
	CobraWeights = [10]int{
		RollChaseBerry, RollChaseBerry, RollChaseBerry,
		RollChaseMouse, RollChaseMouse, RollChaseMouse, RollChaseMouse, RollChaseMouse,
		RollWander,
		RollIdle,
	}

	// Mice only wander or sit still
	MouseWeights = [10]int{
		RollWander, RollWander, RollWander, RollWander, RollWander, RollWander, RollWander,
		RollIdle, RollIdle, RollIdle,
	}
)
