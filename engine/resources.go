package engine

// Scoreboard accumulates the run's tallies. Fed by the score system from
// the event stream; read by the renderer.
type Scoreboard struct {
	BerriesEatenByMongoose int
	BerriesEatenBySnakes   int
	SnakesKilled           int
	MiceEatenByMongoose    int
	MiceEatenBySnakes      int
	MiceEscaped            int
}
