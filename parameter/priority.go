package parameter

// System execution priorities (lower runs first)
const (
	PrioritySpawn    = 10
	PriorityPlanning = 20
	PriorityPlayer   = 30
	PriorityMovement = 40
	PriorityScore    = 50
)
