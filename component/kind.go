package component

// Kind discriminates occupant species. It rides on every arena occupant
// tag and on agent root entities.
type Kind uint8

const (
	KindNone Kind = iota
	KindBerry
	KindMouse
	KindSnake
	KindCobra
	KindMongoose
)

func (k Kind) String() string {
	switch k {
	case KindBerry:
		return "berry"
	case KindMouse:
		return "mouse"
	case KindSnake:
		return "snake"
	case KindCobra:
		return "cobra"
	case KindMongoose:
		return "mongoose"
	default:
		return "none"
	}
}

// KindComponent tags a root entity with its species
type KindComponent struct {
	Kind Kind
}
