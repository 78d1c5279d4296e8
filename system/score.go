package system

import (
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/engine"
	"github.com/lixenwraith/mongoose/event"
	"github.com/lixenwraith/mongoose/parameter"
)

// CuePlayer is the audio boundary: short feedback cues keyed to outcomes.
// A nil CuePlayer is silent.
type CuePlayer interface {
	Eat()
	Kill()
	Block()
}

// ScoreSystem drains the event stream at the end of each tick, turning
// consumption and escape events into scoreboard tallies and audio cues.
// It is the single consumer of the event queue.
type ScoreSystem struct {
	world *engine.World
	cues  CuePlayer
}

func NewScoreSystem(w *engine.World, cues CuePlayer) engine.System {
	return &ScoreSystem{world: w, cues: cues}
}

func (s *ScoreSystem) Name() string { return "score" }

func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }

func (s *ScoreSystem) Update(dt time.Duration) {
	board := s.world.Scoreboard

	for _, ev := range s.world.Events.Consume() {
		switch ev.Type {
		case event.EventConsumption:
			p, ok := ev.Payload.(*event.ConsumptionPayload)
			if !ok {
				continue
			}
			s.tally(board, p)

		case event.EventEscape:
			if p, ok := ev.Payload.(*event.EscapePayload); ok && p.Kind == component.KindMouse {
				board.MiceEscaped++
			}

		case event.EventBlockedMove:
			if p, ok := ev.Payload.(*event.BlockedMovePayload); ok && p.Kind == component.KindMongoose {
				if s.cues != nil {
					s.cues.Block()
				}
			}
		}
	}
}

func (s *ScoreSystem) tally(board *engine.Scoreboard, p *event.ConsumptionPayload) {
	predator := p.EaterKind == component.KindSnake || p.EaterKind == component.KindCobra

	switch p.VictimKind {
	case component.KindBerry:
		if p.EaterKind == component.KindMongoose {
			board.BerriesEatenByMongoose++
		} else if predator {
			board.BerriesEatenBySnakes++
		}
		if s.cues != nil && p.EaterKind == component.KindMongoose {
			s.cues.Eat()
		}

	case component.KindMouse:
		if p.EaterKind == component.KindMongoose {
			board.MiceEatenByMongoose++
		} else if predator {
			board.MiceEatenBySnakes++
		}
		if s.cues != nil && p.EaterKind == component.KindMongoose {
			s.cues.Eat()
		}

	case component.KindSnake:
		if p.EaterKind == component.KindMongoose {
			board.SnakesKilled++
			if s.cues != nil {
				s.cues.Kill()
			}
		}
	}
}
