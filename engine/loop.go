package engine

import "time"

// Loop drives the simulation at a fixed tick. Direction commands arrive
// asynchronously on a channel and are applied at the top of the next tick,
// so all world mutation stays on the loop goroutine.
type Loop struct {
	world  *World
	render func(*World)
	input  <-chan int
	stop   chan struct{}
	tick   time.Duration
}

// NewLoop wires a world to its input source and render callback.
// render may be nil (headless runs, tests).
func NewLoop(w *World, tick time.Duration, input <-chan int, render func(*World)) *Loop {
	return &Loop{
		world:  w,
		render: render,
		input:  input,
		stop:   make(chan struct{}),
		tick:   tick,
	}
}

// Run blocks until Stop, advancing the world once per tick
func (l *Loop) Run() {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.drainInput()
			l.world.Update(l.tick)
			if l.render != nil {
				l.render(l.world)
			}
		}
	}
}

// Stop terminates Run. Safe to call once.
func (l *Loop) Stop() {
	close(l.stop)
}

// drainInput applies the latest buffered direction to the player brain.
// Later presses within one tick override earlier ones.
func (l *Loop) drainInput() {
	if l.input == nil {
		return
	}
	dir := -1
	for {
		select {
		case d := <-l.input:
			dir = d
		default:
			if dir < 0 {
				return
			}
			for _, e := range l.world.Components.Player.GetAllEntities() {
				pc, ok := l.world.Components.Player.GetComponent(e)
				if !ok {
					continue
				}
				pc.Next = dir
				l.world.Components.Player.SetComponent(e, pc)
			}
			return
		}
	}
}
