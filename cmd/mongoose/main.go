package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mongoose/audio"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
	"github.com/lixenwraith/mongoose/input"
	"github.com/lixenwraith/mongoose/parameter"
	"github.com/lixenwraith/mongoose/render"
	"github.com/lixenwraith/mongoose/system"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "simulation random seed")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init failed: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	core.SetResetHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		screen.Fini()
	}()

	var cues system.CuePlayer
	if !*mute {
		c, err := audio.NewCues()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v", err)
		}
		cues = c
	}

	w := engine.NewWorld(engine.Config{
		Width:     parameter.ArenaWidth,
		Height:    parameter.ArenaHeight,
		PathBound: parameter.PathBound,
		Seed:      *seed,
	})

	w.AddSystem(system.NewSpawnSystem(w))
	w.AddSystem(system.NewPlanningSystem(w))
	w.AddSystem(system.NewPlayerSystem(w))
	w.AddSystem(system.NewMovementSystem(w))
	w.AddSystem(system.NewScoreSystem(w, cues))

	system.SpawnMongoose(w)

	reader := input.NewReader(screen)
	renderer := render.NewTerminalRenderer(screen)

	loop := engine.NewLoop(w, parameter.TickInterval, reader.Directions(), renderer.RenderFrame)

	core.Go(reader.Poll)
	core.Go(func() {
		<-reader.Quit()
		loop.Stop()
	})

	loop.Run()
}
