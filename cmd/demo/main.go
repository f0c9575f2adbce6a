package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/body"
	"physics-engine/internal/debug"
	"physics-engine/internal/engineconfig"
	"physics-engine/internal/geometry"
	"physics-engine/internal/graphics"
	"physics-engine/internal/logger"
	"physics-engine/internal/render"
	"physics-engine/internal/scene"
	"physics-engine/internal/sceneconfig"
	"physics-engine/internal/scenegen"
)

func main() {
	sceneFile := flag.String("scene", "", "YAML scene file to load")
	gen := flag.String("gen", "orbit", "procedural scene when -scene is not set: orbit, pit, springs")
	bodies := flag.Int("bodies", 0, "dynamic body count for procedural scenes (0 = default)")
	seed := flag.Int64("seed", 0, "random seed for procedural scenes (0 = time-based)")
	dt := flag.Float64("dt", 1.0/240, "simulation step in seconds")
	flag.Parse()

	prefs, _ := engineconfig.Load()
	lg := logger.New()

	s, name, err := buildScene(*sceneFile, *gen, *bodies, *seed)
	if err != nil {
		log.Fatal(err)
	}
	lg.Logf("scene %q loaded: %d bodies", name, len(s.Bodies()))

	// Log each fresh contact episode between any pair of bodies. These
	// bindings only observe; resolution stays with the scene's own bindings.
	var tick uint64
	all := s.Bodies()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			s.CreateCollision(all[i], all[j], func(_, _ *body.Body, _ geometry.Vec2) {
				lg.Logf("contact bodies=%d,%d tick=%d", i, j, tick)
			})
		}
	}

	view := render.New(prefs.PixelsPerUnit)
	view.GridVisible = prefs.GridVisible
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowBodyCount = prefs.ShowBodyCount

	// Several fixed-dt substeps per 60 FPS frame keep the simulation stable
	// independent of render rate.
	substeps := int(math.Round(1.0 / 60 / *dt))
	if substeps < 1 {
		substeps = 1
	}

	paused := prefs.StartPaused
	update := func() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyG) {
			view.GridVisible = !view.GridVisible
		}
		step := !paused || rl.IsKeyPressed(rl.KeyN) // N steps one frame while paused
		if !step {
			return
		}
		before := len(s.Bodies())
		for i := 0; i < substeps; i++ {
			s.Tick(*dt)
			tick++
		}
		if after := len(s.Bodies()); after < before {
			lg.Logf("tick %d: %d bodies removed, %d remain", tick, before-after, after)
		}
	}
	draw := func() {
		view.Draw(s)
		dbg.SetSimState(len(s.Bodies()), tick)
		dbg.Draw()
	}
	graphics.Run(1280, 800, "physics demo - "+name, update, draw)
}

// buildScene loads the YAML scene when a file is given, otherwise runs the
// named procedural generator.
func buildScene(path, gen string, bodies int, seed int64) (*scene.Scene, string, error) {
	if path != "" {
		cfg, err := sceneconfig.Load(path)
		if err != nil {
			return nil, "", err
		}
		s, err := cfg.Build()
		if err != nil {
			return nil, "", err
		}
		return s, cfg.Name, nil
	}

	opts := scenegen.DefaultOptions()
	opts.Bodies = bodies
	opts.Seed = seed
	switch gen {
	case "orbit":
		return scenegen.Orbit(opts), gen, nil
	case "pit":
		return scenegen.Pit(opts), gen, nil
	case "springs":
		return scenegen.Springs(opts), gen, nil
	default:
		return nil, "", fmt.Errorf("unknown generator %q (want orbit, pit, or springs)", gen)
	}
}
