package game

import (
	"context"
	"time"
	"yeast-sim/game/manager"
)

// Frontend presents a running Game. BeginFrame runs before the physics
// step and EndFrame after it; EndFrame is also where the frontend
// throttles to its frame rate.
type Frontend interface {
	Quit() bool
	BeginFrame(g *Game)
	EndFrame(g *Game)
}

// Result summarises a finished run.
type Result struct {
	Run         string
	Reason      manager.StopReason
	Steps       int
	Reactions   int
	Separations int // includes contacts ended by removing consumed glucose
	Census      manager.Census
	Lifespan    time.Duration
}

// Run drives the game until glucose is exhausted, the frontend asks to
// quit or ctx is cancelled. A step in progress always completes.
func (g *Game) Run(ctx context.Context, f Frontend) Result {
	for g.State.Running() {
		if ctx.Err() != nil {
			g.State.Stop(manager.Interrupted)
			break
		}
		if f.Quit() {
			g.State.Stop(manager.QuitRequested)
			break
		}

		f.BeginFrame(g)
		g.Update()
		f.EndFrame(g)
	}

	res := Result{
		Run:         g.UUID,
		Reason:      g.State.Reason(),
		Steps:       g.Steps,
		Reactions:   g.Reactions.Count(),
		Separations: g.Collisions.Separations(),
		Census:      g.census,
		Lifespan:    g.State.Lifespan(),
	}
	g.log.Info("run finished",
		"reason", res.Reason.String(),
		"steps", res.Steps,
		"reactions", res.Reactions,
		"yeast", res.Census.Yeast,
		"glucose", res.Census.Glucose,
		"other", res.Census.Other,
		"lifespan", res.Lifespan)
	return res
}
