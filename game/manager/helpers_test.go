package manager

import (
	"io"
	"log/slog"
	"testing"
	"yeast-sim/game/entity"
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
	"golang.org/x/exp/rand"
)

type testWorld struct {
	space      *cp.Space
	pop        *PopulationManager
	reactions  *ReactionManager
	collisions *CollisionManager
	arena      *ArenaManager
}

func newTestWorld(t *testing.T, seed uint64) *testWorld {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rng := rand.New(rand.NewSource(seed))
	space := cp.NewSpace()
	pop := NewPopulationManager(space, rng)
	w := &testWorld{
		space:      space,
		pop:        pop,
		reactions:  NewReactionManager(pop, rng, log),
		collisions: NewCollisionManager(space),
		arena:      NewArenaManager(space, pop, rng, log),
	}
	w.collisions.OnSeparate(types.CategoryGlucose, types.CategoryYeast, w.reactions.HandleSeparate)
	return w
}

func (w *testWorld) step(n int) {
	for i := 0; i < n; i++ {
		w.space.Step(types.TimeStep)
	}
}

// headOn spawns a and b on the y=500 line moving towards each other.
func (w *testWorld) headOn(a, b types.Species) (*entity.Particle, *entity.Particle) {
	pa := w.pop.Spawn(cp.Vector{X: 300, Y: 500}, cp.Vector{X: 60}, a)
	pb := w.pop.Spawn(cp.Vector{X: 700, Y: 500}, cp.Vector{X: -60}, b)
	return pa, pb
}
