package game

import (
	"io"
	"log/slog"
	"time"
	"yeast-sim/game/entity"
	"yeast-sim/game/manager"
	"yeast-sim/game/types"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"golang.org/x/exp/rand"
)

// Options tunes a Game without changing the simulation rules.
type Options struct {
	Seed   uint64
	Logger *slog.Logger
	Now    func() time.Time // clock for lifespan; defaults to time.Now
}

// Game is one fermentation run: a physics space, its particles and the
// managers that act on them. A Game is not safe for concurrent use.
type Game struct {
	UUID       string
	Space      *cp.Space
	Population *manager.PopulationManager
	Reactions  *manager.ReactionManager
	Collisions *manager.CollisionManager
	Arena      *manager.ArenaManager
	State      *manager.StateManager
	Steps      int

	census manager.Census
	log    *slog.Logger
}

// NewGame builds the arena and seeds the given populations.
func NewGame(yeast, glucose, other int, opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New().String()
	log = log.With("run", id)

	rng := rand.New(rand.NewSource(opts.Seed))
	space := cp.NewSpace()

	pop := manager.NewPopulationManager(space, rng)
	g := &Game{
		UUID:       id,
		Space:      space,
		Population: pop,
		Reactions:  manager.NewReactionManager(pop, rng, log),
		Collisions: manager.NewCollisionManager(space),
		Arena:      manager.NewArenaManager(space, pop, rng, log),
		log:        log,
	}
	g.Collisions.OnSeparate(types.CategoryGlucose, types.CategoryYeast, g.Reactions.HandleSeparate)

	if err := g.Arena.Build(yeast, glucose, other); err != nil {
		return nil, err
	}
	g.State = manager.NewStateManager(opts.Now)
	g.census = pop.Census()

	log.Info("run started", "seed", opts.Seed, "particles", pop.Len())
	return g, nil
}

// Update advances the world by one fixed step and re-evaluates the
// termination rule. It does nothing once the run has stopped and reports
// whether the run is still going.
func (g *Game) Update() bool {
	if !g.State.Running() {
		return false
	}
	g.Space.Step(types.TimeStep)
	g.Steps++
	g.census = g.Population.Census()
	return g.State.Evaluate(g.census)
}

// Census returns the population counted after the latest step.
func (g *Game) Census() manager.Census {
	return g.census
}

func (g *Game) Particles() []*entity.Particle {
	return g.Population.Particles()
}

func (g *Game) Walls() []manager.Wall {
	return g.Arena.Walls()
}

func (g *Game) Logger() *slog.Logger {
	return g.log
}
