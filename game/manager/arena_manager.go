package manager

import (
	"errors"
	"fmt"
	"log/slog"
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
	"golang.org/x/exp/rand"
)

var (
	ErrNegativeCount = errors.New("population counts must be non-negative")
	ErrArenaBuilt    = errors.New("arena already built")
)

// Wall is one static boundary segment.
type Wall struct {
	A, B   cp.Vector
	Radius float64
	Color  types.Color
	Shape  *cp.Shape
}

// ArenaManager builds the boundary walls and seeds the initial populations.
type ArenaManager struct {
	space *cp.Space
	pop   *PopulationManager
	rng   *rand.Rand
	log   *slog.Logger
	walls []Wall
}

func NewArenaManager(space *cp.Space, pop *PopulationManager, rng *rand.Rand, log *slog.Logger) *ArenaManager {
	return &ArenaManager{
		space: space,
		pop:   pop,
		rng:   rng,
		log:   log,
	}
}

// Build adds the four walls, then yeast, other and glucose particles in
// that order at random positions with random impulses.
func (am *ArenaManager) Build(yeast, glucose, other int) error {
	if yeast < 0 || glucose < 0 || other < 0 {
		return fmt.Errorf("%w: yeast=%d glucose=%d other=%d", ErrNegativeCount, yeast, glucose, other)
	}
	if am.walls != nil {
		return ErrArenaBuilt
	}

	am.buildWalls()
	am.seed(types.Yeast, yeast)
	am.seed(types.Other, other)
	am.seed(types.Glucose, glucose)

	am.log.Info("arena built",
		"yeast", yeast,
		"glucose", glucose,
		"other", other,
		"walls", len(am.walls))
	return nil
}

func (am *ArenaManager) buildWalls() {
	corners := types.ArenaCorners
	am.walls = make([]Wall, 0, len(corners))
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		shape := cp.NewSegment(am.space.StaticBody, a, b, types.WallRadius)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		am.space.AddShape(shape)
		am.walls = append(am.walls, Wall{
			A:      a,
			B:      b,
			Radius: types.WallRadius,
			Color:  types.Black,
			Shape:  shape,
		})
	}
}

func (am *ArenaManager) seed(species types.Species, n int) {
	for i := 0; i < n; i++ {
		am.pop.Spawn(types.RandomPosition(am.rng), types.RandomImpulse(am.rng), species)
	}
}

// Walls returns the boundary segments.
func (am *ArenaManager) Walls() []Wall {
	return am.walls
}

// Contains reports whether pos lies inside the arena boundary.
func Contains(pos cp.Vector) bool {
	return pos.X >= types.ArenaMin && pos.X <= types.ArenaMax &&
		pos.Y >= types.ArenaMin && pos.Y <= types.ArenaMax
}
