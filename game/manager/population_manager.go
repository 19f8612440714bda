package manager

import (
	"cmp"
	"slices"
	"yeast-sim/game/entity"
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
	"golang.org/x/exp/rand"
)

// Census is a snapshot of the live population.
//
// Yeast, Glucose and Other are bucketed by radius, so co2 and ethanol are
// counted as Other. BySpecies is keyed on the explicit species tag.
type Census struct {
	Yeast     int
	Glucose   int
	Other     int
	BySpecies map[types.Species]int
}

func (c Census) Total() int {
	return c.Yeast + c.Glucose + c.Other
}

// PopulationManager owns the live particles of a space. It is the only
// place particles are added to or removed from the space.
type PopulationManager struct {
	space     *cp.Space
	rng       *rand.Rand
	particles map[*cp.Shape]*entity.Particle
	nextID    uint64
}

func NewPopulationManager(space *cp.Space, rng *rand.Rand) *PopulationManager {
	return &PopulationManager{
		space:     space,
		rng:       rng,
		particles: make(map[*cp.Shape]*entity.Particle),
	}
}

// Spawn builds a particle of the given species at pos, registers it with
// the space and gives it its initial impulse.
func (pm *PopulationManager) Spawn(pos, impulse cp.Vector, species types.Species) *entity.Particle {
	radius, color := types.Appearance(species, pm.rng)
	pm.nextID++
	p := entity.NewParticle(pm.nextID, species, radius, color, pos)

	pm.space.AddBody(p.Body)
	pm.space.AddShape(p.Shape)
	p.Body.ApplyImpulseAtLocalPoint(impulse, cp.Vector{})

	pm.particles[p.Shape] = p
	return p
}

// Remove takes a particle out of the space. It reports false if the
// particle was not live.
func (pm *PopulationManager) Remove(p *entity.Particle) bool {
	if _, ok := pm.particles[p.Shape]; !ok {
		return false
	}
	delete(pm.particles, p.Shape)
	pm.space.RemoveShape(p.Shape)
	pm.space.RemoveBody(p.Body)
	return true
}

// Lookup returns the live particle owning shape.
func (pm *PopulationManager) Lookup(shape *cp.Shape) (*entity.Particle, bool) {
	p, ok := pm.particles[shape]
	return p, ok
}

func (pm *PopulationManager) IsLive(p *entity.Particle) bool {
	_, ok := pm.particles[p.Shape]
	return ok
}

func (pm *PopulationManager) Len() int {
	return len(pm.particles)
}

// Particles returns the live particles ordered by spawn ID.
func (pm *PopulationManager) Particles() []*entity.Particle {
	out := make([]*entity.Particle, 0, len(pm.particles))
	for _, p := range pm.particles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *entity.Particle) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Census scans every shape in the space. Shapes that are not particles
// (the arena walls) are skipped.
func (pm *PopulationManager) Census() Census {
	c := Census{BySpecies: make(map[types.Species]int, len(types.AllSpecies))}
	pm.space.EachShape(func(shape *cp.Shape) {
		p, ok := pm.particles[shape]
		if !ok {
			return
		}
		switch types.Bucket(p.Radius) {
		case types.Yeast:
			c.Yeast++
		case types.Glucose:
			c.Glucose++
		default:
			c.Other++
		}
		c.BySpecies[p.Species]++
	})
	return c
}
