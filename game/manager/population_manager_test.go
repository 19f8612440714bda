package manager

import (
	"testing"
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
)

func TestSpawn_SpeciesTable(t *testing.T) {
	w := newTestWorld(t, 1)
	tests := []struct {
		species  types.Species
		radius   float64
		category types.Category
	}{
		{types.Yeast, 15, types.CategoryYeast},
		{types.Glucose, 10, types.CategoryGlucose},
		{types.CO2, 5, types.CategoryOther},
		{types.Ethanol, 5, types.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.species.String(), func(t *testing.T) {
			pos := cp.Vector{X: 500, Y: 500}
			p := w.pop.Spawn(pos, cp.Vector{}, tt.species)

			if p.Radius != tt.radius {
				t.Errorf("Expected radius %v, got %v", tt.radius, p.Radius)
			}
			if p.Category() != tt.category {
				t.Errorf("Expected category %v, got %v", tt.category, p.Category())
			}
			if p.Species != tt.species {
				t.Errorf("Expected species %v, got %v", tt.species, p.Species)
			}
			if p.Shape.Elasticity() != 1 {
				t.Errorf("Expected elasticity 1, got %v", p.Shape.Elasticity())
			}
			if p.Body.Mass() != 1 {
				t.Errorf("Expected mass 1, got %v", p.Body.Mass())
			}
			if p.Position() != pos {
				t.Errorf("Expected position %v, got %v", pos, p.Position())
			}
			if got, ok := w.pop.Lookup(p.Shape); !ok || got != p {
				t.Error("Expected spawned particle to be live")
			}
		})
	}
}

func TestSpawn_Other(t *testing.T) {
	w := newTestWorld(t, 2)
	for i := 0; i < 100; i++ {
		p := w.pop.Spawn(cp.Vector{X: 500, Y: 500}, cp.Vector{}, types.Other)
		if p.Radius < types.MinOtherRadius || p.Radius > types.MaxOtherRadius {
			t.Fatalf("Other radius %v out of range", p.Radius)
		}
		if p.Category() != types.CategoryOther {
			t.Fatalf("Expected other category, got %v", p.Category())
		}
	}
}

func TestSpawn_ImpulseSetsVelocity(t *testing.T) {
	w := newTestWorld(t, 3)
	impulse := cp.Vector{X: 25, Y: -10}
	p := w.pop.Spawn(cp.Vector{X: 500, Y: 500}, impulse, types.Yeast)

	// Unit mass, so the velocity equals the impulse.
	if p.Velocity() != impulse {
		t.Errorf("Expected velocity %v, got %v", impulse, p.Velocity())
	}
}

func TestSpawn_IDsIncrease(t *testing.T) {
	w := newTestWorld(t, 4)
	a := w.pop.Spawn(cp.Vector{X: 100, Y: 100}, cp.Vector{}, types.Yeast)
	b := w.pop.Spawn(cp.Vector{X: 200, Y: 200}, cp.Vector{}, types.Glucose)
	if b.ID <= a.ID {
		t.Errorf("Expected increasing IDs, got %d then %d", a.ID, b.ID)
	}

	ps := w.pop.Particles()
	if len(ps) != 2 || ps[0] != a || ps[1] != b {
		t.Errorf("Expected particles in spawn order, got %v", ps)
	}
}

func TestRemove(t *testing.T) {
	w := newTestWorld(t, 5)
	p := w.pop.Spawn(cp.Vector{X: 500, Y: 500}, cp.Vector{}, types.Glucose)

	if !w.pop.Remove(p) {
		t.Fatal("Expected first remove to succeed")
	}
	if w.pop.Remove(p) {
		t.Error("Expected second remove to report false")
	}
	if w.pop.IsLive(p) {
		t.Error("Expected particle to be dead")
	}
	if w.pop.Len() != 0 {
		t.Errorf("Expected empty population, got %d", w.pop.Len())
	}
}

func TestCensus(t *testing.T) {
	w := newTestWorld(t, 6)
	if err := w.arena.Build(0, 0, 0); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	at := cp.Vector{X: 500, Y: 500}
	w.pop.Spawn(at, cp.Vector{}, types.Yeast)
	w.pop.Spawn(at, cp.Vector{}, types.Yeast)
	w.pop.Spawn(at, cp.Vector{}, types.Glucose)
	w.pop.Spawn(at, cp.Vector{}, types.CO2)
	w.pop.Spawn(at, cp.Vector{}, types.Ethanol)
	w.pop.Spawn(at, cp.Vector{}, types.Other)

	c := w.pop.Census()
	if c.Yeast != 2 {
		t.Errorf("Expected 2 yeast, got %d", c.Yeast)
	}
	if c.Glucose != 1 {
		t.Errorf("Expected 1 glucose, got %d", c.Glucose)
	}
	// co2, ethanol and other share the bucket; walls are not counted.
	if c.Other != 3 {
		t.Errorf("Expected 3 other, got %d", c.Other)
	}
	if c.Total() != 6 {
		t.Errorf("Expected total 6, got %d", c.Total())
	}
	if c.BySpecies[types.CO2] != 1 || c.BySpecies[types.Ethanol] != 1 || c.BySpecies[types.Other] != 1 {
		t.Errorf("Unexpected species breakdown %v", c.BySpecies)
	}
}
