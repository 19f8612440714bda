package entity

import (
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
)

// Particle is a physics body carrying exactly one circle shape.
type Particle struct {
	ID      uint64
	Species types.Species
	Radius  float64
	Color   types.Color
	Body    *cp.Body
	Shape   *cp.Shape
}

// NewParticle builds the body and shape for a particle without adding
// them to a space. The body has unit mass and infinite moment so it never
// rotates.
func NewParticle(id uint64, species types.Species, radius float64, color types.Color, pos cp.Vector) *Particle {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(pos)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(1)
	shape.SetCollisionType(cp.CollisionType(species.Category()))

	p := &Particle{
		ID:      id,
		Species: species,
		Radius:  radius,
		Color:   color,
		Body:    body,
		Shape:   shape,
	}
	shape.UserData = p
	return p
}

func (p *Particle) Position() cp.Vector {
	return p.Body.Position()
}

func (p *Particle) Velocity() cp.Vector {
	return p.Body.Velocity()
}

func (p *Particle) Category() types.Category {
	return p.Species.Category()
}
