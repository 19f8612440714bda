package manager

import (
	"log/slog"
	"yeast-sim/game/entity"
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
	"golang.org/x/exp/rand"
)

// Reaction records one glucose particle fermented into co2 and ethanol.
type Reaction struct {
	Seq      int
	Position cp.Vector // last position of the consumed glucose
	CO2      *entity.Particle
	Ethanol  *entity.Particle
}

// ReactionManager turns glucose/yeast separations into byproducts.
type ReactionManager struct {
	pop       *PopulationManager
	rng       *rand.Rand
	log       *slog.Logger
	count     int
	listeners []func(Reaction)
}

func NewReactionManager(pop *PopulationManager, rng *rand.Rand, log *slog.Logger) *ReactionManager {
	return &ReactionManager{
		pop: pop,
		rng: rng,
		log: log,
	}
}

// OnReaction registers fn to be called after every reaction, on the
// goroutine stepping the space.
func (rm *ReactionManager) OnReaction(fn func(Reaction)) {
	rm.listeners = append(rm.listeners, fn)
}

// Count returns the number of reactions so far.
func (rm *ReactionManager) Count() int {
	return rm.count
}

// HandleSeparate is the separation callback for glucose/yeast contacts.
// The space is locked while it runs, so the consumption is deferred to a
// post-step callback keyed on the glucose shape.
func (rm *ReactionManager) HandleSeparate(arb *cp.Arbiter, space *cp.Space, _ interface{}) {
	a, b := arb.Shapes()
	glucose, yeast := a, b
	if categoryOf(b) == types.CategoryGlucose {
		glucose, yeast = b, a
	}
	if categoryOf(glucose) != types.CategoryGlucose || categoryOf(yeast) != types.CategoryYeast {
		return
	}
	space.AddPostStepCallback(rm.consumeShape, glucose, nil)
}

// categoryOf classifies a shape through the particle it carries. Shapes
// that are not particles, such as walls, fall into CategoryOther.
func categoryOf(shape *cp.Shape) types.Category {
	p, ok := shape.UserData.(*entity.Particle)
	if !ok {
		return types.CategoryOther
	}
	return p.Category()
}

func (rm *ReactionManager) consumeShape(_ *cp.Space, key, _ interface{}) {
	shape, ok := key.(*cp.Shape)
	if !ok {
		return
	}
	// Already consumed earlier in this step by another yeast.
	p, ok := rm.pop.Lookup(shape)
	if !ok {
		return
	}
	rm.Consume(p)
}

// Consume removes a live glucose particle and spawns one co2 and one
// ethanol particle beside its last position. It must not be called while
// the space is stepping. Non-glucose or dead particles are ignored.
func (rm *ReactionManager) Consume(glucose *entity.Particle) (Reaction, bool) {
	if glucose.Species != types.Glucose || !rm.pop.IsLive(glucose) {
		return Reaction{}, false
	}

	pos := glucose.Position()
	rm.pop.Remove(glucose)

	shift := cp.Vector{X: types.ReactionShift, Y: types.ReactionShift}
	co2 := rm.pop.Spawn(pos.Add(shift), types.RandomImpulse(rm.rng), types.CO2)
	ethanol := rm.pop.Spawn(pos.Sub(shift), types.RandomImpulse(rm.rng), types.Ethanol)

	rm.count++
	r := Reaction{
		Seq:      rm.count,
		Position: pos,
		CO2:      co2,
		Ethanol:  ethanol,
	}
	rm.log.Debug("glucose fermented",
		"seq", r.Seq,
		"x", pos.X,
		"y", pos.Y,
		"glucose_id", glucose.ID)

	for _, fn := range rm.listeners {
		fn(r)
	}
	return r, true
}
