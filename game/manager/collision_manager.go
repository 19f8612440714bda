package manager

import (
	"yeast-sim/game/types"

	"github.com/jakecoffman/cp"
)

// CollisionManager binds category pairs to engine callbacks.
type CollisionManager struct {
	space       *cp.Space
	separations int
}

func NewCollisionManager(space *cp.Space) *CollisionManager {
	return &CollisionManager{
		space: space,
	}
}

// OnSeparate calls fn whenever a shape of category a stops touching a
// shape of category b. The engine may pass the two shapes in either order.
func (cm *CollisionManager) OnSeparate(a, b types.Category, fn func(*cp.Arbiter, *cp.Space, interface{})) {
	h := cm.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
	h.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, data interface{}) {
		cm.separations++
		fn(arb, space, data)
	}
}

// Separations returns how many times a registered separation callback ran.
// Removing a shape makes the engine end its remaining contacts, so this
// counts those too: one glucose consumed between two yeasts counts two.
func (cm *CollisionManager) Separations() int {
	return cm.separations
}
