package types

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"golang.org/x/exp/rand"
)

// Species identifies the role of a particle in the fermentation.
type Species int

const (
	Other Species = iota
	Yeast
	Glucose
	CO2
	Ethanol
)

// AllSpecies lists every species in display order.
var AllSpecies = []Species{Yeast, Glucose, CO2, Ethanol, Other}

func (s Species) String() string {
	switch s {
	case Yeast:
		return "yeast"
	case Glucose:
		return "glucose"
	case CO2:
		return "co2"
	case Ethanol:
		return "ethanol"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("species(%d)", int(s))
	}
}

// Category is the coarse collision grouping handed to the physics engine.
// Only yeast/glucose contacts react, so everything else shares one category.
type Category cp.CollisionType

const (
	CategoryYeast   Category = 1
	CategoryGlucose Category = 2
	CategoryOther   Category = 3
)

func (c Category) String() string {
	switch c {
	case CategoryYeast:
		return "yeast"
	case CategoryGlucose:
		return "glucose"
	case CategoryOther:
		return "other"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Category returns the collision category of the species.
func (s Species) Category() Category {
	switch s {
	case Yeast:
		return CategoryYeast
	case Glucose:
		return CategoryGlucose
	default:
		return CategoryOther
	}
}

type Color struct {
	R, G, B uint8
}

var (
	Green  = Color{R: 0, G: 255, B: 0}
	Red    = Color{R: 255, G: 0, B: 0}
	Orange = Color{R: 255, G: 165, B: 0}
	Pink   = Color{R: 255, G: 192, B: 203}
	Blue   = Color{R: 0, G: 0, B: 255}
	Purple = Color{R: 160, G: 32, B: 240}
	Yellow = Color{R: 255, G: 255, B: 0}
	Black  = Color{R: 0, G: 0, B: 0}
	White  = Color{R: 255, G: 255, B: 255}
)

// Palette for undesignated "other" particles.
var OtherColors = []Color{Blue, Purple, Yellow, Black}

// Particle radii. The census buckets particles by these values.
const (
	YeastRadius     = 15.0
	GlucoseRadius   = 10.0
	ByproductRadius = 5.0
	MinOtherRadius  = 3
	MaxOtherRadius  = 9
)

// Arena and seeding geometry, in world units.
const (
	ArenaMin      = 25.0
	ArenaMax      = 975.0
	WallRadius    = 2.0
	SpawnMin      = 50
	SpawnMax      = 950
	VelocityScale = 5
	ImpulseRange  = 5   // impulse axes are drawn from [-ImpulseRange, ImpulseRange]
	ReactionShift = 5.0 // byproducts land at glucose position ± (ReactionShift, ReactionShift)
	WorldSize     = 1000
)

// Loop timing.
const (
	TargetFPS = 60
	TimeStep  = 1.0 / TargetFPS
)

// ArenaCorners are the wall corners in drawing order; wall i joins corner i to i+1.
var ArenaCorners = [4]cp.Vector{
	{X: ArenaMin, Y: ArenaMin},
	{X: ArenaMin, Y: ArenaMax},
	{X: ArenaMax, Y: ArenaMax},
	{X: ArenaMax, Y: ArenaMin},
}

// Appearance returns the radius and color for a species. Only Other draws
// from rng.
func Appearance(s Species, rng *rand.Rand) (float64, Color) {
	switch s {
	case Yeast:
		return YeastRadius, Green
	case Glucose:
		return GlucoseRadius, Red
	case CO2:
		return ByproductRadius, Orange
	case Ethanol:
		return ByproductRadius, Pink
	default:
		radius := float64(MinOtherRadius + rng.Intn(MaxOtherRadius-MinOtherRadius+1))
		return radius, OtherColors[rng.Intn(len(OtherColors))]
	}
}

// Bucket is the census class of a radius: 15 is yeast, 10 is glucose and
// anything else is Other. Byproducts deliberately land in Other.
func Bucket(radius float64) Species {
	switch radius {
	case YeastRadius:
		return Yeast
	case GlucoseRadius:
		return Glucose
	default:
		return Other
	}
}

// RandomImpulse draws an initial impulse with integer axes in
// [-ImpulseRange, ImpulseRange] scaled by VelocityScale.
func RandomImpulse(rng *rand.Rand) cp.Vector {
	return cp.Vector{
		X: float64((rng.Intn(2*ImpulseRange+1) - ImpulseRange) * VelocityScale),
		Y: float64((rng.Intn(2*ImpulseRange+1) - ImpulseRange) * VelocityScale),
	}
}

// RandomPosition draws a seeding position with integer coordinates in
// [SpawnMin, SpawnMax].
func RandomPosition(rng *rand.Rand) cp.Vector {
	return cp.Vector{
		X: float64(SpawnMin + rng.Intn(SpawnMax-SpawnMin+1)),
		Y: float64(SpawnMin + rng.Intn(SpawnMax-SpawnMin+1)),
	}
}
