// Package defense decides, tick by tick, how a single location is guarded:
// how many defenders it needs, what they are built from, and what each one
// does this tick.
package defense

import "github.com/nstehr/vimy/vimy-guard/model"

//go:generate go tool mockgen -destination=./mocks/defense_mock.go -package=mocks . Scheduler,Capacity

// World is the per-tick view threaded into every decision instead of
// global clock and lookup access.
type World struct {
	Tick    int
	Objects ObjectResolver
}

// ObjectResolver looks up a live unit by id. ok is false once the id no
// longer refers to a live unit.
type ObjectResolver interface {
	Creep(id string) (model.Creep, bool)
}

// ThreatSignal predicts an incursion before anything is visible.
type ThreatSignal interface {
	InvaderLikely() bool
}

// TravelOptions tunes the travel primitive.
type TravelOptions struct {
	MovingTarget bool // target may reposition; keep re-pathing instead of caching
}

// Defender is one guard unit under this controller. Action methods return
// nil when the game accepted the order.
type Defender interface {
	Creep() model.Creep
	Memory() *model.HealMemory

	Attack(target model.Creep) error
	Heal(target model.Creep) error
	RangedHeal(target model.Creep) error
	Move(dir model.Direction) error
	TravelTo(pos model.Position, opts TravelOptions) error
	YieldRoad(target model.Creep) error
	IdleNear(pos model.Position, radius int) error
}

// HeadCountOptions controls unit reconciliation.
type HeadCountOptions struct {
	PrespawnTicks int // spawn replacements this many ticks before a unit expires
}

// Scheduler creates and retires units toward a target count and returns
// the units currently active for the role.
type Scheduler interface {
	HeadCount(role string, body func() model.BodySpec, desired func() int, opts HeadCountOptions) []Defender
}

// Capacity answers how many repetitions of a template a single unit can
// afford, never less than min.
type Capacity interface {
	MaxUnits(template model.BodySpec, min int) int
}

// resolverFunc adapts a plain function to ObjectResolver.
type resolverFunc func(id string) (model.Creep, bool)

func (f resolverFunc) Creep(id string) (model.Creep, bool) { return f(id) }

// ResolverFromCreeps indexes a set of snapshots by id.
func ResolverFromCreeps(sets ...[]model.Creep) ObjectResolver {
	byID := make(map[string]model.Creep)
	for _, set := range sets {
		for _, c := range set {
			byID[c.ID] = c
		}
	}
	return resolverFunc(func(id string) (model.Creep, bool) {
		c, ok := byID[id]
		return c, ok
	})
}
