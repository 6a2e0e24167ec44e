package defense

import (
	"github.com/nstehr/vimy/vimy-guard/model"
	"github.com/nstehr/vimy/vimy-guard/rules"
)

// GuardTemplate is one repetition of the guard body: armor, mobility, melee
// and a single heal part in a 1:5:3:1 ratio.
func GuardTemplate() model.BodySpec {
	return model.BodySpec{
		model.Tough:  1,
		model.Move:   5,
		model.Attack: 3,
		model.Heal:   1,
	}
}

// LoadoutBuilder scales the guard template by what production can afford,
// capped so one oversized guard can't starve the rest of production.
type LoadoutBuilder struct {
	Cap int
}

// NewLoadoutBuilder reads the potency cap from t.
func NewLoadoutBuilder(t rules.Tuning) *LoadoutBuilder {
	return &LoadoutBuilder{Cap: t.PotencyCap}
}

// Potency returns the multiplier clamped to [0, Cap].
func (l *LoadoutBuilder) Potency(c Capacity) int {
	limit := min(max(l.Cap, 0), rules.MaxPotency)
	if c == nil {
		return 0
	}
	return min(max(c.MaxUnits(GuardTemplate(), 1), 0), limit)
}

// Build returns the guard body for the current capacity and the multiplier
// it was scaled by. Capacity is queried once.
func (l *LoadoutBuilder) Build(c Capacity) (model.BodySpec, int) {
	p := l.Potency(c)
	return GuardTemplate().Scale(p), p
}
