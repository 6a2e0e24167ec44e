package defense

import (
	"cmp"
	"slices"

	"github.com/nstehr/vimy/vimy-guard/model"
	"github.com/nstehr/vimy/vimy-guard/rules"
)

// HealTargetCache remembers which wounded ally a defender is tending, in the
// defender's own memory record. Scanning every friendly unit is the costly
// part, so a fresh scan only runs once per RecheckTicks.
type HealTargetCache struct {
	RecheckTicks   int // minimum ticks between scans
	MinTicksToLive int // allies about to expire are not worth healing
}

// NewHealTargetCache reads the cadence and lifetime margin from t.
func NewHealTargetCache(t rules.Tuning) *HealTargetCache {
	return &HealTargetCache{
		RecheckTicks:   t.HealRecheckTicks,
		MinTicksToLive: t.MinAllyTicksToLive,
	}
}

// Resolve returns the ally d should heal this tick, if any.
//
// A cached id is returned as long as it still resolves to a hurt ally in the
// defender's location. A stale id is cleared and the call falls through to
// the scan branch exactly once.
func (c *HealTargetCache) Resolve(w World, d Defender, loc *model.Location) (model.Creep, bool) {
	if loc == nil || !loc.HasVision {
		return model.Creep{}, false
	}
	self := d.Creep()
	mem := d.Memory()
	if mem == nil {
		mem = &model.HealMemory{} // nothing persists; still answer this tick
	}

	if mem.HealTargetID != "" {
		if ally, ok := c.cached(w, self, mem.HealTargetID); ok {
			return ally, true
		}
		mem.HealTargetID = ""
	}

	if !c.scanDue(w.Tick, mem) {
		return model.Creep{}, false
	}
	mem.HealCheckTick = w.Tick
	mem.HealChecked = true

	ally, ok := c.scan(self, loc.Allies, loc.Defenders)
	if !ok {
		return model.Creep{}, false
	}
	mem.HealTargetID = ally.ID
	return ally, true
}

func (c *HealTargetCache) cached(w World, self model.Creep, id string) (model.Creep, bool) {
	if w.Objects == nil {
		return model.Creep{}, false
	}
	ally, ok := w.Objects.Creep(id)
	if !ok || !ally.Pos.SameRoom(self.Pos) || !ally.Hurt() {
		return model.Creep{}, false
	}
	return ally, true
}

func (c *HealTargetCache) scanDue(tick int, mem *model.HealMemory) bool {
	return !mem.HealChecked || tick-mem.HealCheckTick >= c.RecheckTicks
}

// scan picks the hurt friendly unit with the most work parts across every
// group, fellow guards included; the first one seen wins ties.
func (c *HealTargetCache) scan(self model.Creep, groups ...[]model.Creep) (model.Creep, bool) {
	var candidates []model.Creep
	for _, group := range groups {
		for _, a := range group {
			if a.ID == self.ID || !a.Pos.SameRoom(self.Pos) {
				continue
			}
			if a.Hurt() && a.TicksToLive > c.MinTicksToLive {
				candidates = append(candidates, a)
			}
		}
	}
	if len(candidates) == 0 {
		return model.Creep{}, false
	}
	return slices.MaxFunc(candidates, func(a, b model.Creep) int {
		return cmp.Compare(a.PartCount(model.Work), b.PartCount(model.Work))
	}), true
}
