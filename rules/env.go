package rules

import (
	"strings"

	"github.com/nstehr/vimy/vimy-guard/model"
)

// SizingEnv is the per-tick view the sizing rules are evaluated against.
// Fields and methods are callable from expr conditions.
type SizingEnv struct {
	Tick          int
	HasVision     bool
	HostileCount  int
	TowerCount    int
	Operation     string
	InvaderLikely bool
}

// NewSizingEnv builds the environment for one location. Hostiles are only
// counted while the location is observed; stale sightings are ignored. A nil
// location reads as unobserved.
func NewSizingEnv(tick int, loc *model.Location) SizingEnv {
	if loc == nil {
		return SizingEnv{Tick: tick}
	}
	env := SizingEnv{
		Tick:          tick,
		HasVision:     loc.HasVision,
		Operation:     loc.Operation,
		InvaderLikely: loc.InvaderLikely,
	}
	if loc.HasVision {
		env.HostileCount = len(loc.Hostiles)
		env.TowerCount = loc.TowerCount()
	}
	return env
}

// HostilesVisible is true only when the location is observed and holds at
// least one hostile.
func (e SizingEnv) HostilesVisible() bool {
	return e.HasVision && e.HostileCount > 0
}

// IsOperation compares the operation tag case-insensitively.
func (e SizingEnv) IsOperation(kind string) bool {
	return strings.EqualFold(e.Operation, kind)
}

// Undefended is true when no defensive structure is active.
func (e SizingEnv) Undefended() bool {
	return e.TowerCount == 0
}
