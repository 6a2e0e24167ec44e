package ipc

import "github.com/nstehr/vimy/vimy-guard/model"

// Order kinds. Must stay in sync with the mod's order executor.
const (
	OrderAttack     = "attack"
	OrderHeal       = "heal"
	OrderRangedHeal = "ranged_heal"
	OrderMove       = "move"
	OrderTravel     = "travel"
	OrderYield      = "yield"
	OrderIdle       = "idle"
)

// Order is one primitive action for one creep.
type Order struct {
	Creep        string          `json:"creep"`
	Kind         string          `json:"kind"`
	Target       string          `json:"target,omitempty"`
	Pos          *model.Position `json:"pos,omitempty"`
	Direction    int             `json:"direction,omitempty"`
	Radius       int             `json:"radius,omitempty"`
	MovingTarget bool            `json:"movingTarget,omitempty"`
}

// SpawnRequest asks the mod's scheduler to reconcile a role toward Desired.
type SpawnRequest struct {
	Role          string       `json:"role"`
	Desired       int          `json:"desired"`
	Active        int          `json:"active"`
	Spawn         int          `json:"spawn"`
	Body          []model.Part `json:"body"`
	PrespawnTicks int          `json:"prespawnTicks"`
}

// LocationOrders is the reply for one location.
type LocationOrders struct {
	Location string                      `json:"location"`
	Spawn    *SpawnRequest               `json:"spawn,omitempty"`
	Orders   []Order                     `json:"orders"`
	Memory   map[string]model.HealMemory `json:"memory,omitempty"`
	Rule     string                      `json:"rule,omitempty"`
}
