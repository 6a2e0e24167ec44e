package defense

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-guard/model"
	"github.com/nstehr/vimy/vimy-guard/rules"
)

// State is the behavior branch a defender took this tick.
type State int

const (
	StateNoThreat State = iota + 1 // no vision or no hostiles
	StateEngaging                  // at least one hostile visible
)

func (s State) String() string {
	switch s {
	case StateNoThreat:
		return "no-threat"
	case StateEngaging:
		return "engaging"
	}
	return "unknown"
}

// Action is the main thing a defender did this tick.
type Action string

const (
	ActionNone       Action = ""
	ActionSelfHeal   Action = "self-heal"
	ActionIdle       Action = "idle"
	ActionHealAlly   Action = "heal-ally"
	ActionRangedHeal Action = "ranged-heal-ally"
	ActionSeekAlly   Action = "seek-ally"
	ActionApproach   Action = "approach"
	ActionAttack     Action = "attack"
	ActionPress      Action = "press" // in melee range but the attack was refused
)

// Outcome records one defender's decision.
type Outcome struct {
	State      State
	Action     Action
	SelfHealed bool // a self-heal accompanied the main action
}

// Behavior picks a defender's action each tick. Decisions only read the
// location snapshot and only write the defender's own memory, so defenders
// can be stepped in any order.
type Behavior struct {
	Heal       *HealTargetCache
	IdleRadius int
}

// NewBehavior builds the state machine from a tuning.
func NewBehavior(t rules.Tuning) *Behavior {
	return &Behavior{
		Heal:       NewHealTargetCache(t),
		IdleRadius: t.IdleRadius,
	}
}

// Step runs one tick for d.
func (b *Behavior) Step(w World, d Defender, loc *model.Location) Outcome {
	if loc == nil || !loc.HasVision || len(loc.Hostiles) == 0 {
		return b.noThreat(w, d, loc)
	}
	return b.engage(d, loc.Hostiles)
}

func (b *Behavior) noThreat(w World, d Defender, loc *model.Location) Outcome {
	self := d.Creep()
	if self.Hurt() {
		order(self, "heal", d.Heal(self))
		return Outcome{State: StateNoThreat, Action: ActionSelfHeal, SelfHealed: true}
	}
	if loc == nil {
		return Outcome{State: StateNoThreat}
	}
	return Outcome{State: StateNoThreat, Action: b.healOrIdle(w, d, self, loc)}
}

func (b *Behavior) healOrIdle(w World, d Defender, self model.Creep, loc *model.Location) Action {
	ally, ok := b.Heal.Resolve(w, d, loc)
	if !ok {
		order(self, "idle", d.IdleNear(loc.Rally, b.IdleRadius))
		return ActionIdle
	}

	r, _ := self.Pos.RangeTo(ally.Pos)
	if r > 1 {
		order(self, "travel", d.TravelTo(ally.Pos, TravelOptions{MovingTarget: true}))
	} else {
		order(self, "yield", d.YieldRoad(ally))
	}

	switch {
	case r <= 1:
		order(self, "heal", d.Heal(ally))
		return ActionHealAlly
	case r <= 3:
		order(self, "ranged-heal", d.RangedHeal(ally))
		return ActionRangedHeal
	}
	return ActionSeekAlly
}

func (b *Behavior) engage(d Defender, hostiles []model.Creep) Outcome {
	self := d.Creep()
	out := Outcome{State: StateEngaging}

	attacking := false
	if closest := model.ClosestByRange(self.Pos, hostiles); closest != nil {
		r, _ := self.Pos.RangeTo(closest.Pos)
		if r > 1 {
			order(self, "travel", d.TravelTo(closest.Pos, TravelOptions{}))
			out.Action = ActionApproach
		} else {
			err := d.Attack(*closest)
			order(self, "attack", err)
			attacking = err == nil
			if dir := self.Pos.DirectionTo(closest.Pos); dir != 0 {
				order(self, "move", d.Move(dir))
			}
			out.Action = ActionPress
			if attacking {
				out.Action = ActionAttack
			}
		}
	} else {
		// nothing resolvable in our location; head for the first sighting
		order(self, "travel", d.TravelTo(hostiles[0].Pos, TravelOptions{}))
		out.Action = ActionApproach
	}

	if !attacking && self.Hurt() {
		order(self, "heal", d.Heal(self))
		out.SelfHealed = true
	}
	return out
}

// order logs refused orders. Refusals are never retried within a tick; the
// next tick re-evaluates from scratch.
func order(self model.Creep, kind string, err error) {
	if err != nil {
		slog.Debug("defender order refused", "creep", self.Name, "order", kind, "error", err)
	}
}
