package agent

import (
	"errors"
	"fmt"

	"github.com/nstehr/vimy/vimy-guard/defense"
	"github.com/nstehr/vimy/vimy-guard/ipc"
	"github.com/nstehr/vimy/vimy-guard/model"
)

// Engagement ranges mirror the game's action ranges.
const (
	meleeRange      = 1
	rangedHealRange = 3
)

var errNotInRange = errors.New("target not in range")

// orderRecorder is the sidecar's Defender: instead of acting it queues
// orders for the mod to execute, and refuses the ones the game would
// reject so the behavior sees the same outcome it would in game.
type orderRecorder struct {
	self   model.Creep
	mem    model.HealMemory
	orders []ipc.Order
}

var _ defense.Defender = (*orderRecorder)(nil)

func newOrderRecorder(c model.Creep) *orderRecorder {
	r := &orderRecorder{self: c}
	if c.Memory != nil {
		r.mem = *c.Memory
	}
	return r
}

func (r *orderRecorder) Creep() model.Creep        { return r.self }
func (r *orderRecorder) Memory() *model.HealMemory { return &r.mem }

func (r *orderRecorder) within(target model.Creep, maxRange int) bool {
	rng, ok := r.self.Pos.RangeTo(target.Pos)
	return ok && rng <= maxRange
}

func (r *orderRecorder) push(o ipc.Order) {
	o.Creep = r.self.ID
	r.orders = append(r.orders, o)
}

func (r *orderRecorder) Attack(target model.Creep) error {
	if !r.within(target, meleeRange) {
		return fmt.Errorf("attack %s: %w", target.ID, errNotInRange)
	}
	r.push(ipc.Order{Kind: ipc.OrderAttack, Target: target.ID})
	return nil
}

func (r *orderRecorder) Heal(target model.Creep) error {
	if !r.within(target, meleeRange) {
		return fmt.Errorf("heal %s: %w", target.ID, errNotInRange)
	}
	r.push(ipc.Order{Kind: ipc.OrderHeal, Target: target.ID})
	return nil
}

func (r *orderRecorder) RangedHeal(target model.Creep) error {
	if !r.within(target, rangedHealRange) {
		return fmt.Errorf("ranged heal %s: %w", target.ID, errNotInRange)
	}
	r.push(ipc.Order{Kind: ipc.OrderRangedHeal, Target: target.ID})
	return nil
}

func (r *orderRecorder) Move(dir model.Direction) error {
	if dir < model.Top || dir > model.TopLeft {
		return fmt.Errorf("move: invalid direction %d", dir)
	}
	r.push(ipc.Order{Kind: ipc.OrderMove, Direction: int(dir)})
	return nil
}

func (r *orderRecorder) TravelTo(pos model.Position, opts defense.TravelOptions) error {
	r.push(ipc.Order{Kind: ipc.OrderTravel, Pos: &pos, MovingTarget: opts.MovingTarget})
	return nil
}

func (r *orderRecorder) YieldRoad(target model.Creep) error {
	r.push(ipc.Order{Kind: ipc.OrderYield, Target: target.ID})
	return nil
}

func (r *orderRecorder) IdleNear(pos model.Position, radius int) error {
	r.push(ipc.Order{Kind: ipc.OrderIdle, Pos: &pos, Radius: radius})
	return nil
}
