package defense

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-guard/model"
)

const testRoom = "W1N1"

func at(x, y int) model.Position {
	return model.Position{Room: testRoom, X: x, Y: y}
}

// FakeDefender records every order it receives. Exported so the external
// mission tests can share it.
type FakeDefender struct {
	Self      model.Creep
	Mem       model.HealMemory
	AttackErr error
	Calls     []string
}

func NewFakeDefender(name string, pos model.Position, hits, hitsMax int) *FakeDefender {
	return &FakeDefender{Self: model.Creep{
		ID:          name,
		Name:        name,
		Role:        "leeroy",
		Pos:         pos,
		Hits:        hits,
		HitsMax:     hitsMax,
		TicksToLive: 1000,
	}}
}

func (f *FakeDefender) Creep() model.Creep        { return f.Self }
func (f *FakeDefender) Memory() *model.HealMemory { return &f.Mem }

func (f *FakeDefender) Attack(target model.Creep) error {
	f.Calls = append(f.Calls, "attack:"+target.ID)
	return f.AttackErr
}

func (f *FakeDefender) Heal(target model.Creep) error {
	f.Calls = append(f.Calls, "heal:"+target.ID)
	return nil
}

func (f *FakeDefender) RangedHeal(target model.Creep) error {
	f.Calls = append(f.Calls, "ranged-heal:"+target.ID)
	return nil
}

func (f *FakeDefender) Move(dir model.Direction) error {
	f.Calls = append(f.Calls, fmt.Sprintf("move:%d", dir))
	return nil
}

func (f *FakeDefender) TravelTo(pos model.Position, opts TravelOptions) error {
	call := fmt.Sprintf("travel:%d,%d", pos.X, pos.Y)
	if opts.MovingTarget {
		call += ":moving"
	}
	f.Calls = append(f.Calls, call)
	return nil
}

func (f *FakeDefender) YieldRoad(target model.Creep) error {
	f.Calls = append(f.Calls, "yield:"+target.ID)
	return nil
}

func (f *FakeDefender) IdleNear(pos model.Position, radius int) error {
	f.Calls = append(f.Calls, fmt.Sprintf("idle:%d,%d:%d", pos.X, pos.Y, radius))
	return nil
}
