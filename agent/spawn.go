package agent

import (
	"log/slog"
	"strings"

	"github.com/nstehr/vimy/vimy-guard/defense"
	"github.com/nstehr/vimy/vimy-guard/ipc"
	"github.com/nstehr/vimy/vimy-guard/model"
)

// headCounter implements defense.Scheduler against the current tick's
// snapshot. The mod owns the spawn queue; we only tell it how many more
// units of which body the location needs.
type headCounter struct {
	tick      int
	loc       *model.Location
	request   *ipc.SpawnRequest
	recorders []*orderRecorder
}

var _ defense.Scheduler = (*headCounter)(nil)

// load points the scheduler at a fresh snapshot and drops last tick's output.
func (h *headCounter) load(tick int, loc *model.Location) {
	h.tick = tick
	h.loc = loc
	h.request = nil
	h.recorders = nil
}

// HeadCount returns every live unit tagged with role. Units still spawning
// count toward the headcount but can't take orders yet; units close enough
// to expiry that a replacement would arrive late don't count at all.
func (h *headCounter) HeadCount(role string, body func() model.BodySpec, desired func() int, opts defense.HeadCountOptions) []defense.Defender {
	if h.loc == nil {
		return nil
	}

	counted := 0
	var active []defense.Defender
	for _, c := range h.loc.Defenders {
		if !strings.EqualFold(c.Role, role) {
			continue
		}
		if c.Spawning {
			counted++
			continue
		}
		if c.TicksToLive > opts.PrespawnTicks {
			counted++
		}
		r := newOrderRecorder(c)
		h.recorders = append(h.recorders, r)
		active = append(active, r)
	}

	want := desired()
	req := &ipc.SpawnRequest{
		Role:          role,
		Desired:       want,
		Active:        counted,
		PrespawnTicks: opts.PrespawnTicks,
	}
	if need := want - counted; need > 0 {
		b := body()
		if b.Size() == 0 {
			slog.Debug("spawn skipped, no affordable body", "location", h.loc.Name, "role", role, "need", need)
		} else {
			req.Spawn = need
			req.Body = b.Parts()
		}
	}
	h.request = req
	return active
}

// orders collects the queued orders and heal memory of every defender
// handed out this tick.
func (h *headCounter) orders() ([]ipc.Order, map[string]model.HealMemory) {
	orders := []ipc.Order{}
	var memory map[string]model.HealMemory
	for _, r := range h.recorders {
		orders = append(orders, r.orders...)
		if r.mem == (model.HealMemory{}) {
			continue
		}
		if memory == nil {
			memory = make(map[string]model.HealMemory)
		}
		memory[r.self.ID] = r.mem
	}
	return orders, memory
}

// spawnCapacity answers how many copies of a template the location's spawn
// energy can pay for, within the per-unit part limit.
type spawnCapacity struct {
	energy int
}

var _ defense.Capacity = (*spawnCapacity)(nil)

func (s *spawnCapacity) MaxUnits(template model.BodySpec, floor int) int {
	size, cost := template.Size(), template.Cost()
	if size == 0 || cost == 0 {
		return floor
	}
	return max(floor, min(s.energy/cost, model.MaxBodyParts/size))
}
