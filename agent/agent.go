package agent

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nstehr/vimy/vimy-guard/defense"
	"github.com/nstehr/vimy/vimy-guard/ipc"
	"github.com/nstehr/vimy/vimy-guard/model"
	"github.com/nstehr/vimy/vimy-guard/rules"
)

// TuningSource supplies the live tuning and hears about game progress.
// *Tuner is the production implementation.
type TuningSource interface {
	Current() (rules.Tuning, int)
	ObserveTick(tick int)
}

// post is everything the agent keeps for one guarded location between ticks.
type post struct {
	mission  *defense.Mission
	sched    *headCounter
	capacity *spawnCapacity
	watch    *locationWatch
}

// Agent owns the defense decisions for a single player session.
type Agent struct {
	Conn    *ipc.Connection
	Session uuid.UUID
	Player  string
	Engine  *rules.Engine

	tuning  TuningSource
	version int
	posts   map[string]*post
}

func New(conn *ipc.Connection, engine *rules.Engine, tuning TuningSource) *Agent {
	return &Agent{
		Conn:    conn,
		Session: uuid.New(),
		Engine:  engine,
		tuning:  tuning,
		posts:   make(map[string]*post),
	}
}

// HandleHello completes the handshake so the mod knows the sidecar is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := env.Decode(&hello); err != nil {
		return nil, err
	}

	a.Player = hello.Player
	if a.Conn != nil {
		a.Conn.Player = hello.Player
	}
	slog.Info("player identified", "player", a.Player, "shard", hello.Shard, "session", a.Session)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", Session: a.Session.String()})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleTick runs every location's mission and replies with their orders.
func (a *Agent) HandleTick(env ipc.Envelope) (*ipc.Envelope, error) {
	var ts ipc.TickMessage
	if err := env.Decode(&ts); err != nil {
		return nil, err
	}
	if a.Player != "" && ts.Player != "" && ts.Player != a.Player {
		return nil, fmt.Errorf("tick for player %q on session of %q", ts.Player, a.Player)
	}

	orders := a.Tick(ts)
	resp, err := ipc.NewEnvelope(ipc.TypeOrders, orders)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tick runs one game tick across every reported location.
func (a *Agent) Tick(ts model.TickState) ipc.OrdersMessage {
	a.tuning.ObserveTick(ts.Tick)
	a.refreshTuning()
	tuning, _ := a.tuning.Current()

	var all [][]model.Creep
	for i := range ts.Locations {
		loc := &ts.Locations[i]
		all = append(all, loc.Allies, loc.Defenders, loc.Hostiles)
	}
	w := defense.World{Tick: ts.Tick, Objects: defense.ResolverFromCreeps(all...)}

	out := ipc.OrdersMessage{Tick: ts.Tick, Locations: make([]ipc.LocationOrders, 0, len(ts.Locations))}
	for i := range ts.Locations {
		loc := &ts.Locations[i]
		p := a.post(loc.Name)
		slog.Debug("location observed",
			"location", loc.Name,
			"tick", ts.Tick,
			"vision", loc.HasVision,
			"hostiles", len(loc.Hostiles),
			"guards", model.CountRole(loc.Defenders, tuning.Role),
		)

		for _, e := range p.watch.Observe(ts.Tick, loc) {
			slog.Info("encounter event", "kind", e.Kind, "location", e.Location, "tick", e.Tick, "detail", e.Detail)
		}

		p.sched.load(ts.Tick, loc)
		p.capacity.energy = loc.SpawnEnergyCapacity
		report := p.mission.Run(w, loc)

		orders, memory := p.sched.orders()
		out.Locations = append(out.Locations, ipc.LocationOrders{
			Location: loc.Name,
			Spawn:    p.sched.request,
			Orders:   orders,
			Memory:   memory,
			Rule:     report.Rule,
		})
	}
	return out
}

// refreshTuning drops every mission when the tuning changes so the next
// tick rebuilds them with the new role and loadout cap. Encounter history
// survives.
func (a *Agent) refreshTuning() {
	_, v := a.tuning.Current()
	if v == a.version {
		return
	}
	slog.Info("tuning changed, rebuilding missions", "player", a.Player, "version", v)
	a.version = v
	for _, p := range a.posts {
		p.mission = nil
	}
}

func (a *Agent) post(name string) *post {
	p, ok := a.posts[name]
	if !ok {
		p = &post{
			sched:    &headCounter{},
			capacity: &spawnCapacity{},
			watch:    &locationWatch{},
		}
		a.posts[name] = p
	}
	if p.mission == nil {
		t, _ := a.tuning.Current()
		p.mission = defense.NewMission(defense.MissionConfig{
			Location:  name,
			Tuning:    t,
			Sizer:     a.Engine,
			Scheduler: p.sched,
			Capacity:  p.capacity,
			Threat:    p.watch,
		})
	}
	return p
}
