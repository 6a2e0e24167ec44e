package defense

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-guard/model"
	"github.com/nstehr/vimy/vimy-guard/rules"
)

// Sizer decides how many defenders a location wants this tick.
type Sizer interface {
	Evaluate(env rules.SizingEnv) rules.Decision
}

// Report summarizes one tick of a mission for logs and the wire reply.
type Report struct {
	Tick      int
	Location  string
	Desired   int
	Rule      string // sizing rule that decided Desired; empty for the baseline
	Potency   int
	Body      model.BodySpec
	Defenders int
	States    map[State]int
	Actions   map[Action]int
}

// Mission guards one location. Each tick it sizes the squad, builds the
// loadout, hands both to the scheduler, then steps every active defender.
type Mission struct {
	Location string

	role      string
	prespawn  int
	sizer     Sizer
	loadout   *LoadoutBuilder
	behavior  *Behavior
	scheduler Scheduler
	capacity  Capacity
	threat    ThreatSignal

	diagEvery    int
	lastDiagTick int
	diagnosed    bool
}

// MissionConfig wires a mission to its collaborators. Threat may be nil;
// the location snapshot's own InvaderLikely flag is always honored.
type MissionConfig struct {
	Location  string
	Tuning    rules.Tuning
	Sizer     Sizer
	Scheduler Scheduler
	Capacity  Capacity
	Threat    ThreatSignal
}

func NewMission(cfg MissionConfig) *Mission {
	t := cfg.Tuning
	t.Validate()
	return &Mission{
		Location:  cfg.Location,
		role:      t.Role,
		prespawn:  t.PrespawnTicks,
		sizer:     cfg.Sizer,
		loadout:   NewLoadoutBuilder(t),
		behavior:  NewBehavior(t),
		scheduler: cfg.Scheduler,
		capacity:  cfg.Capacity,
		threat:    cfg.Threat,
		diagEvery: t.DiagnosticTicks,
	}
}

// Run executes one tick against a fresh snapshot of the location.
func (m *Mission) Run(w World, loc *model.Location) Report {
	env := rules.NewSizingEnv(w.Tick, loc)
	if m.threat != nil && m.threat.InvaderLikely() {
		env.InvaderLikely = true
	}

	decision := m.sizer.Evaluate(env)
	body, potency := m.loadout.Build(m.capacity)

	defenders := m.scheduler.HeadCount(m.role,
		func() model.BodySpec { return body },
		func() int { return decision.Count },
		HeadCountOptions{PrespawnTicks: m.prespawn},
	)

	report := Report{
		Tick:      w.Tick,
		Location:  m.Location,
		Desired:   decision.Count,
		Rule:      decision.Rule,
		Potency:   potency,
		Body:      body,
		Defenders: len(defenders),
		States:    make(map[State]int),
		Actions:   make(map[Action]int),
	}

	for _, d := range defenders {
		out := m.behavior.Step(w, d, loc)
		report.States[out.State]++
		report.Actions[out.Action]++
	}

	slog.Debug("defense tick",
		"location", m.Location,
		"tick", w.Tick,
		"desired", report.Desired,
		"rule", report.Rule,
		"potency", potency,
		"defenders", report.Defenders,
	)
	m.logDiagnostics(report, env)
	return report
}

// logDiagnostics helps debug "why is this post unguarded?". Fires every
// diagEvery ticks regardless of activity.
func (m *Mission) logDiagnostics(r Report, env rules.SizingEnv) {
	if m.diagnosed && r.Tick-m.lastDiagTick < m.diagEvery {
		return
	}
	m.diagnosed = true
	m.lastDiagTick = r.Tick

	slog.Info("defense diagnostics",
		"location", m.Location,
		"vision", env.HasVision,
		"hostiles", env.HostileCount,
		"towers", env.TowerCount,
		"invaderLikely", env.InvaderLikely,
		"desired", r.Desired,
		"rule", r.Rule,
		"body", r.Body.String(),
		"defenders", r.Defenders,
		"engaging", r.States[StateEngaging],
		"idle", r.Actions[ActionIdle],
	)
}
