package defense_test

import (
	"testing"

	"github.com/nstehr/vimy/vimy-guard/defense"
	"github.com/nstehr/vimy/vimy-guard/defense/mocks"
	"github.com/nstehr/vimy/vimy-guard/model"
	"github.com/nstehr/vimy/vimy-guard/rules"
	"go.uber.org/mock/gomock"
)

const room = "W5N3"

func pos(x, y int) model.Position { return model.Position{Room: room, X: x, Y: y} }

type threatFlag bool

func (f threatFlag) InvaderLikely() bool { return bool(f) }

func newMission(t *testing.T, sched defense.Scheduler, capacity defense.Capacity, threat defense.ThreatSignal) *defense.Mission {
	t.Helper()
	engine, err := rules.NewEngine(rules.DefaultRules())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return defense.NewMission(defense.MissionConfig{
		Location:  room,
		Tuning:    rules.DefaultTuning(),
		Sizer:     engine,
		Scheduler: sched,
		Capacity:  capacity,
		Threat:    threat,
	})
}

func TestMissionRunDefendedPostUnderRaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	capacity := mocks.NewMockCapacity(ctrl)

	near := defense.NewFakeDefender("g1", pos(10, 10), 100, 100)
	far := defense.NewFakeDefender("g2", pos(30, 30), 100, 100)

	loc := &model.Location{
		Name:       room,
		Operation:  "defense",
		HasVision:  true,
		Structures: []model.Structure{{ID: "t1", Type: model.StructureTower}},
		Hostiles: []model.Creep{
			{ID: "h1", Pos: pos(11, 10), Hits: 100, HitsMax: 100},
			{ID: "h2", Pos: pos(12, 12), Hits: 100, HitsMax: 100},
			{ID: "h3", Pos: pos(13, 12), Hits: 100, HitsMax: 100},
		},
	}

	capacity.EXPECT().MaxUnits(defense.GuardTemplate(), 1).Return(7)
	sched.EXPECT().
		HeadCount("leeroy", gomock.Any(), gomock.Any(), defense.HeadCountOptions{PrespawnTicks: 50}).
		DoAndReturn(func(role string, body func() model.BodySpec, desired func() int, opts defense.HeadCountOptions) []defense.Defender {
			if got := desired(); got != 2 {
				t.Errorf("desired() = %d, want ceil(3/2) = 2", got)
			}
			if got := body(); got[model.Move] != 15 || got[model.Attack] != 9 || got.Size() != 30 {
				t.Errorf("body() = %v, want template x3", got)
			}
			return []defense.Defender{near, far}
		})

	report := newMission(t, sched, capacity, nil).Run(defense.World{Tick: 100}, loc)

	if report.Desired != 2 || report.Rule != rules.RuleHostileRatio {
		t.Errorf("unexpected sizing %d via %q", report.Desired, report.Rule)
	}
	if report.Potency != 3 || report.Defenders != 2 {
		t.Errorf("unexpected report %+v", report)
	}
	if report.States[defense.StateEngaging] != 2 {
		t.Errorf("expected both defenders engaging, got %v", report.States)
	}
	if report.Actions[defense.ActionAttack] != 1 || report.Actions[defense.ActionApproach] != 1 {
		t.Errorf("unexpected actions %v", report.Actions)
	}
	if len(near.Calls) == 0 || near.Calls[0] != "attack:h1" {
		t.Errorf("near defender should attack h1, got %v", near.Calls)
	}
	if len(far.Calls) != 1 || far.Calls[0] != "travel:12,12" {
		t.Errorf("far defender should travel to closest hostile, got %v", far.Calls)
	}
}

func TestMissionRunUndefendedSentry(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	capacity := mocks.NewMockCapacity(ctrl)

	guard := defense.NewFakeDefender("g1", pos(10, 10), 100, 100)
	loc := &model.Location{Name: room, Operation: "defense", HasVision: true, Rally: pos(20, 21)}

	capacity.EXPECT().MaxUnits(gomock.Any(), 1).Return(1)
	sched.EXPECT().
		HeadCount("leeroy", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, _ func() model.BodySpec, desired func() int, _ defense.HeadCountOptions) []defense.Defender {
			if got := desired(); got != 1 {
				t.Errorf("desired() = %d, want 1", got)
			}
			return []defense.Defender{guard}
		})

	report := newMission(t, sched, capacity, nil).Run(defense.World{Tick: 5}, loc)
	if report.Rule != rules.RuleUndefendedFloor {
		t.Errorf("Rule = %q, want %q", report.Rule, rules.RuleUndefendedFloor)
	}
	if report.Actions[defense.ActionIdle] != 1 {
		t.Errorf("sentry should idle, got %v", report.Actions)
	}
	if len(guard.Calls) != 1 || guard.Calls[0] != "idle:20,21:12" {
		t.Errorf("unexpected calls %v", guard.Calls)
	}
}

func TestMissionRunThreatSignalWhileBlind(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	capacity := mocks.NewMockCapacity(ctrl)

	loc := &model.Location{Name: room, Operation: "mining", HasVision: false}

	capacity.EXPECT().MaxUnits(gomock.Any(), gomock.Any()).Return(0)
	sched.EXPECT().
		HeadCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, body func() model.BodySpec, desired func() int, _ defense.HeadCountOptions) []defense.Defender {
			if got := desired(); got != 1 {
				t.Errorf("desired() = %d, want 1 from threat signal", got)
			}
			if got := body().Size(); got != 0 {
				t.Errorf("body size = %d, want 0 when nothing is affordable", got)
			}
			return nil
		})

	report := newMission(t, sched, capacity, threatFlag(true)).Run(defense.World{Tick: 9}, loc)
	if report.Rule != rules.RuleThreatPrespawn || report.Defenders != 0 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestMissionRunQuietMiningPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	capacity := mocks.NewMockCapacity(ctrl)

	loc := &model.Location{Name: room, Operation: "mining", HasVision: true}

	capacity.EXPECT().MaxUnits(gomock.Any(), gomock.Any()).Return(2)
	sched.EXPECT().
		HeadCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, _ func() model.BodySpec, desired func() int, _ defense.HeadCountOptions) []defense.Defender {
			if got := desired(); got != 0 {
				t.Errorf("desired() = %d, want 0", got)
			}
			return nil
		})

	report := newMission(t, sched, capacity, threatFlag(false)).Run(defense.World{Tick: 9}, loc)
	if report.Desired != 0 || report.Rule != "" {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestMissionRunNilLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)
	capacity := mocks.NewMockCapacity(ctrl)

	healthy := defense.NewFakeDefender("g1", pos(10, 10), 100, 100)
	hurt := defense.NewFakeDefender("g2", pos(12, 10), 30, 100)

	capacity.EXPECT().MaxUnits(gomock.Any(), 1).Return(2)
	sched.EXPECT().
		HeadCount("leeroy", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, _ func() model.BodySpec, desired func() int, _ defense.HeadCountOptions) []defense.Defender {
			if got := desired(); got != 0 {
				t.Errorf("desired() = %d, want baseline 0", got)
			}
			return []defense.Defender{healthy, hurt}
		})

	report := newMission(t, sched, capacity, nil).Run(defense.World{Tick: 1}, nil)
	if report.Desired != 0 || report.Rule != "" || report.Potency != 2 {
		t.Errorf("unexpected report %+v", report)
	}
	if report.States[defense.StateNoThreat] != 2 {
		t.Errorf("expected both defenders in no-threat, got %v", report.States)
	}
	if len(healthy.Calls) != 0 {
		t.Errorf("healthy defender should stand by, got %v", healthy.Calls)
	}
	if len(hurt.Calls) != 1 || hurt.Calls[0] != "heal:g2" {
		t.Errorf("hurt defender should heal itself, got %v", hurt.Calls)
	}
}
