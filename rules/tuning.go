package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every knob of the defense controller. The compiler maps the
// sizing fields to rule parameters; the rest is read by the defense package.
type Tuning struct {
	Name               string `yaml:"name" json:"name"`
	Role               string `yaml:"role" json:"role"`
	MiningOperation    string `yaml:"mining_operation" json:"mining_operation"`
	HostilesPerGuard   int    `yaml:"hostiles_per_guard" json:"hostiles_per_guard"`
	UndefendedFloor    int    `yaml:"undefended_floor" json:"undefended_floor"`
	ThreatPrespawn     int    `yaml:"threat_prespawn" json:"threat_prespawn"`
	PotencyCap         int    `yaml:"potency_cap" json:"potency_cap"`
	PrespawnTicks      int    `yaml:"prespawn_ticks" json:"prespawn_ticks"`
	HealRecheckTicks   int    `yaml:"heal_recheck_ticks" json:"heal_recheck_ticks"`
	MinAllyTicksToLive int    `yaml:"min_ally_ticks_to_live" json:"min_ally_ticks_to_live"`
	IdleRadius         int    `yaml:"idle_radius" json:"idle_radius"`
	DiagnosticTicks    int    `yaml:"diagnostic_ticks" json:"diagnostic_ticks"`
}

// MaxPotency bounds the per-unit loadout multiplier no matter what the
// tuning file asks for.
const MaxPotency = 3

// DefaultTuning returns the baseline used when no tuning file is given.
func DefaultTuning() Tuning {
	return Tuning{
		Name:               "bodyguard",
		Role:               "leeroy",
		MiningOperation:    "mining",
		HostilesPerGuard:   2,
		UndefendedFloor:    1,
		ThreatPrespawn:     1,
		PotencyCap:         MaxPotency,
		PrespawnTicks:      50,
		HealRecheckTicks:   25,
		MinAllyTicksToLive: 100,
		IdleRadius:         12,
		DiagnosticTicks:    100,
	}
}

// Validate clamps every field to its valid range and fills empty names.
func (t *Tuning) Validate() {
	def := DefaultTuning()
	if t.Name == "" {
		t.Name = def.Name
	}
	if t.Role == "" {
		t.Role = def.Role
	}
	if t.MiningOperation == "" {
		t.MiningOperation = def.MiningOperation
	}
	t.HostilesPerGuard = clampInt(t.HostilesPerGuard, 1, 10)
	t.UndefendedFloor = clampInt(t.UndefendedFloor, 0, 5)
	t.ThreatPrespawn = clampInt(t.ThreatPrespawn, 0, 5)
	t.PotencyCap = clampInt(t.PotencyCap, 1, MaxPotency)
	t.PrespawnTicks = clampInt(t.PrespawnTicks, 0, 300)
	t.HealRecheckTicks = clampInt(t.HealRecheckTicks, 1, 500)
	t.MinAllyTicksToLive = clampInt(t.MinAllyTicksToLive, 0, 1500)
	t.IdleRadius = clampInt(t.IdleRadius, 1, 25)
	t.DiagnosticTicks = clampInt(t.DiagnosticTicks, 1, 10000)
}

// LoadTuning reads a YAML tuning file. Fields missing from the file keep
// their defaults; the result is validated.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("parse tuning %s: %w", path, err)
	}
	t.Validate()
	return t, nil
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
