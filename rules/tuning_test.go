package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range tests {
		got := clampInt(tc.v, tc.min, tc.max)
		if got != tc.want {
			t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestDefaultTuning(t *testing.T) {
	tn := DefaultTuning()
	if tn.Role != "leeroy" {
		t.Errorf("Role = %q, want leeroy", tn.Role)
	}
	if tn.HealRecheckTicks != 25 {
		t.Errorf("HealRecheckTicks = %d, want 25", tn.HealRecheckTicks)
	}
	if tn.MinAllyTicksToLive != 100 {
		t.Errorf("MinAllyTicksToLive = %d, want 100", tn.MinAllyTicksToLive)
	}
	if tn.PotencyCap != 3 {
		t.Errorf("PotencyCap = %d, want 3", tn.PotencyCap)
	}
	if tn.PrespawnTicks != 50 {
		t.Errorf("PrespawnTicks = %d, want 50", tn.PrespawnTicks)
	}

	// Defaults are already valid.
	validated := tn
	validated.Validate()
	if validated != tn {
		t.Errorf("Validate changed defaults: %+v", validated)
	}
}

func TestValidate(t *testing.T) {
	tn := Tuning{
		HostilesPerGuard:   0,
		UndefendedFloor:    9,
		PotencyCap:         12,
		PrespawnTicks:      -5,
		HealRecheckTicks:   0,
		MinAllyTicksToLive: 5000,
		IdleRadius:         0,
	}
	tn.Validate()

	if tn.Role != "leeroy" || tn.MiningOperation != "mining" || tn.Name != "bodyguard" {
		t.Errorf("empty names not filled: %+v", tn)
	}
	if tn.HostilesPerGuard != 1 {
		t.Errorf("HostilesPerGuard = %d, want 1", tn.HostilesPerGuard)
	}
	if tn.UndefendedFloor != 5 {
		t.Errorf("UndefendedFloor = %d, want 5", tn.UndefendedFloor)
	}
	if tn.PotencyCap != MaxPotency {
		t.Errorf("PotencyCap = %d, want %d", tn.PotencyCap, MaxPotency)
	}
	if tn.PrespawnTicks != 0 {
		t.Errorf("PrespawnTicks = %d, want 0", tn.PrespawnTicks)
	}
	if tn.HealRecheckTicks != 1 {
		t.Errorf("HealRecheckTicks = %d, want 1", tn.HealRecheckTicks)
	}
	if tn.MinAllyTicksToLive != 1500 {
		t.Errorf("MinAllyTicksToLive = %d, want 1500", tn.MinAllyTicksToLive)
	}
	if tn.IdleRadius != 1 {
		t.Errorf("IdleRadius = %d, want 1", tn.IdleRadius)
	}
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		body := "name: raid-watch\nhostiles_per_guard: 3\npotency_cap: 9\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		tn, err := LoadTuning(path)
		if err != nil {
			t.Fatalf("LoadTuning: %v", err)
		}
		if tn.Name != "raid-watch" {
			t.Errorf("Name = %q", tn.Name)
		}
		if tn.HostilesPerGuard != 3 {
			t.Errorf("HostilesPerGuard = %d, want 3", tn.HostilesPerGuard)
		}
		if tn.PotencyCap != MaxPotency {
			t.Errorf("PotencyCap = %d, want clamped %d", tn.PotencyCap, MaxPotency)
		}
		if tn.HealRecheckTicks != 25 {
			t.Errorf("HealRecheckTicks = %d, want default 25", tn.HealRecheckTicks)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTuning(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("hostiles_per_guard: [1, 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		tn, err := LoadTuning(path)
		if err == nil {
			t.Error("expected parse error")
		}
		if tn != DefaultTuning() {
			t.Errorf("expected defaults on parse error, got %+v", tn)
		}
	})
}
