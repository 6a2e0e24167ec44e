package rules

import "fmt"

// Sizing rule names.
const (
	RuleUndefendedFloor = "undefended-floor"
	RuleHostileRatio    = "hostile-ratio"
	RuleThreatPrespawn  = "threat-prespawn"
)

// CompileTuning generates the sizing rule list from a tuning. Conditions are
// built via fmt.Sprintf with interpolated values, so the compiler never
// generates invalid expr.
//
// The list reads top to bottom, first match wins:
//
//	undefended-floor  observed, not a mining post, no towers  → UndefendedFloor
//	hostile-ratio     observed with hostiles                  → ceil(hostiles / HostilesPerGuard)
//	threat-prespawn   nothing visible but an incursion likely → ThreatPrespawn
//	(baseline)                                                → 0
//
// An undefended post is pinned to the floor even while a raid would ask for
// more guards.
func CompileTuning(t Tuning) []*Rule {
	t.Validate()
	var rules []*Rule

	floor := t.UndefendedFloor
	rules = append(rules, &Rule{
		Name:         RuleUndefendedFloor,
		Priority:     300,
		Note:         "undefended post pinned to the floor, overrides hostile ratio",
		ConditionSrc: fmt.Sprintf(`HasVision && !IsOperation(%q) && Undefended()`, t.MiningOperation),
		Count:        func(SizingEnv) int { return floor },
	})

	perGuard := t.HostilesPerGuard
	rules = append(rules, &Rule{
		Name:         RuleHostileRatio,
		Priority:     200,
		Note:         "one guard per group of visible hostiles",
		ConditionSrc: `HostilesVisible()`,
		Count: func(env SizingEnv) int {
			return ceilDiv(env.HostileCount, perGuard)
		},
	})

	prespawn := t.ThreatPrespawn
	rules = append(rules, &Rule{
		Name:         RuleThreatPrespawn,
		Priority:     100,
		Note:         "pre-position a guard for a predicted incursion",
		ConditionSrc: `InvaderLikely && !HostilesVisible()`,
		Count:        func(SizingEnv) int { return prespawn },
	})

	return rules
}

// DefaultRules compiles the default tuning.
func DefaultRules() []*Rule {
	return CompileTuning(DefaultTuning())
}

func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
