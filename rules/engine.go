package rules

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Decision is the outcome of one sizing evaluation.
type Decision struct {
	Count int
	Rule  string // empty when no rule matched and the baseline applied
}

// Engine runs compiled sizing rules against a location each tick.
// Rules are checked in priority order and the first matching rule decides,
// so a higher-priority override always beats the rules below it.
type Engine struct {
	mu    sync.RWMutex
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// Evaluate returns the desired defender count for env. The baseline is 0.
func (e *Engine) Evaluate(env SizingEnv) Decision {
	e.mu.RLock()
	rules := e.rules
	e.mu.RUnlock()

	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		n := max(r.Count(env), 0)
		slog.Debug("sizing rule fired", "rule", r.Name, "priority", r.Priority, "count", n, "note", r.Note)
		return Decision{Count: n, Rule: r.Name}
	}
	return Decision{}
}

// DesiredCount is Evaluate without the rule name.
func (e *Engine) DesiredCount(env SizingEnv) int {
	return e.Evaluate(env).Count
}

// Swap atomically replaces the rule set (called by the tuning reloader).
// Compiles first; if compilation fails the old rules remain active.
func (e *Engine) Swap(newRules []*Rule) error {
	compiled, err := compileRules(newRules)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.rules = compiled
	e.mu.Unlock()
	slog.Info("sizing rule set swapped", "count", len(compiled), "rules", ruleNames(compiled))
	return nil
}

// RuleNames lists the active rules in evaluation order.
func (e *Engine) RuleNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ruleNames(e.rules)
}

func ruleNames(rules []*Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Count == nil {
			return nil, fmt.Errorf("rule %q has no count", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(SizingEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
