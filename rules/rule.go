package rules

import "github.com/expr-lang/expr/vm"

// CountFunc produces the desired defender count when a rule's condition holds.
type CountFunc func(env SizingEnv) int

// Rule is one entry of the sizing rule list: a condition → count pair.
// The engine evaluates rules by priority and the first match decides.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Note         string      // what the override does, logged when it fires
	ConditionSrc string      // expr source (preserved for serialization)
	program      *vm.Program // compiled bytecode
	Count        CountFunc
}
