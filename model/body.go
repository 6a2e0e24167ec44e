package model

import (
	"fmt"
	"slices"
	"strings"
)

// Part is a body part type.
type Part string

const (
	Tough        Part = "tough"
	Move         Part = "move"
	Attack       Part = "attack"
	Heal         Part = "heal"
	Work         Part = "work"
	Carry        Part = "carry"
	RangedAttack Part = "ranged_attack"
	Claim        Part = "claim"
)

// MaxBodyParts is the hard per-unit part limit enforced by the game.
const MaxBodyParts = 50

// PartCost is the spawn energy cost of each part.
var PartCost = map[Part]int{
	Tough:        10,
	Move:         50,
	Attack:       80,
	Heal:         250,
	Work:         100,
	Carry:        50,
	RangedAttack: 150,
	Claim:        600,
}

// partOrder is the order parts are laid out in when a spec is expanded,
// armor first so it absorbs damage before anything else.
var partOrder = []Part{Tough, Work, Carry, Attack, RangedAttack, Claim, Heal, Move}

// BodySpec is a body composition as part counts.
type BodySpec map[Part]int

// Scale returns a copy with every count multiplied by n.
func (b BodySpec) Scale(n int) BodySpec {
	out := make(BodySpec, len(b))
	for p, c := range b {
		out[p] = c * n
	}
	return out
}

// Size is the total number of parts.
func (b BodySpec) Size() int {
	n := 0
	for _, c := range b {
		n += c
	}
	return n
}

// Cost is the spawn energy needed for the whole body.
func (b BodySpec) Cost() int {
	n := 0
	for p, c := range b {
		n += PartCost[p] * c
	}
	return n
}

// Parts expands the spec into the ordered part list the spawn call expects.
func (b BodySpec) Parts() []Part {
	out := make([]Part, 0, b.Size())
	for _, p := range partOrder {
		for range b[p] {
			out = append(out, p)
		}
	}
	// unknown parts go last, sorted for a stable layout
	var extra []Part
	for p := range b {
		if !slices.Contains(partOrder, p) {
			extra = append(extra, p)
		}
	}
	slices.Sort(extra)
	for _, p := range extra {
		for range b[p] {
			out = append(out, p)
		}
	}
	return out
}

func (b BodySpec) String() string {
	var sb strings.Builder
	for _, p := range partOrder {
		if b[p] == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", p, b[p])
	}
	return sb.String()
}
