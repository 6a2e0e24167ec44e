package model

import "strings"

// TickState is the snapshot the game sends once per tick.
type TickState struct {
	Tick      int        `json:"tick"`
	Player    string     `json:"player"`
	Locations []Location `json:"locations"`
}

// Location is one defended post as observed this tick. Hostiles, Allies and
// Structures are only populated when HasVision is true.
type Location struct {
	Name                string      `json:"name"`
	Operation           string      `json:"operation"`
	HasVision           bool        `json:"hasVision"`
	Hostiles            []Creep     `json:"hostiles"`
	Allies              []Creep     `json:"allies"`
	Structures          []Structure `json:"structures"`
	Rally               Position    `json:"rally"`
	InvaderLikely       bool        `json:"invaderLikely"`
	SpawnEnergyCapacity int         `json:"spawnEnergyCapacity"`
	Defenders           []Creep     `json:"defenders"`
}

// TowerCount counts active defensive structures.
func (l *Location) TowerCount() int {
	return countType(l.Structures, StructureTower)
}

// Creep is any unit, ours or hostile.
type Creep struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role,omitempty"`
	Owner       string      `json:"owner,omitempty"`
	Pos         Position    `json:"pos"`
	Hits        int         `json:"hits"`
	HitsMax     int         `json:"hitsMax"`
	TicksToLive int         `json:"ticksToLive"`
	Spawning    bool        `json:"spawning,omitempty"`
	Body        BodySpec    `json:"body,omitempty"`
	Memory      *HealMemory `json:"memory,omitempty"`
}

func (c Creep) TypeName() string { return c.Role }

// Hurt reports whether the creep is below its maximum hit points.
func (c Creep) Hurt() bool { return c.Hits < c.HitsMax }

// PartCount returns how many parts of type p the creep has.
func (c Creep) PartCount(p Part) int { return c.Body[p] }

// HealMemory is the per-defender record that survives across ticks.
// Only the heal target cache writes it.
type HealMemory struct {
	HealTargetID  string `json:"healTargetId,omitempty"`
	HealCheckTick int    `json:"healCheckTick,omitempty"`
	HealChecked   bool   `json:"healChecked,omitempty"`
}

// Structure is a building in a location.
type Structure struct {
	ID   string   `json:"id"`
	Type string   `json:"type"`
	Pos  Position `json:"pos"`
	Hits int      `json:"hits"`
}

func (s Structure) TypeName() string { return s.Type }

// StructureTower is the only structure type that counts as active defense.
const StructureTower = "tower"

// typed is satisfied by any model type with a TypeName accessor.
type typed interface {
	TypeName() string
}

// countType counts items whose TypeName matches t (case-insensitive).
func countType[T typed](items []T, t string) int {
	n := 0
	for _, item := range items {
		if strings.EqualFold(item.TypeName(), t) {
			n++
		}
	}
	return n
}

// CountRole counts creeps carrying the given role tag.
func CountRole(creeps []Creep, role string) int {
	return countType(creeps, role)
}
