package model

// Position is a tile inside a named location (room). Ranges are only
// defined between positions in the same location.
type Position struct {
	Room string `json:"room"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Direction is one of the eight compass moves, numbered clockwise from Top
// to match the game's constants.
type Direction int

const (
	Top         Direction = 1
	TopRight    Direction = 2
	Right       Direction = 3
	BottomRight Direction = 4
	Bottom      Direction = 5
	BottomLeft  Direction = 6
	Left        Direction = 7
	TopLeft     Direction = 8
)

// SameRoom reports whether both positions are in the same location.
func (p Position) SameRoom(q Position) bool {
	return p.Room == q.Room
}

// RangeTo returns the Chebyshev distance to q. ok is false when q is in a
// different location.
func (p Position) RangeTo(q Position) (int, bool) {
	if !p.SameRoom(q) {
		return 0, false
	}
	return max(abs(p.X-q.X), abs(p.Y-q.Y)), true
}

// DirectionTo returns the compass step that moves p closer to q.
// Returns 0 when the positions coincide or are in different locations.
func (p Position) DirectionTo(q Position) Direction {
	if !p.SameRoom(q) {
		return 0
	}
	dx := sign(q.X - p.X)
	dy := sign(q.Y - p.Y) // y grows downward
	switch {
	case dx == 0 && dy < 0:
		return Top
	case dx > 0 && dy < 0:
		return TopRight
	case dx > 0 && dy == 0:
		return Right
	case dx > 0 && dy > 0:
		return BottomRight
	case dx == 0 && dy > 0:
		return Bottom
	case dx < 0 && dy > 0:
		return BottomLeft
	case dx < 0 && dy == 0:
		return Left
	case dx < 0 && dy < 0:
		return TopLeft
	}
	return 0
}

// ClosestByRange returns the creep nearest to p. Creeps in other locations
// are skipped, so the result is nil when none share p's location.
func ClosestByRange(p Position, creeps []Creep) *Creep {
	var closest *Creep
	best := 0
	for i := range creeps {
		r, ok := p.RangeTo(creeps[i].Pos)
		if !ok {
			continue
		}
		if closest == nil || r < best {
			closest = &creeps[i]
			best = r
		}
	}
	return closest
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
