package agent

import (
	"fmt"
	"maps"
	"slices"

	"github.com/nstehr/vimy/vimy-guard/model"
)

// EventKind identifies a change in a location's threat picture worth logging.
type EventKind string

const (
	EventFirstContact  EventKind = "first_contact"
	EventThreatCleared EventKind = "threat_cleared"
	EventVisionLost    EventKind = "vision_lost"
	EventDefenderLost  EventKind = "defender_lost"
)

// Event is detected by diffing consecutive snapshots of one location.
type Event struct {
	Kind     EventKind
	Tick     int
	Location string
	Detail   string
}

// locationSnapshot captures the diffable fields of a location. Without
// vision the hostile count is carried forward from the last observation.
type locationSnapshot struct {
	vision    bool
	hostiles  int
	defenders map[string]int // id → ticks to live
}

func takeSnapshot(loc *model.Location, prev *locationSnapshot) locationSnapshot {
	snap := locationSnapshot{
		vision:    loc.HasVision,
		defenders: make(map[string]int, len(loc.Defenders)),
	}
	if loc.HasVision {
		snap.hostiles = len(loc.Hostiles)
	} else if prev != nil {
		snap.hostiles = prev.hostiles
	}
	for _, d := range loc.Defenders {
		snap.defenders[d.ID] = d.TicksToLive
	}
	return snap
}

// detectEvents compares the location against the previous snapshot.
// Returns nil on the first observation.
func detectEvents(tick int, loc *model.Location, prev *locationSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event
	add := func(kind EventKind, detail string) {
		events = append(events, Event{Kind: kind, Tick: tick, Location: loc.Name, Detail: detail})
	}

	if loc.HasVision {
		hostiles := len(loc.Hostiles)
		switch {
		case prev.hostiles == 0 && hostiles > 0:
			add(EventFirstContact, fmt.Sprintf("%d hostiles sighted", hostiles))
		case prev.hostiles > 0 && hostiles == 0:
			add(EventThreatCleared, fmt.Sprintf("%d hostiles gone", prev.hostiles))
		}
	} else if prev.vision && prev.hostiles > 0 {
		add(EventVisionLost, fmt.Sprintf("lost sight with %d hostiles present", prev.hostiles))
	}

	present := make(map[string]bool, len(loc.Defenders))
	for _, d := range loc.Defenders {
		present[d.ID] = true
	}
	for _, id := range slices.Sorted(maps.Keys(prev.defenders)) {
		ttl := prev.defenders[id]
		// A unit that was about to expire just aged out.
		if present[id] || ttl <= 1 {
			continue
		}
		add(EventDefenderLost, fmt.Sprintf("%s lost with %d ticks to live", id, ttl))
	}

	return events
}

// locationWatch tracks one location across ticks. It doubles as the
// mission's threat signal: after losing sight of hostiles the location is
// treated as threatened until vision returns.
type locationWatch struct {
	prev          *locationSnapshot
	invaderLikely bool
}

func (w *locationWatch) Observe(tick int, loc *model.Location) []Event {
	events := detectEvents(tick, loc, w.prev)
	for _, e := range events {
		if e.Kind == EventVisionLost {
			w.invaderLikely = true
		}
	}
	if loc.HasVision {
		w.invaderLikely = false
	}

	snap := takeSnapshot(loc, w.prev)
	w.prev = &snap
	return events
}

func (w *locationWatch) InvaderLikely() bool { return w.invaderLikely }
