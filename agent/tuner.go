package agent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nstehr/vimy/vimy-guard/rules"
)

// Tuner runs in the background and reloads the tuning file every interval
// ticks, swapping the sizing rules into the shared engine. A bad file
// leaves the running rules and tuning untouched.
type Tuner struct {
	mu       sync.Mutex
	engine   *rules.Engine
	path     string
	interval int
	lastTick int
	seen     bool
	current  rules.Tuning
	version  int
	ready    chan struct{}
}

// NewTuner creates a tuner seeded with t. An empty path disables reloading.
func NewTuner(engine *rules.Engine, path string, interval int, t rules.Tuning) *Tuner {
	if interval <= 0 {
		interval = 500
	}
	t.Validate()
	return &Tuner{
		engine:   engine,
		path:     path,
		interval: interval,
		current:  t,
		ready:    make(chan struct{}, 1),
	}
}

// Current returns the active tuning and a version that changes on every
// successful reload.
func (t *Tuner) Current() (rules.Tuning, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.version
}

// ObserveTick records game progress and signals a reload on interval
// boundaries. Never blocks the tick handler.
func (t *Tuner) ObserveTick(tick int) {
	t.mu.Lock()
	if !t.seen {
		t.seen = true
		t.lastTick = tick
	}
	due := t.path != "" && tick-t.lastTick >= t.interval
	if due {
		t.lastTick = tick
	}
	t.mu.Unlock()

	if due {
		select {
		case t.ready <- struct{}{}:
		default:
		}
	}
}

// Start blocks until ctx is cancelled, reloading whenever a tick crosses the
// interval.
func (t *Tuner) Start(ctx context.Context) error {
	slog.Info("tuner started", "path", t.path, "interval", t.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("tuner stopped")
			return nil
		case <-t.ready:
			if err := t.Reload(); err != nil {
				slog.Error("tuning reload failed", "path", t.path, "error", err)
			}
		}
	}
}

// Reload reads the tuning file and swaps the compiled rules in.
func (t *Tuner) Reload() error {
	if t.path == "" {
		return nil
	}
	tuning, err := rules.LoadTuning(t.path)
	if err != nil {
		return err
	}
	if err := t.engine.Swap(rules.CompileTuning(tuning)); err != nil {
		return err
	}

	t.mu.Lock()
	changed := tuning != t.current
	t.current = tuning
	if changed {
		t.version++
	}
	t.mu.Unlock()

	slog.Info("tuning loaded",
		"name", tuning.Name,
		"role", tuning.Role,
		"hostilesPerGuard", tuning.HostilesPerGuard,
		"undefendedFloor", tuning.UndefendedFloor,
		"threatPrespawn", tuning.ThreatPrespawn,
		"potencyCap", tuning.PotencyCap,
		"prespawnTicks", tuning.PrespawnTicks,
		"changed", changed,
	)
	return nil
}
