package swarm

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swarm/internal/assets"
	"github.com/vovakirdan/swarm/internal/config"
	"github.com/vovakirdan/swarm/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// fixedRand returns the same value from every call.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

// seqRand replays a script of Float64 values, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

func (r *seqRand) Intn(n int) int { return 0 }

// noJitter never triggers a random heading change.
var noJitter = fixedRand{f: 0.99}

// pointTarget is a fixed chase target.
type pointTarget struct {
	at core.Vec
}

func (p pointTarget) TargetCenter() (core.Vec, bool) { return p.at, true }

// recordingAssets records played sounds and returns placeholders.
type recordingAssets struct {
	sounds []string
}

func (a *recordingAssets) Image(name string) assets.Sprite {
	return assets.Sprite{Glyph: '#', Color: core.ColorWhite, Placeholder: true}
}

func (a *recordingAssets) Font(name string) assets.Font { return assets.Font{Name: name} }

func (a *recordingAssets) PlaySound(name string) { a.sounds = append(a.sounds, name) }

func (a *recordingAssets) played(name string) bool {
	for _, s := range a.sounds {
		if s == name {
			return true
		}
	}
	return false
}

func testStats() StatsTable {
	return NewStatsTable(config.DefaultSwarmConfig().Enemies)
}

func testSteering() SteeringParams {
	cfg := config.DefaultSwarmConfig().Enemies
	return SteeringParams{DetectionFactor: cfg.DetectionFactor, AvoidForce: cfg.AvoidForce}
}

func testField() Field {
	return Field{W: 800, H: 600}
}

func newTestEnemy(kind EnemyType, pos core.Vec, heading float64, target Tracker) *Enemy {
	stats := testStats()
	return NewEnemy(kind, stats.Of(kind), pos, heading, target, testSteering())
}

func newTestSession(rng Rand, a Assets) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return newSession(config.DefaultSwarmConfig(), rng, a, log.New(io.Discard), time.Second/60)
}

func newTestGame(a Assets) *Game {
	g := NewWithOptions(Options{Assets: a})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60, Seed: 7})
	return g
}

// frame builds an input frame from events.
func frame(events ...core.Event) core.InputFrame {
	in := core.NewInputFrame()
	for _, e := range events {
		in.Add(e)
	}
	return in
}

func keyDown(k core.Key) core.Event {
	return core.Event{Kind: core.EventKeyDown, Key: k}
}

func click(b core.MouseButton, col, row int) core.Event {
	return core.Event{Kind: core.EventMouseDown, Button: b, Col: col, Row: row}
}
