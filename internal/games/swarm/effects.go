package swarm

import (
	"math"

	"github.com/vovakirdan/swarm/internal/core"
)

// Particle is a cosmetic fragment thrown out when an enemy is defeated.
type Particle struct {
	Pos      core.Vec
	Vel      core.Vec
	Size     float64
	Color    core.Color
	Lifetime float64 // Seconds
	TimeLeft float64
}

// Fade returns the remaining share of the particle's life in [0, 1].
func (p Particle) Fade() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(p.TimeLeft/p.Lifetime, 0, 1)
}

// Particles is a pool of live particles.
type Particles struct {
	items []Particle
}

// Burst throws n particles out of at.
func (ps *Particles) Burst(rng Rand, at core.Vec, color core.Color, n int) {
	for range n {
		speed := 1 + rng.Float64()*2
		angle := rng.Float64() * 2 * math.Pi
		lifetime := 0.5 + rng.Float64()
		ps.items = append(ps.items, Particle{
			Pos:      at,
			Vel:      core.FromAngle(angle).Scale(speed),
			Size:     float64(2 + rng.Intn(5)),
			Color:    color,
			Lifetime: lifetime,
			TimeLeft: lifetime,
		})
	}
}

// Update moves particles and drops the expired ones.
func (ps *Particles) Update(dt float64) {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.Pos = p.Pos.Add(p.Vel)
		p.TimeLeft -= dt
		if p.TimeLeft > 0 {
			kept = append(kept, p)
		}
	}
	ps.items = kept
}

// Items returns the live particles.
func (ps *Particles) Items() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear removes every particle.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}

// ClickIndicator is an expanding ring drawn where the player clicked.
type ClickIndicator struct {
	Pos    core.Vec
	Radius float64
	Alpha  int
}

const (
	indicatorRadius = 20
	indicatorGrowth = 0.5
	indicatorFade   = 10
)

// Indicators holds the click indicators of the playing screen.
type Indicators struct {
	items []ClickIndicator
}

// Add starts a new indicator at pos.
func (in *Indicators) Add(pos core.Vec) {
	in.items = append(in.items, ClickIndicator{Pos: pos, Radius: indicatorRadius, Alpha: 255})
}

// Update grows and fades every indicator, dropping invisible ones.
func (in *Indicators) Update() {
	kept := in.items[:0]
	for _, c := range in.items {
		c.Radius += indicatorGrowth
		c.Alpha -= indicatorFade
		if c.Alpha > 0 {
			kept = append(kept, c)
		}
	}
	in.items = kept
}

// Items returns the live indicators.
func (in *Indicators) Items() []ClickIndicator {
	return in.items
}

// Clear removes every indicator.
func (in *Indicators) Clear() {
	in.items = in.items[:0]
}
