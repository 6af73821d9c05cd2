package swarm

import "github.com/vovakirdan/swarm/internal/core"

// Projectile flies in a straight line with a fixed velocity until its
// lifetime runs out, it leaves the field or it hits an enemy.
type Projectile struct {
	Pos      core.Vec // Centre
	Vel      core.Vec
	Size     float64
	Damage   int
	Lifetime int // Remaining ticks

	removed bool
}

// NewProjectile aims a projectile from origin at target.
// A target equal to the origin gives a projectile that does not move.
func NewProjectile(origin, target core.Vec, speed float64, damage int, size float64, lifetime int) *Projectile {
	dir, _ := target.Sub(origin).Normalize()
	return &Projectile{
		Pos:      origin,
		Vel:      dir.Scale(speed),
		Size:     size,
		Damage:   damage,
		Lifetime: lifetime,
	}
}

// Update moves the projectile and reports whether its lifetime expired.
func (p *Projectile) Update() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Lifetime--
	return p.Lifetime <= 0
}

// Rect returns the collision box centred on the projectile.
func (p *Projectile) Rect() core.RectF {
	return core.SquareAt(p.Pos, p.Size)
}

// Removed reports whether the projectile is spent and awaits compaction.
func (p *Projectile) Removed() bool {
	return p.removed
}
