package swarm

import (
	"time"

	"github.com/vovakirdan/swarm/internal/config"
	"github.com/vovakirdan/swarm/internal/core"
)

// Player is the avatar: it walks toward a clicked point, shoots and swings.
type Player struct {
	Entity

	Damage int
	Score  int

	target    core.Vec
	hasTarget bool
	arrive    float64

	shootCooldown time.Duration
	lastShot      time.Duration
	hasShot       bool

	attackTicks    int // Remaining ticks of the current attack
	attackDuration int
	attackRange    float64
}

// NewPlayer creates a player centred in the field.
func NewPlayer(cfg config.PlayerConfig, field Field) *Player {
	pos := field.Center().Sub(core.V(cfg.Size/2, cfg.Size/2))
	return &Player{
		Entity: Entity{
			Pos:       pos,
			Size:      cfg.Size,
			Speed:     cfg.Speed,
			Health:    cfg.Health,
			MaxHealth: cfg.Health,
		},
		Damage:         cfg.Damage,
		arrive:         cfg.ArriveThreshold,
		shootCooldown:  time.Duration(cfg.ShootCooldownMs) * time.Millisecond,
		attackDuration: cfg.AttackTicks,
		attackRange:    cfg.AttackRange,
	}
}

// SetTarget stores a destination for the player's centre.
func (p *Player) SetTarget(pt core.Vec) {
	p.target = pt
	p.hasTarget = true
}

// Target returns the destination, if any.
func (p *Player) Target() (core.Vec, bool) {
	return p.target, p.hasTarget
}

// StopMovement clears the destination immediately.
func (p *Player) StopMovement() {
	p.hasTarget = false
}

// Update advances the attack timer and walks toward the target.
// Within the arrival threshold the target is cleared and the player stops.
func (p *Player) Update(field Field) {
	if p.attackTicks > 0 {
		p.attackTicks--
	}

	if !p.hasTarget {
		return
	}

	d := p.target.Sub(p.Center())
	if d.Len() < p.arrive {
		p.hasTarget = false
		return
	}

	dir, _ := d.Normalize()
	p.Pos = p.Pos.Add(dir.Scale(p.Speed))
	p.clampTo(field)
}

// CanShoot reports whether the cooldown has elapsed at simulated time now.
func (p *Player) CanShoot(now time.Duration) bool {
	return !p.hasShot || now-p.lastShot >= p.shootCooldown
}

// Shoot fires a projectile from the player's centre toward target.
// It returns nil while the cooldown since the last successful shot is running.
func (p *Player) Shoot(target core.Vec, now time.Duration, cfg config.ProjectileConfig) *Projectile {
	if !p.CanShoot(now) {
		return nil
	}
	p.lastShot = now
	p.hasShot = true
	return NewProjectile(p.Center(), target, cfg.Speed, p.Damage, cfg.Size, cfg.Lifetime)
}

// Attack starts a melee attack. It returns false if one is already running.
func (p *Player) Attack() bool {
	if p.Attacking() {
		return false
	}
	p.attackTicks = p.attackDuration
	return true
}

// Attacking reports whether a melee attack is active.
func (p *Player) Attacking() bool {
	return p.attackTicks > 0
}

// AttackRect returns the melee hit region while attacking.
func (p *Player) AttackRect() (core.RectF, bool) {
	if !p.Attacking() {
		return core.RectF{}, false
	}
	return core.SquareAt(p.Center(), p.Size*p.attackRange), true
}

// AddScore adds points to the player's score.
func (p *Player) AddScore(points int) {
	p.Score += points
}
