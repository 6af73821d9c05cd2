package swarm

import "github.com/vovakirdan/swarm/internal/core"

// World is the set of entities the simulation mutates each tick.
// The session owns it; the resolver only reads and updates it.
type World struct {
	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
}

// Kill describes an enemy defeated during resolution.
type Kill struct {
	Type   EnemyType
	At     core.Vec // Centre of the defeated enemy
	Color  core.Color
	Points int
}

// Outcome summarizes one resolution pass.
type Outcome struct {
	Kills          []Kill
	ProjectileHits int
	MeleeHits      int
	ContactDamage  int
	PlayerDefeated bool
	Victory        bool
}

// Resolver applies collisions, damage and scoring.
type Resolver struct {
	Field     Field
	KillScore int

	// ContactInvulnerability is the number of ticks the player is immune
	// to contact damage after being touched. Zero damages every overlapping tick.
	ContactInvulnerability int
	invulnerable           int
}

// AdvanceProjectiles moves every projectile and drops the expired ones
// and those that left the field.
func (r *Resolver) AdvanceProjectiles(w *World) {
	for _, p := range w.Projectiles {
		expired := p.Update()
		if expired || !r.Field.Contains(p.Pos) {
			p.removed = true
		}
	}
	w.compactProjectiles()
}

// Resolve runs projectile hits, enemy contact and the melee attack in that
// order, then checks for victory. Resolution stops once the player is
// defeated, so a defeat is never also reported as a victory.
func (r *Resolver) Resolve(w *World) Outcome {
	var out Outcome

	// Projectiles against enemies: the first overlapping enemy takes the hit
	for _, p := range w.Projectiles {
		if p.removed {
			continue
		}
		for _, e := range w.Enemies {
			if e.removed || !p.Rect().Intersects(e.Rect()) {
				continue
			}
			p.removed = true
			out.ProjectileHits++
			if e.TakeDamage(p.Damage) {
				r.defeat(w, e, &out)
			}
			break
		}
	}

	// Enemies against the player
	if r.invulnerable > 0 {
		r.invulnerable--
	} else if w.Player != nil {
		touched := false
		for _, e := range w.Enemies {
			if e.removed || !e.Rect().Intersects(w.Player.Rect()) {
				continue
			}
			touched = true
			out.ContactDamage += e.Damage()
			if w.Player.TakeDamage(e.Damage()) {
				out.PlayerDefeated = true
				break
			}
		}
		if touched {
			r.invulnerable = r.ContactInvulnerability
		}
	}

	if out.PlayerDefeated {
		w.compactEnemies()
		w.compactProjectiles()
		return out
	}

	// Melee attack against enemies
	if w.Player != nil {
		r.melee(w, &out)
	}

	w.compactEnemies()
	w.compactProjectiles()

	out.Victory = len(w.Enemies) == 0
	return out
}

func (r *Resolver) melee(w *World, out *Outcome) {
	area, ok := w.Player.AttackRect()
	if !ok {
		return
	}
	for _, e := range w.Enemies {
		if e.removed || !area.Intersects(e.Rect()) {
			continue
		}
		out.MeleeHits++
		if e.TakeDamage(w.Player.Damage) {
			r.defeat(w, e, out)
		}
	}
}

// Reset clears the contact immunity timer.
func (r *Resolver) Reset() {
	r.invulnerable = 0
}

func (r *Resolver) defeat(w *World, e *Enemy, out *Outcome) {
	e.removed = true
	points := r.KillScore + e.stats.ScoreBonus
	if w.Player != nil {
		w.Player.AddScore(points)
	}
	out.Kills = append(out.Kills, Kill{
		Type:   e.kind,
		At:     e.Center(),
		Color:  e.stats.Color,
		Points: points,
	})
}

// compactEnemies drops removed enemies, keeping order.
func (w *World) compactEnemies() {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.removed {
			kept = append(kept, e)
		}
	}
	clear(w.Enemies[len(kept):])
	w.Enemies = kept
}

// compactProjectiles drops spent projectiles, keeping order.
func (w *World) compactProjectiles() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.removed {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}
