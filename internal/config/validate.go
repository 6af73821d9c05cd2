package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/swarm/internal/core"
)

// Validate reports every invalid field at once.
func (c SwarmConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)

	p := c.Player
	check(p.Size > 0, "player.size must be positive, got %v", p.Size)
	check(p.Speed > 0, "player.speed must be positive, got %v", p.Speed)
	check(p.Health > 0, "player.health must be positive, got %d", p.Health)
	check(p.Damage > 0, "player.damage must be positive, got %d", p.Damage)
	check(p.ShootCooldownMs >= 0, "player.shoot_cooldown_ms must not be negative, got %d", p.ShootCooldownMs)
	check(p.AttackTicks > 0, "player.attack_ticks must be positive, got %d", p.AttackTicks)
	check(p.AttackRange > 0, "player.attack_range must be positive, got %v", p.AttackRange)
	check(p.ArriveThreshold > 0, "player.arrive_threshold must be positive, got %v", p.ArriveThreshold)
	check(p.Size < c.Field.Width && p.Size < c.Field.Height, "player.size %v does not fit the field", p.Size)

	pr := c.Projectile
	check(pr.Speed > 0, "projectile.speed must be positive, got %v", pr.Speed)
	check(pr.Size > 0, "projectile.size must be positive, got %v", pr.Size)
	check(pr.Lifetime > 0, "projectile.lifetime must be positive, got %d", pr.Lifetime)

	e := c.Enemies
	check(e.Count > 0, "enemies.count must be positive, got %d", e.Count)
	check(e.BaseSize > 0, "enemies.base_size must be positive, got %v", e.BaseSize)
	check(e.BaseSpeed > 0, "enemies.base_speed must be positive, got %v", e.BaseSpeed)
	check(e.SpeedScale > 0, "enemies.speed_scale must be positive, got %v", e.SpeedScale)
	check(e.SafeDistance >= 0, "enemies.safe_distance must not be negative, got %v", e.SafeDistance)
	check(e.MaxPlacementAttempts > 0, "enemies.max_placement_attempts must be positive, got %d", e.MaxPlacementAttempts)
	check(e.DetectionFactor >= 0, "enemies.detection_factor must not be negative, got %v", e.DetectionFactor)
	check(e.AvoidForce >= 0, "enemies.avoid_force must not be negative, got %v", e.AvoidForce)

	types := []struct {
		name string
		cfg  EnemyTypeConfig
	}{
		{"basic", e.Types.Basic},
		{"fast", e.Types.Fast},
		{"tank", e.Types.Tank},
	}
	totalWeight := 0.0
	for _, t := range types {
		errs = append(errs, t.cfg.validate(t.name, e.BaseSize, c.Field)...)
		totalWeight += t.cfg.Weight
	}
	check(totalWeight > 0, "enemies.types: weights must not all be zero")

	check(c.Combat.KillScore >= 0, "combat.kill_score must not be negative, got %d", c.Combat.KillScore)
	check(c.Combat.ContactInvulnerabilityTicks >= 0, "combat.contact_invulnerability_ticks must not be negative, got %d", c.Combat.ContactInvulnerabilityTicks)
	check(c.Effects.DefeatParticles >= 0, "effects.defeat_particles must not be negative, got %d", c.Effects.DefeatParticles)

	return errors.Join(errs...)
}

func (t EnemyTypeConfig) validate(name string, baseSize float64, field FieldConfig) []error {
	var errs []error
	prefix := "enemies.types." + name
	if t.Weight < 0 {
		errs = append(errs, fmt.Errorf("%s.weight must not be negative, got %v", prefix, t.Weight))
	}
	if t.SizeMul <= 0 {
		errs = append(errs, fmt.Errorf("%s.size_mul must be positive, got %v", prefix, t.SizeMul))
	} else if size := baseSize * t.SizeMul; size >= field.Width || size >= field.Height {
		errs = append(errs, fmt.Errorf("%s: size %v does not fit the field", prefix, size))
	}
	if t.SpeedMul <= 0 {
		errs = append(errs, fmt.Errorf("%s.speed_mul must be positive, got %v", prefix, t.SpeedMul))
	}
	if t.Health <= 0 {
		errs = append(errs, fmt.Errorf("%s.health must be positive, got %d", prefix, t.Health))
	}
	if t.ChaseWeight < 0 || t.ChaseWeight > 1 {
		errs = append(errs, fmt.Errorf("%s.chase_weight must be in [0, 1], got %v", prefix, t.ChaseWeight))
	}
	if t.Damage < 0 {
		errs = append(errs, fmt.Errorf("%s.damage must not be negative, got %d", prefix, t.Damage))
	}
	if t.JitterChance < 0 || t.JitterChance > 1 {
		errs = append(errs, fmt.Errorf("%s.jitter_chance must be in [0, 1], got %v", prefix, t.JitterChance))
	}
	if t.JitterRange < 0 {
		errs = append(errs, fmt.Errorf("%s.jitter_range must not be negative, got %v", prefix, t.JitterRange))
	}
	switch t.Shape {
	case "square", "triangle", "circle":
	default:
		errs = append(errs, fmt.Errorf("%s.shape must be square, triangle or circle, got %q", prefix, t.Shape))
	}
	if _, ok := core.ParseColor(t.Color); !ok {
		errs = append(errs, fmt.Errorf("%s.color: unknown color %q", prefix, t.Color))
	}
	return errs
}
