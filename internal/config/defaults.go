package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/swarm.yaml
var defaultSwarmYAML []byte

// DefaultSwarmConfig returns the hardcoded default configuration.
// It mirrors defaults/swarm.yaml and is used when the embedded file cannot be parsed.
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Size:            50,
			Speed:           5,
			Health:          100,
			Damage:          20,
			ShootCooldownMs: 300,
			AttackTicks:     30,
			AttackRange:     3,
			ArriveThreshold: 5,
		},
		Projectile: ProjectileConfig{
			Speed:    15,
			Size:     5,
			Lifetime: 120, // 2 seconds at 60 ticks
		},
		Enemies: EnemiesConfig{
			Count:                5,
			BaseSize:             40,
			BaseSpeed:            3,
			SpeedScale:           1,
			SafeDistance:         150,
			MaxPlacementAttempts: 100,
			DetectionFactor:      2,
			AvoidForce:           0.5,
			Types: EnemyTypes{
				Basic: EnemyTypeConfig{
					Weight: 0.6, SizeMul: 1.0, SpeedMul: 1.0, Health: 20,
					ChaseWeight: 0.3, Damage: 1, ScoreBonus: 0,
					JitterChance: 0.01, JitterRange: 0.5,
					Shape: "square", Color: "red",
				},
				Fast: EnemyTypeConfig{
					Weight: 0.25, SizeMul: 0.75, SpeedMul: 1.6, Health: 10,
					ChaseWeight: 0.5, Damage: 1, ScoreBonus: 5,
					JitterChance: 0.03, JitterRange: math.Pi / 2,
					Shape: "triangle", Color: "orange",
				},
				Tank: EnemyTypeConfig{
					Weight: 0.15, SizeMul: 1.5, SpeedMul: 0.6, Health: 60,
					ChaseWeight: 0.2, Damage: 2, ScoreBonus: 10,
					JitterChance: 0.005, JitterRange: 0.2,
					Shape: "circle", Color: "purple",
				},
			},
		},
		Combat: CombatConfig{
			KillScore:                   10,
			ContactInvulnerabilityTicks: 0,
		},
		Effects: EffectsConfig{DefeatParticles: 20},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSwarmYAML
}
