// Package config provides YAML-based game configuration loading and
// difficulty presets for Swarm.
package config

// SwarmConfig contains all tunable parameters of the game.
type SwarmConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Combat     CombatConfig     `yaml:"combat"`
	Effects    EffectsConfig    `yaml:"effects"`
}

// FieldConfig defines the logical play-field, independent of the terminal size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`             // Units per tick
	Health          int     `yaml:"health"`
	Damage          int     `yaml:"damage"`            // Applied by projectiles and melee
	ShootCooldownMs int     `yaml:"shoot_cooldown_ms"` // Minimum time between shots
	AttackTicks     int     `yaml:"attack_ticks"`      // Melee attack duration
	AttackRange     float64 `yaml:"attack_range"`      // Melee region side as a multiple of size
	ArriveThreshold float64 `yaml:"arrive_threshold"`  // Distance at which a move target counts as reached
}

// ProjectileConfig defines projectile parameters.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	Size     float64 `yaml:"size"`
	Lifetime int     `yaml:"lifetime"` // Ticks
}

// EnemiesConfig defines enemy spawning and steering parameters.
type EnemiesConfig struct {
	Count                int        `yaml:"count"`
	BaseSize             float64    `yaml:"base_size"`
	BaseSpeed            float64    `yaml:"base_speed"`
	SpeedScale           float64    `yaml:"speed_scale"` // Difficulty multiplier on every type's speed
	SafeDistance         float64    `yaml:"safe_distance"`
	MaxPlacementAttempts int        `yaml:"max_placement_attempts"`
	DetectionFactor      float64    `yaml:"detection_factor"` // Detection radius as a multiple of size
	AvoidForce           float64    `yaml:"avoid_force"`
	Types                EnemyTypes `yaml:"types"`
}

// EnemyTypes holds per-type constants for the closed set of enemy kinds.
type EnemyTypes struct {
	Basic EnemyTypeConfig `yaml:"basic"`
	Fast  EnemyTypeConfig `yaml:"fast"`
	Tank  EnemyTypeConfig `yaml:"tank"`
}

// EnemyTypeConfig defines the constants of one enemy type.
type EnemyTypeConfig struct {
	Weight       float64 `yaml:"weight"`        // Relative spawn probability
	SizeMul      float64 `yaml:"size_mul"`      // Multiplier on base_size
	SpeedMul     float64 `yaml:"speed_mul"`     // Multiplier on base_speed
	Health       int     `yaml:"health"`
	ChaseWeight  float64 `yaml:"chase_weight"`  // 0 = pure wander, 1 = direct chase
	Damage       int     `yaml:"damage"`        // Contact damage per tick
	ScoreBonus   int     `yaml:"score_bonus"`   // Added to combat.kill_score
	JitterChance float64 `yaml:"jitter_chance"` // Per-tick probability of a heading change
	JitterRange  float64 `yaml:"jitter_range"`  // Max heading change in radians
	Shape        string  `yaml:"shape"`         // square, triangle or circle
	Color        string  `yaml:"color"`
}

// CombatConfig defines scoring and damage rules.
type CombatConfig struct {
	KillScore                   int `yaml:"kill_score"`
	ContactInvulnerabilityTicks int `yaml:"contact_invulnerability_ticks"` // 0 = damage every overlapping tick
}

// EffectsConfig defines cosmetic effect parameters.
type EffectsConfig struct {
	DefeatParticles int `yaml:"defeat_particles"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. An empty name means fixed,
// which keeps the values from the config file.
func ParseDifficulty(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
