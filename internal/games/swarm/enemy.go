package swarm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/swarm/internal/config"
	"github.com/vovakirdan/swarm/internal/core"
)

// EnemyType is the closed set of enemy kinds.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyTank

	enemyTypeCount
)

var enemyTypeNames = [enemyTypeCount]string{"basic", "fast", "tank"}

// String returns the config name of the type.
func (t EnemyType) String() string {
	if t < 0 || t >= enemyTypeCount {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return enemyTypeNames[t]
}

// ParseEnemyType looks up a type by name.
func ParseEnemyType(name string) (EnemyType, error) {
	for i, n := range enemyTypeNames {
		if strings.EqualFold(n, name) {
			return EnemyType(i), nil
		}
	}
	return 0, fmt.Errorf("swarm: unknown enemy type %q", name)
}

// Shape is how an enemy is drawn when no sprite overrides it.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeTriangle
	ShapeCircle
)

func parseShape(name string) Shape {
	switch name {
	case "triangle":
		return ShapeTriangle
	case "circle":
		return ShapeCircle
	default:
		return ShapeSquare
	}
}

// TypeStats are the constants an enemy type fixes at construction.
type TypeStats struct {
	Size         float64
	Speed        float64
	Health       int
	ChaseWeight  float64
	Damage       int
	ScoreBonus   int
	JitterChance float64
	JitterRange  float64
	Weight       float64
	Shape        Shape
	Color        core.Color
}

// StatsTable maps every enemy type to its constants.
type StatsTable [enemyTypeCount]TypeStats

// NewStatsTable derives the per-type constants from configuration.
func NewStatsTable(cfg config.EnemiesConfig) StatsTable {
	build := func(t config.EnemyTypeConfig) TypeStats {
		color, ok := core.ParseColor(t.Color)
		if !ok {
			color = core.ColorRed
		}
		return TypeStats{
			Size:         cfg.BaseSize * t.SizeMul,
			Speed:        cfg.BaseSpeed * t.SpeedMul * cfg.SpeedScale,
			Health:       t.Health,
			ChaseWeight:  t.ChaseWeight,
			Damage:       t.Damage,
			ScoreBonus:   t.ScoreBonus,
			JitterChance: t.JitterChance,
			JitterRange:  t.JitterRange,
			Weight:       t.Weight,
			Shape:        parseShape(t.Shape),
			Color:        color,
		}
	}
	return StatsTable{
		EnemyBasic: build(cfg.Types.Basic),
		EnemyFast:  build(cfg.Types.Fast),
		EnemyTank:  build(cfg.Types.Tank),
	}
}

// Of returns the constants of a type.
func (t *StatsTable) Of(kind EnemyType) TypeStats {
	return t[kind]
}

// Pick draws a type according to the configured weights.
func (t *StatsTable) Pick(rng Rand) EnemyType {
	total := 0.0
	for _, s := range t {
		total += s.Weight
	}
	if total <= 0 {
		return EnemyBasic
	}

	r := rng.Float64() * total
	for i, s := range t {
		if r < s.Weight {
			return EnemyType(i)
		}
		r -= s.Weight
	}
	// Rounding can leave r just above the last bucket
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Weight > 0 {
			return EnemyType(i)
		}
	}
	return EnemyBasic
}

// Enemy is a hostile entity steered by wander, chase and avoidance.
type Enemy struct {
	Entity

	kind  EnemyType // Fixed at construction
	stats TypeStats

	Heading         float64 // Radians
	DetectionRadius float64
	AvoidForce      float64

	// target is resolved on every update and never owned
	target Tracker

	// Animation
	Frame     int
	frameTime float64

	removed bool
}

// NewEnemy creates an enemy of the given type at pos.
func NewEnemy(kind EnemyType, stats TypeStats, pos core.Vec, heading float64, target Tracker, steer SteeringParams) *Enemy {
	return &Enemy{
		Entity: Entity{
			Pos:       pos,
			Size:      stats.Size,
			Speed:     stats.Speed,
			Health:    stats.Health,
			MaxHealth: stats.Health,
		},
		kind:            kind,
		stats:           stats,
		Heading:         heading,
		DetectionRadius: stats.Size * steer.DetectionFactor,
		AvoidForce:      steer.AvoidForce,
		target:          target,
	}
}

// Type returns the enemy's kind.
func (e *Enemy) Type() EnemyType {
	return e.kind
}

// Stats returns the constants the enemy was built from.
func (e *Enemy) Stats() TypeStats {
	return e.stats
}

// Damage returns the contact damage dealt to the player per tick.
func (e *Enemy) Damage() int {
	return e.stats.Damage
}

// Removed reports whether the enemy was defeated and awaits compaction.
func (e *Enemy) Removed() bool {
	return e.removed
}
