// Package swarm implements a top-down arcade game: the player moves by
// clicking, fights waves of steering enemies with projectiles and a melee
// attack, and progresses through menu, playing, paused, game over and
// victory states.
package swarm

import "github.com/vovakirdan/swarm/internal/core"

// Rand is the random source used by the simulation.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Field is the logical play-field in which entities move.
type Field struct {
	W, H float64
}

// Contains reports whether p lies inside the field, edges included.
func (f Field) Contains(p core.Vec) bool {
	return p.X >= 0 && p.X <= f.W && p.Y >= 0 && p.Y <= f.H
}

// Center returns the centre of the field.
func (f Field) Center() core.Vec {
	return core.V(f.W/2, f.H/2)
}

// Corners returns the top-left positions that put a square of the given
// size into each corner of the field.
func (f Field) Corners(size float64) [4]core.Vec {
	return [4]core.Vec{
		core.V(0, 0),
		core.V(f.W-size, 0),
		core.V(0, f.H-size),
		core.V(f.W-size, f.H-size),
	}
}

// Entity holds the attributes shared by the player and enemies.
// Pos is the top-left corner of the entity's square.
type Entity struct {
	Pos       core.Vec
	Size      float64
	Speed     float64 // Units per tick
	Health    int
	MaxHealth int
}

// Rect returns the collision box.
func (e *Entity) Rect() core.RectF {
	return core.NewRectF(e.Pos.X, e.Pos.Y, e.Size, e.Size)
}

// Center returns the centre of the entity's square.
func (e *Entity) Center() core.Vec {
	return core.V(e.Pos.X+e.Size/2, e.Pos.Y+e.Size/2)
}

// TakeDamage subtracts amount from health and reports whether the entity is defeated.
func (e *Entity) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// Alive reports whether health is above zero.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// clampTo keeps the entity's square inside the field.
func (e *Entity) clampTo(f Field) {
	e.Pos.X = core.ClampF(e.Pos.X, 0, f.W-e.Size)
	e.Pos.Y = core.ClampF(e.Pos.Y, 0, f.H-e.Size)
}
