package swarm

import (
	"math"

	"github.com/vovakirdan/swarm/internal/core"
)

// Tracker resolves the position enemies chase.
// The session implements it so enemies never hold the player itself.
type Tracker interface {
	TargetCenter() (core.Vec, bool)
}

// SteeringParams are the steering constants shared by all enemy types.
type SteeringParams struct {
	DetectionFactor float64 // Detection radius as a multiple of size
	AvoidForce      float64
}

// animation frame length in seconds
const frameDuration = 0.15

// Update advances the enemy by one tick.
// all is the full roster, including e itself; removed enemies are ignored.
func (e *Enemy) Update(all []*Enemy, field Field, rng Rand, dt float64) {
	v := core.FromAngle(e.Heading).Scale(e.Speed)

	if chase, ok := e.chaseVector(); ok {
		w := e.stats.ChaseWeight
		v = v.Scale(1 - w).Add(chase.Scale(w))
	}

	v = v.Add(e.avoidance(all, rng))

	if !v.IsZero() {
		e.Heading = v.Angle()
	}

	e.Pos = e.Pos.Add(v)

	// Bounce off the field edges
	if e.Pos.X <= 0 || e.Pos.X+e.Size >= field.W {
		e.Heading = wrapAngle(math.Pi - e.Heading)
		e.Pos.X = core.ClampF(e.Pos.X, 0, field.W-e.Size)
	}
	if e.Pos.Y <= 0 || e.Pos.Y+e.Size >= field.H {
		e.Heading = wrapAngle(-e.Heading)
		e.Pos.Y = core.ClampF(e.Pos.Y, 0, field.H-e.Size)
	}

	if rng.Float64() < e.stats.JitterChance {
		e.Heading = wrapAngle(e.Heading + (rng.Float64()*2-1)*e.stats.JitterRange)
	}

	e.animate(dt)
}

// chaseVector points from the enemy's centre to the target's centre, scaled by speed.
// The boolean is false when there is no target.
func (e *Enemy) chaseVector() (core.Vec, bool) {
	if e.target == nil {
		return core.Vec{}, false
	}
	tc, ok := e.target.TargetCenter()
	if !ok {
		return core.Vec{}, false
	}
	dir, ok := tc.Sub(e.Center()).Normalize()
	if !ok {
		// Already on top of the target: chase contributes nothing
		return core.Vec{}, true
	}
	return dir.Scale(e.Speed), true
}

// avoidance sums repulsion from every neighbour inside the detection radius.
func (e *Enemy) avoidance(all []*Enemy, rng Rand) core.Vec {
	var avoid core.Vec
	center := e.Center()

	for _, other := range all {
		if other == e || other.removed {
			continue
		}
		d := other.Center().Sub(center)
		dist := d.Len()
		if dist >= e.DetectionRadius {
			continue
		}
		if dist > 0 {
			force := e.AvoidForce * (e.DetectionRadius - dist) / dist
			avoid = avoid.Sub(d.Scale(force))
		} else {
			// Exact overlap has no direction: push a random way
			angle := rng.Float64() * 2 * math.Pi
			avoid = avoid.Sub(core.FromAngle(angle).Scale(e.AvoidForce))
		}
	}
	return avoid
}

func (e *Enemy) animate(dt float64) {
	e.frameTime += dt
	for e.frameTime >= frameDuration {
		e.frameTime -= frameDuration
		e.Frame = (e.Frame + 1) % 4
	}
}

// wrapAngle maps an angle into [-pi, pi].
func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
