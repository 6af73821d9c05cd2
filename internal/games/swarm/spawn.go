package swarm

import (
	"math"

	"github.com/vovakirdan/swarm/internal/core"
)

// Spawner places a fresh batch of enemies away from the player.
type Spawner struct {
	Field        Field
	Stats        StatsTable
	Steering     SteeringParams
	Count        int
	SafeDistance float64 // Minimum centre distance from the player
	MaxAttempts  int
}

// Spawn creates Count enemies chasing target.
func (s *Spawner) Spawn(rng Rand, player *Player, target Tracker) []*Enemy {
	enemies := make([]*Enemy, 0, s.Count)
	for range s.Count {
		kind := s.Stats.Pick(rng)
		stats := s.Stats.Of(kind)
		pos, _ := s.Place(rng, stats.Size, player.Center())
		heading := math.Pi - rng.Float64()*2*math.Pi // (-pi, pi]
		enemies = append(enemies, NewEnemy(kind, stats, pos, heading, target, s.Steering))
	}
	return enemies
}

// Place samples a top-left position for a square of the given size whose
// centre is at least SafeDistance from avoid. After MaxAttempts misses it
// falls back to the field corner furthest from avoid and reports false.
func (s *Spawner) Place(rng Rand, size float64, avoid core.Vec) (core.Vec, bool) {
	for range s.MaxAttempts {
		pos := core.V(rng.Float64()*(s.Field.W-size), rng.Float64()*(s.Field.H-size))
		center := pos.Add(core.V(size/2, size/2))
		if center.Dist(avoid) >= s.SafeDistance {
			return pos, true
		}
	}
	return s.furthestCorner(size, avoid), false
}

func (s *Spawner) furthestCorner(size float64, from core.Vec) core.Vec {
	corners := s.Field.Corners(size)
	best := corners[0]
	bestDist := -1.0
	for _, c := range corners {
		d := c.Add(core.V(size/2, size/2)).Dist(from)
		if d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
