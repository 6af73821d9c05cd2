package swarm

// EnemySnapshot is the observable state of one enemy.
type EnemySnapshot struct {
	Type    EnemyType
	X, Y    float64
	Heading float64
	Health  int
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	State       StateID
	Ticks       int
	Score       int
	Health      int
	PlayerX     float64
	PlayerY     float64
	Enemies     []EnemySnapshot
	Projectiles int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	s := g.session
	snap := Snapshot{
		State:       g.machine.Current(),
		Ticks:       s.Ticks(),
		Score:       s.Score(),
		Projectiles: len(s.Projectiles),
	}
	if s.Player != nil {
		snap.Health = s.Player.Health
		snap.PlayerX = s.Player.Pos.X
		snap.PlayerY = s.Player.Pos.Y
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			Type:    e.Type(),
			X:       e.Pos.X,
			Y:       e.Pos.Y,
			Heading: e.Heading,
			Health:  e.Health,
		})
	}
	return snap
}
