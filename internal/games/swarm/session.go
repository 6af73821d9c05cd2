package swarm

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swarm/internal/assets"
	"github.com/vovakirdan/swarm/internal/config"
	"github.com/vovakirdan/swarm/internal/core"
)

// Assets is what the game needs from the asset provider.
// Missing names must degrade to placeholders, never fail.
type Assets interface {
	Image(name string) assets.Sprite
	Font(name string) assets.Font
	PlaySound(name string)
}

// Sound names played by the game.
const (
	SoundShoot         = "shoot"
	SoundHit           = "hit"
	SoundEnemyDefeated = "enemy_defeated"
	SoundGameOver      = "game_over"
	SoundVictory       = "victory"
	SoundClick         = "click"
)

// Session is the explicit game context handed to state handlers.
// It owns the player, the enemy roster and the projectiles.
type Session struct {
	World

	cfg    config.SwarmConfig
	field  Field
	rng    Rand
	assets Assets
	log    *log.Logger

	spawner  Spawner
	resolver Resolver

	Particles  Particles
	Indicators Indicators

	// Pointer position in field units, for hover and aimed shots
	Mouse      core.Vec
	mouseKnown bool

	menu         *Menu
	pauseMenu    *Menu
	showControls bool

	tickDur time.Duration
	clock   time.Duration // Simulated time since the session started
	ticks   int           // Ticks simulated in the current run
	resets  int
}

func newSession(cfg config.SwarmConfig, rng Rand, a Assets, logger *log.Logger, tickDur time.Duration) *Session {
	field := Field{W: cfg.Field.Width, H: cfg.Field.Height}
	s := &Session{
		cfg:     cfg,
		field:   field,
		rng:     rng,
		assets:  a,
		log:     logger,
		tickDur: tickDur,
		spawner: Spawner{
			Field: field,
			Stats: NewStatsTable(cfg.Enemies),
			Steering: SteeringParams{
				DetectionFactor: cfg.Enemies.DetectionFactor,
				AvoidForce:      cfg.Enemies.AvoidForce,
			},
			Count:        cfg.Enemies.Count,
			SafeDistance: cfg.Enemies.SafeDistance,
			MaxAttempts:  cfg.Enemies.MaxPlacementAttempts,
		},
		resolver: Resolver{
			Field:                  field,
			KillScore:              cfg.Combat.KillScore,
			ContactInvulnerability: cfg.Combat.ContactInvulnerabilityTicks,
		},
		menu:      NewMenu(field, 250, "Start Game", "Controls", "Quit"),
		pauseMenu: NewMenu(field, 200, "Resume", "Main Menu", "Quit"),
	}
	// A player exists before the first run so enemies always have a target
	s.Player = NewPlayer(cfg.Player, field)
	return s
}

// TargetCenter returns the player's centre for enemies to chase.
func (s *Session) TargetCenter() (core.Vec, bool) {
	if s.Player == nil {
		return core.Vec{}, false
	}
	return s.Player.Center(), true
}

// Reset starts a new run: a fresh player at the field centre, a new enemy
// batch, no projectiles and a zero score.
func (s *Session) Reset() {
	s.Player = NewPlayer(s.cfg.Player, s.field)
	s.Enemies = s.spawner.Spawn(s.rng, s.Player, s)
	s.Projectiles = nil
	s.Particles.Clear()
	s.Indicators.Clear()
	s.resolver.Reset()
	s.ticks = 0
	s.resets++

	s.log.Debug("session reset", "enemies", len(s.Enemies), "run", s.resets)
}

// Field returns the play-field.
func (s *Session) Field() Field {
	return s.field
}

// Config returns the game configuration.
func (s *Session) Config() config.SwarmConfig {
	return s.cfg
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	if s.Player == nil {
		return 0
	}
	return s.Player.Score
}

// Now returns the simulated time.
func (s *Session) Now() time.Duration {
	return s.clock
}

// Ticks returns the number of ticks simulated in the current run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Runs returns how many runs were started.
func (s *Session) Runs() int {
	return s.resets
}

// playSound forwards to the asset provider, if any.
func (s *Session) playSound(name string) {
	if s.assets != nil {
		s.assets.PlaySound(name)
	}
}

// FireAt shoots toward target if the cooldown allows it.
func (s *Session) FireAt(target core.Vec) bool {
	p := s.Player.Shoot(target, s.clock, s.cfg.Projectile)
	if p == nil {
		return false
	}
	s.Projectiles = append(s.Projectiles, p)
	s.playSound(SoundShoot)
	return true
}

// advanceClock moves simulated time forward by one tick.
func (s *Session) advanceClock() {
	s.clock += s.tickDur
}

// simulate runs one playing tick: player, projectiles, enemy steering, then
// collision resolution.
func (s *Session) simulate() Outcome {
	s.ticks++
	dt := s.tickDur.Seconds()

	s.Player.Update(s.field)
	s.resolver.AdvanceProjectiles(&s.World)

	for _, e := range s.Enemies {
		e.Update(s.Enemies, s.field, s.rng, dt)
	}

	out := s.resolver.Resolve(&s.World)

	for _, k := range out.Kills {
		s.Particles.Burst(s.rng, k.At, k.Color, s.cfg.Effects.DefeatParticles)
	}
	switch {
	case len(out.Kills) > 0:
		s.playSound(SoundEnemyDefeated)
	case out.ProjectileHits+out.MeleeHits > 0 || out.ContactDamage > 0:
		s.playSound(SoundHit)
	}
	return out
}
