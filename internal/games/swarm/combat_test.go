package swarm

import (
	"testing"

	"github.com/vovakirdan/swarm/internal/core"
)

func newTestResolver() *Resolver {
	return &Resolver{Field: testField(), KillScore: 10}
}

// Player occupies (375,275)-(425,325).
func TestResolveProjectileKillsAndScores(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	fast := newTestEnemy(EnemyFast, core.V(100, 100), 0, nil)
	w.Enemies = []*Enemy{fast, newTestEnemy(EnemyBasic, core.V(600, 100), 0, nil)}
	w.Projectiles = []*Projectile{NewProjectile(core.V(110, 110), core.V(200, 110), 0, 20, 5, 10)}

	out := newTestResolver().Resolve(w)

	if out.ProjectileHits != 1 || len(out.Kills) != 1 {
		t.Fatalf("Outcome = %+v, expected one hit and one kill", out)
	}
	if k := out.Kills[0]; k.Type != EnemyFast || k.Points != 15 || k.Color != core.ColorOrange {
		t.Errorf("Kill = %+v, expected fast enemy worth 15 in orange", k)
	}
	if w.Player.Score != 15 {
		t.Errorf("Score = %d, expected 15", w.Player.Score)
	}
	if len(w.Enemies) != 1 || len(w.Projectiles) != 0 {
		t.Errorf("after resolve: %d enemies, %d projectiles, expected 1 and 0", len(w.Enemies), len(w.Projectiles))
	}
	if out.Victory {
		t.Error("Victory with an enemy left")
	}
}

func TestResolveProjectileHitsOnlyFirstEnemy(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	a := newTestEnemy(EnemyTank, core.V(100, 100), 0, nil)
	b := newTestEnemy(EnemyTank, core.V(110, 110), 0, nil)
	w.Enemies = []*Enemy{a, b}
	w.Projectiles = []*Projectile{NewProjectile(core.V(130, 130), core.V(130, 130), 0, 20, 5, 10)}

	out := newTestResolver().Resolve(w)

	if out.ProjectileHits != 1 {
		t.Errorf("ProjectileHits = %d, expected 1", out.ProjectileHits)
	}
	if a.Health != 40 || b.Health != 60 {
		t.Errorf("health = %d/%d, expected 40/60", a.Health, b.Health)
	}
}

func TestAdvanceProjectilesDropsExpiredAndOutside(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	keep := NewProjectile(core.V(400, 300), core.V(500, 300), 10, 20, 5, 100)
	expire := NewProjectile(core.V(400, 300), core.V(500, 300), 10, 20, 5, 1)
	leave := NewProjectile(core.V(795, 300), core.V(900, 300), 10, 20, 5, 100)
	w.Projectiles = []*Projectile{keep, expire, leave}

	newTestResolver().AdvanceProjectiles(w)

	if len(w.Projectiles) != 1 || w.Projectiles[0] != keep {
		t.Errorf("Projectiles = %v, expected only the live one", w.Projectiles)
	}
	if !expire.Removed() || !leave.Removed() {
		t.Error("dropped projectiles should be marked removed")
	}
}

func TestResolveContactDamageEveryTick(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	w.Enemies = []*Enemy{
		newTestEnemy(EnemyBasic, core.V(380, 280), 0, nil),
		newTestEnemy(EnemyTank, core.V(390, 290), 0, nil),
	}
	r := newTestResolver()

	out := r.Resolve(w)
	if out.ContactDamage != 3 {
		t.Errorf("ContactDamage = %d, expected 3", out.ContactDamage)
	}
	r.Resolve(w)
	if w.Player.Health != 94 {
		t.Errorf("Health = %d, expected 94 after two ticks", w.Player.Health)
	}
}

func TestResolveContactInvulnerability(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	w.Enemies = []*Enemy{newTestEnemy(EnemyBasic, core.V(380, 280), 0, nil)}
	r := newTestResolver()
	r.ContactInvulnerability = 3

	expected := []int{99, 99, 99, 99, 98}
	for i, want := range expected {
		r.Resolve(w)
		if w.Player.Health != want {
			t.Errorf("tick %d: Health = %d, expected %d", i+1, w.Player.Health, want)
		}
	}

	r.Reset()
	r.Resolve(w)
	if w.Player.Health != 97 {
		t.Errorf("after Reset: Health = %d, expected 97", w.Player.Health)
	}
}

func TestResolveMelee(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	// Inside the 150x150 attack square, not touching the player
	tank := newTestEnemy(EnemyTank, core.V(330, 200), 0, nil)
	far := newTestEnemy(EnemyBasic, core.V(700, 500), 0, nil)
	w.Enemies = []*Enemy{tank, far}
	r := newTestResolver()

	out := r.Resolve(w)
	if out.MeleeHits != 0 {
		t.Errorf("MeleeHits = %d without attacking, expected 0", out.MeleeHits)
	}

	w.Player.Attack()
	for i := 0; i < 3; i++ {
		out = r.Resolve(w)
	}
	if out.MeleeHits != 1 || len(out.Kills) != 1 {
		t.Errorf("Outcome = %+v, expected the third swing to kill the tank", out)
	}
	if len(w.Enemies) != 1 || w.Enemies[0] != far {
		t.Errorf("Enemies = %v, expected only the distant one", w.Enemies)
	}
	if w.Player.Score != 20 {
		t.Errorf("Score = %d, expected 20", w.Player.Score)
	}
}

func TestResolveVictory(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	w.Enemies = []*Enemy{newTestEnemy(EnemyBasic, core.V(330, 230), 0, nil)}
	w.Player.Attack()

	out := newTestResolver().Resolve(w)

	if !out.Victory {
		t.Errorf("Outcome = %+v, expected victory", out)
	}
	if len(w.Enemies) != 0 {
		t.Errorf("%d enemies left, expected 0", len(w.Enemies))
	}
}

func TestResolveDefeatTakesPrecedence(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	w.Player.Health = 1
	enemy := newTestEnemy(EnemyBasic, core.V(380, 280), 0, nil)
	w.Enemies = []*Enemy{enemy}
	w.Player.Attack()

	out := newTestResolver().Resolve(w)

	if !out.PlayerDefeated {
		t.Fatal("expected the player to be defeated")
	}
	if out.Victory || out.MeleeHits != 0 {
		t.Errorf("Outcome = %+v, melee must not run after defeat", out)
	}
	if enemy.Health != 20 {
		t.Errorf("enemy Health = %d, expected untouched 20", enemy.Health)
	}
}

func TestCompactClearsTail(t *testing.T) {
	a := newTestEnemy(EnemyBasic, core.V(0, 0), 0, nil)
	b := newTestEnemy(EnemyBasic, core.V(100, 0), 0, nil)
	c := newTestEnemy(EnemyBasic, core.V(200, 0), 0, nil)
	b.removed = true
	w := &World{Enemies: []*Enemy{a, b, c}}
	backing := w.Enemies

	w.compactEnemies()

	if len(w.Enemies) != 2 || w.Enemies[0] != a || w.Enemies[1] != c {
		t.Errorf("Enemies = %v, expected [a c]", w.Enemies)
	}
	if backing[2] != nil {
		t.Error("tail slot should be cleared")
	}
}

func TestResolveSingleHitKillScoresTen(t *testing.T) {
	w := &World{Player: newTestPlayer()}
	basic := newTestEnemy(EnemyBasic, core.V(100, 100), 0, nil)
	w.Enemies = []*Enemy{basic, newTestEnemy(EnemyBasic, core.V(600, 500), 0, nil)}
	w.Projectiles = []*Projectile{NewProjectile(core.V(120, 120), core.V(121, 120), 0, 20, 5, 10)}

	out := newTestResolver().Resolve(w)

	if len(out.Kills) != 1 || out.Kills[0].Points != 10 || w.Player.Score != 10 {
		t.Errorf("Outcome = %+v, score %d, expected one kill worth 10", out, w.Player.Score)
	}
	if !basic.Removed() {
		t.Error("defeated enemy should be marked removed")
	}
}
