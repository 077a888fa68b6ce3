package systems

import (
	"math/rand/v2"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RespawnScheduler replaces the projectile once no bird has rested on the
// launcher for the configured delay. Flavor text is drawn from rng.
type RespawnScheduler struct {
	rng *rand.Rand
}

// NewRespawnScheduler returns a scheduler drawing flavor text from rng.
// A nil rng is replaced by a randomly seeded one.
func NewRespawnScheduler(rng *rand.Rand) *RespawnScheduler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RespawnScheduler{rng: rng}
}

// Update is the respawn system. The countdown holds at its full value while
// a bird sits on the launcher and runs down from the moment of launch.
func (r *RespawnScheduler) Update(ecs *ecs.ECS) {
	state := GetOrCreateRespawn(ecs)
	if OnLauncher(ecs) {
		state.Remaining = cfg.Respawn.Delay
		return
	}

	var done bool
	state.Remaining, done = gamemath.Countdown(state.Remaining, tickDt(ecs))
	if !done {
		return
	}

	// A launched bird may still be flying; only one may exist.
	replaced := removeProjectiles(ecs)
	factory.CreateProjectile(ecs)
	state.Remaining = cfg.Respawn.Delay
	state.Spawns++
	state.Flavor = r.Flavor()

	zap.L().Debug("projectile respawned",
		zap.Int("spawn", state.Spawns),
		zap.Int("replaced", replaced),
		zap.String("flavor", state.Flavor),
	)
}

// Flavor picks a line uniformly from the configured pool.
func (r *RespawnScheduler) Flavor() string {
	pool := cfg.Respawn.FlavorText
	if len(pool) == 0 {
		return ""
	}
	return pool[r.rng.IntN(len(pool))]
}
