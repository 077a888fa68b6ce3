// Package sim drives a level without a window: scripted launches, a fixed
// number of ticks and a summary of what is left standing.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options configure a Runner.
type Options struct {
	Level  int
	Seed   uint64
	Pulls  []gamemath.Vec  // drag vectors, one per launch, taken in order
	Engine physics.Engine // nil builds a Chipmunk space from the config
}

// Result summarizes a finished run.
type Result struct {
	Level       string
	Ticks       int
	Score       components.ScoreData
	TargetsLeft int
	Cleared     bool
	Bodies      int
	Fingerprint uint64
}

// Runner owns one headless world.
type Runner struct {
	ecs   *ecs.ECS
	pulls []gamemath.Vec
	ticks int
}

func NewRunner(opts Options) *Runner {
	e := ecs.NewECS(donburi.NewWorld())
	systems.AddCoreSystems(e, systems.NewRespawnScheduler(rand.New(rand.NewPCG(opts.Seed, opts.Seed))))

	engine := opts.Engine
	if engine == nil {
		engine = physics.NewSpace(cfg.Physics.Gravity, cfg.Physics.Iterations)
	}
	factory.CreatePhysics(e, engine)
	factory.CreateGround(e)
	factory.CreateAnchor(e)
	systems.StartLevel(e, opts.Level)

	return &Runner{ecs: e, pulls: append([]gamemath.Vec(nil), opts.Pulls...)}
}

// ECS exposes the world for inspection.
func (r *Runner) ECS() *ecs.ECS {
	return r.ecs
}

// Run advances up to ticks frames, launching the next scripted pull each
// time a bird is waiting on the launcher. It stops early when ctx is done.
func (r *Runner) Run(ctx context.Context, ticks int) (Result, error) {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return r.Result(), fmt.Errorf("run stopped after %d ticks: %w", r.ticks, err)
		}
		r.step()
	}
	return r.Result(), nil
}

func (r *Runner) step() {
	bird, ok := systems.CurrentProjectile(r.ecs)
	drag := systems.GetOrCreateDrag(r.ecs)

	switch {
	case drag.Dragging && len(r.pulls) > 0:
		pull := r.pulls[0]
		r.pulls = r.pulls[1:]
		release := drag.Start.Sub(pull)
		r.tick(release, false, false, true)
		zap.L().Debug("scripted launch", zap.Float64("dx", pull.X), zap.Float64("dy", pull.Y))
	case ok && len(r.pulls) > 0 && components.Projectile.Get(bird).OnLauncher:
		at := factory.Engine(r.ecs).Position(components.Body.Get(bird).Handle)
		r.tick(at, true, true, false)
	default:
		r.tick(gamemath.V(1e6, 1e6), false, false, false)
	}
}

func (r *Runner) tick(p gamemath.Vec, pressed, held, released bool) {
	systems.SetPointerWorld(r.ecs, p, pressed, held, released)
	r.ecs.Update()
	r.ticks++
}

// Result reports the current state of the world.
func (r *Runner) Result() Result {
	res := Result{
		Ticks:       r.ticks,
		Score:       *systems.GetOrCreateScore(r.ecs),
		TargetsLeft: systems.TargetsRemaining(r.ecs),
		Cleared:     systems.Cleared(r.ecs),
		Bodies:      len(systems.Snapshot(r.ecs)),
		Fingerprint: systems.WorldFingerprint(r.ecs),
	}
	if level := systems.GetLevel(r.ecs); level != nil {
		res.Level = level.Layout.Name
	}
	return res
}

// ParsePulls reads drag vectors written as "x,y;x,y".
func ParsePulls(s string) ([]gamemath.Vec, error) {
	var out []gamemath.Vec
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("pull %q: want x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("pull %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("pull %q: %w", part, err)
		}
		out = append(out, gamemath.V(x, y))
	}
	return out, nil
}
