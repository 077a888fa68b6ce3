package scenes

import (
	"math/rand/v2"
	"sync"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options configure a LevelScene.
type Options struct {
	Level    int
	Seed     uint64 // zero picks a random flavor-text sequence
	Settings *systems.SavedSettings
}

// LevelScene runs one slingshot level with the HUD overlay.
type LevelScene struct {
	ecs          *ecs.ECS
	hud          *ui.HUD
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

func NewLevelScene(sc SceneChanger, opts Options) *LevelScene {
	return &LevelScene{sceneChanger: sc, opts: opts}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.hud.Update()
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackdropColor)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
	ls.hud.Draw(screen)
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input systems run first, even when paused
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugToggle)

	systems.AddCoreSystems(ecs, systems.NewRespawnScheduler(ls.rng()))

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawGround)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDragLine)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPopups)
	ecs.AddRenderer(cfg.Overlay, systems.DrawBanner)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ls.ecs = ecs

	space := physics.NewSpace(cfg.Physics.Gravity, cfg.Physics.Iterations)
	factory.CreatePhysics(ls.ecs, space)
	factory.CreateGround(ls.ecs)
	factory.CreateAnchor(ls.ecs)
	systems.GetOrCreateCamera(ls.ecs)

	level := ls.opts.Level
	if saved := ls.opts.Settings; saved != nil {
		systems.ApplySavedSettings(ls.ecs, saved)
		if level < 0 {
			level = saved.LastLevel
		}
	}
	if level < 0 {
		level = 0
	}
	systems.StartLevel(ls.ecs, level)

	ls.hud = ui.NewHUD(ls.ecs)
	zap.L().Info("level scene ready", zap.Int("level", level), zap.Uint64("seed", ls.opts.Seed))
}

func (ls *LevelScene) rng() *rand.Rand {
	if ls.opts.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(ls.opts.Seed, ls.opts.Seed))
}
