package main

import (
	"flag"
	"log"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/logging"
	"github.com/automoto/slingshot/scenes"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{}
	g.scene = scenes.NewLevelScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	assetDir := flag.String("assets", assets.DefaultRoot, "Directory holding sprite images")
	configPath := flag.String("config", "", "Optional YAML tuning file")
	debug := flag.Bool("debug", false, "Verbose logging and collider overlay")
	level := flag.Int("level", -1, "Level to start on (-1 resumes the last one)")
	seed := flag.Uint64("seed", 0, "Flavor text seed (0 for random)")
	flag.Parse()

	logger, restore, err := logging.New(*debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer restore()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Fatal("bad config file", zap.String("path", *configPath), zap.Error(err))
		}
	}
	if *debug {
		config.Debug.Overlay = true
	}

	assets.SetRoot(*assetDir)
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.BannerFontSize); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	// Initialize persistence and load saved settings
	var saved *systems.SavedSettings
	if err := systems.InitPersistence("slingshot"); err != nil {
		logger.Warn("settings will not persist", zap.Error(err))
	} else if saved, err = systems.LoadSettings(); err != nil {
		logger.Warn("ignoring saved settings", zap.Error(err))
		saved = nil
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Slingshot")

	game := NewGame(scenes.Options{Level: *level, Seed: *seed, Settings: saved})
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
