package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuning is the subset of configuration that may be overridden from YAML.
// It starts as a copy of the globals so absent keys keep their values.
type tuning struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Launch      LaunchConfig      `yaml:"launch"`
	Destruction DestructionConfig `yaml:"destruction"`
	Respawn     RespawnConfig     `yaml:"respawn"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Piece       PieceConfig       `yaml:"piece"`
	World       WorldConfig       `yaml:"world"`
	Score       ScoreConfig       `yaml:"score"`
}

func current() tuning {
	return tuning{
		Physics:     Physics,
		Launch:      Launch,
		Destruction: Destruction,
		Respawn:     Respawn,
		Projectile:  Projectile,
		Piece:       Piece,
		World:       World,
		Score:       Score,
	}
}

func (t tuning) install() {
	Physics = t.Physics
	Launch = t.Launch
	Destruction = t.Destruction
	Respawn = t.Respawn
	Projectile = t.Projectile
	Piece = t.Piece
	World = t.World
	Score = t.Score
}

// LoadFile overlays the YAML document at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply overlays a YAML document onto the current configuration. Nothing
// is changed unless the merged result validates.
func Apply(data []byte) error {
	doc := current()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}
	doc.install()
	return nil
}

// Validate checks the tuning values the game logic depends on.
func Validate() error {
	return current().validate()
}

func (t tuning) validate() error {
	var errs []error
	if t.Physics.Step <= 0 {
		errs = append(errs, fmt.Errorf("physics.step must be positive, got %v", t.Physics.Step))
	}
	if t.Launch.PickRadius <= 0 {
		errs = append(errs, fmt.Errorf("launch.pickRadius must be positive, got %v", t.Launch.PickRadius))
	}
	if t.Respawn.Delay <= 0 {
		errs = append(errs, fmt.Errorf("respawn.delay must be positive, got %v", t.Respawn.Delay))
	}
	if len(t.Respawn.FlavorText) == 0 {
		errs = append(errs, errors.New("respawn.flavorText must not be empty"))
	}
	thresholds := []struct {
		name string
		v    float64
	}{
		{"steel", t.Destruction.Steel},
		{"wood", t.Destruction.Wood},
		{"invisibleSupport", t.Destruction.InvisibleSupport},
		{"target", t.Destruction.Target},
	}
	for _, th := range thresholds {
		if th.v <= 0 {
			errs = append(errs, fmt.Errorf("destruction.%s must be positive, got %v", th.name, th.v))
		}
	}
	if t.Projectile.Radius <= 0 || t.Projectile.Density <= 0 {
		errs = append(errs, errors.New("projectile radius and density must be positive"))
	}
	return errors.Join(errs...)
}
