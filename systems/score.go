package systems

import (
	"strconv"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Points returns the score for destroying a piece of material m.
// Invisible supports are worth nothing.
func Points(m layout.Material) int {
	switch m {
	case layout.Wood:
		return cfg.Score.Wood
	case layout.Steel:
		return cfg.Score.Steel
	}
	return 0
}

func award(ecs *ecs.ECS, e *donburi.Entry) int {
	score := GetOrCreateScore(ecs)
	switch {
	case e.HasComponent(components.Piece):
		points := Points(components.Piece.Get(e).Material)
		if points > 0 {
			score.Pieces++
		}
		score.Points += points
		return points
	case e.HasComponent(components.Target):
		score.Targets++
		score.Points += cfg.Score.Target
		return cfg.Score.Target
	}
	return 0
}

// TargetsRemaining counts live targets.
func TargetsRemaining(ecs *ecs.ECS) int {
	return count(ecs, tags.Target)
}

// Cleared reports whether every target of the current level is gone.
func Cleared(ecs *ecs.ECS) bool {
	return TargetsRemaining(ecs) == 0
}

func formatPoints(points int) string {
	return "+" + strconv.Itoa(points)
}
