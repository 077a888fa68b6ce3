package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RequestReset asks the reset system to rebuild the level this tick.
func RequestReset(ecs *ecs.ECS) {
	GetOrCreateResetRequest(ecs).Pending = true
}

// RequestNextLevel asks the reset system to advance one level and rebuild.
func RequestNextLevel(ecs *ecs.ECS) {
	req := GetOrCreateResetRequest(ecs)
	req.Pending = true
	req.Advance++
}

// UpdateReset consumes reset requests from the keyboard or the UI.
func UpdateReset(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionReset).JustPressed {
		RequestReset(ecs)
	}
	if GetAction(input, cfg.ActionNextLevel).JustPressed {
		RequestNextLevel(ecs)
	}

	req := GetOrCreateResetRequest(ecs)
	if !req.Pending {
		return
	}
	advance := req.Advance
	*req = components.ResetRequestData{}

	if advance != 0 {
		ChangeLevel(ecs, advance)
		return
	}
	ResetLevel(ecs)
}

// ResetLevel removes every piece, target, projectile and popup, rebuilds the
// current layout and puts a fresh projectile on the launcher. Calling it
// twice yields the same world as calling it once.
func ResetLevel(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	var doomed []*donburi.Entry
	collect := func(e *donburi.Entry) { doomed = append(doomed, e) }
	tags.Piece.Each(ecs.World, collect)
	tags.Target.Each(ecs.World, collect)
	tags.Projectile.Each(ecs.World, collect)
	tags.Popup.Each(ecs.World, collect)
	for _, e := range doomed {
		factory.Destroy(ecs, e)
	}

	level.Structure = factory.Instantiate(ecs, level.Layout)
	factory.CreateProjectile(ecs)
	level.Resets++

	respawn := GetOrCreateRespawn(ecs)
	respawn.Remaining = cfg.Respawn.Delay
	*GetOrCreateDrag(ecs) = components.DragData{}
	*GetOrCreateScore(ecs) = components.ScoreData{}
	GetOrCreateHud(ecs).Banner = ""

	zap.L().Info("level reset",
		zap.String("level", level.Layout.Name),
		zap.Int("index", level.Index),
		zap.Uint64("fingerprint", level.Fingerprint),
		zap.Int("removed", len(doomed)),
		zap.Int("resets", level.Resets),
	)
}
