package systems

import (
	"math"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/layout"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	background *ebiten.Image
	bgLoaded   bool
)

// DrawBackground fills the sky and draws the backdrop sprite if present.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackdropColor)
	if !bgLoaded {
		background = assets.Sprite("background.png")
		bgLoaded = true
	}
	if background == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := background.Bounds().Dx(), background.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	screen.DrawImage(background, drawOp)
}

// DrawGround renders the static ground slab.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := GetOrCreateCamera(ecs)
	size := cfg.World.GroundSize
	topLeft := camera.ToScreen(cfg.World.GroundCenter.Add(gamemath.V(-size.X/2, size.Y/2)))
	vector.DrawFilledRect(screen,
		float32(topLeft.X), float32(topLeft.Y),
		float32(size.X*camera.Zoom), float32(size.Y*camera.Zoom),
		cfg.UI.GroundColor, false)
}

// DrawSprites renders every entity with a loaded sprite, scaled to its
// collider bounds. Entities without a sprite draw nothing.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	engine := factory.Engine(ecs)
	camera := GetOrCreateCamera(ecs)

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || sprite.Hidden {
			return
		}

		pos, rot := poseOf(engine, e)
		iw, ih := float64(sprite.Image.Bounds().Dx()), float64(sprite.Image.Bounds().Dy())
		w, h := spriteSize(e)
		if w <= 0 || h <= 0 {
			w, h = iw, ih
		}
		at := camera.ToScreen(pos)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-iw/2, -ih/2)
		drawOp.GeoM.Scale(w/iw*camera.Zoom, h/ih*camera.Zoom)
		// Screen space is y-down, so world rotation flips sign.
		drawOp.GeoM.Rotate(-rot)
		drawOp.GeoM.Translate(at.X, at.Y)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawDragLine draws the slingshot band while a launch is being aimed.
func DrawDragLine(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDrag(ecs).Dragging {
		return
	}
	bird, ok := CurrentProjectile(ecs)
	if !ok {
		return
	}
	camera := GetOrCreateCamera(ecs)
	from := camera.ToScreen(cfg.World.Anchor.Add(cfg.Projectile.SpawnOffset))
	to := camera.ToScreen(factory.Engine(ecs).Position(components.Body.Get(bird).Handle))
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 4, cfg.UI.DragLineColor, true)
}

func poseOf(engine physics.Engine, e *donburi.Entry) (gamemath.Vec, float64) {
	if e.HasComponent(components.Body) && engine != nil {
		h := components.Body.Get(e).Handle
		return engine.Position(h), engine.Rotation(h)
	}
	if e.HasComponent(components.Placement) {
		p := components.Placement.Get(e)
		return p.Position, p.Rotation
	}
	return gamemath.Vec{}, 0
}

// colliderOf returns the geometry an entity was created with.
func colliderOf(e *donburi.Entry) (physics.Collider, bool) {
	switch {
	case e.HasComponent(components.Piece):
		return layout.Collider(components.Piece.Get(e).Shape), true
	case e.HasComponent(components.Target):
		return layout.TargetCollider(components.Target.Get(e).Kind), true
	case e.HasComponent(components.Projectile):
		return physics.CircleCollider(cfg.Projectile.Radius), true
	case e.HasComponent(tags.Ground):
		return physics.RectCollider(cfg.World.GroundSize.X, cfg.World.GroundSize.Y), true
	}
	return physics.Collider{}, false
}

func spriteSize(e *donburi.Entry) (float64, float64) {
	c, ok := colliderOf(e)
	if !ok {
		return 0, 0
	}
	lo := gamemath.V(math.Inf(1), math.Inf(1))
	hi := gamemath.V(math.Inf(-1), math.Inf(-1))
	for _, p := range c.Outline(gamemath.Vec{}, 0) {
		lo = gamemath.V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = gamemath.V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	return hi.X - lo.X, hi.Y - lo.Y
}
