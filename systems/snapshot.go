package systems

import (
	"sort"
	"strconv"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/gamemath"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/cespare/xxhash/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodyState is one live body as seen by Snapshot.
type BodyState struct {
	Kind     string // material, target kind, "projectile" or "ground"
	Shape    string
	Mode     physics.BodyMode
	Position gamemath.Vec
}

// Snapshot lists every live body in a stable order, independent of entity
// and handle numbering.
func Snapshot(ecs *ecs.ECS) []BodyState {
	engine := factory.Engine(ecs)
	if engine == nil {
		return nil
	}
	var out []BodyState
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Body.Get(e).Handle
		s := BodyState{Kind: "ground", Mode: engine.Mode(h), Position: engine.Position(h)}
		switch {
		case e.HasComponent(components.Piece):
			p := components.Piece.Get(e)
			s.Kind, s.Shape = p.Material.String(), p.Shape.String()
		case e.HasComponent(components.Target):
			s.Kind = components.Target.Get(e).Kind.String()
		case e.HasComponent(components.Projectile):
			s.Kind = "projectile"
		}
		out = append(out, s)
	})
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Shape != b.Shape {
			return a.Shape < b.Shape
		}
		if a.Position.X != b.Position.X {
			return a.Position.X < b.Position.X
		}
		return a.Position.Y < b.Position.Y
	})
	return out
}

// WorldFingerprint hashes Snapshot.
func WorldFingerprint(ecs *ecs.ECS) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, s := range Snapshot(ecs) {
		buf = buf[:0]
		buf = append(buf, s.Kind...)
		buf = append(buf, '|')
		buf = append(buf, s.Shape...)
		buf = append(buf, '|')
		buf = strconv.AppendInt(buf, int64(s.Mode), 10)
		buf = append(buf, '|')
		buf = strconv.AppendFloat(buf, s.Position.X, 'f', 3, 64)
		buf = append(buf, '|')
		buf = strconv.AppendFloat(buf, s.Position.Y, 'f', 3, 64)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
