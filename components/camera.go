package components

import (
	"github.com/automoto/slingshot/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData maps y-up world space to y-down screen pixels.
type CameraData struct {
	Center gamemath.Vec // world point at the screen center
	Zoom   float64
	Width  int
	Height int
}

var Camera = donburi.NewComponentType[CameraData]()

// ToScreen converts a world point to screen pixels.
func (c *CameraData) ToScreen(p gamemath.Vec) gamemath.Vec {
	return gamemath.V(
		(p.X-c.Center.X)*c.Zoom+float64(c.Width)/2,
		float64(c.Height)/2-(p.Y-c.Center.Y)*c.Zoom,
	)
}

// ToWorld converts screen pixels to a world point.
func (c *CameraData) ToWorld(s gamemath.Vec) gamemath.Vec {
	return gamemath.V(
		(s.X-float64(c.Width)/2)/c.Zoom+c.Center.X,
		(float64(c.Height)/2-s.Y)/c.Zoom+c.Center.Y,
	)
}
