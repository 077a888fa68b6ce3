package tags

import "github.com/yohamta/donburi"

var (
	Piece      = donburi.NewTag().SetName("Piece")
	Support    = donburi.NewTag().SetName("Support")
	Target     = donburi.NewTag().SetName("Target")
	Projectile = donburi.NewTag().SetName("Projectile")
	Anchor     = donburi.NewTag().SetName("Anchor")
	Ground     = donburi.NewTag().SetName("Ground")
	Popup      = donburi.NewTag().SetName("Popup")
)
