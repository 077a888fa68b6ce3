package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is an optional visual. A nil Image draws nothing.
type SpriteData struct {
	Image  *ebiten.Image
	Hidden bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
