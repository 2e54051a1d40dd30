package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type FighterData struct {
	Name          string
	Color         color.RGBA
	Facing        float64 // config.DirectionLeft or config.DirectionRight
	SpawnFraction float64 // fraction of arena width the fighter resets to
}

var Fighter = donburi.NewComponentType[FighterData]()
