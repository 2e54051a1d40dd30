package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool // recomputed from the floor line every tick, never sticky
}

var Physics = donburi.NewComponentType[PhysicsData]()
