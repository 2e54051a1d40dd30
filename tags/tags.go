package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
)

// Resolv tags for collision objects
const (
	ResolvFighter = "fighter"
)
