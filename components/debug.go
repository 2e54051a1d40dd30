package components

import "github.com/yohamta/donburi"

// DebugData toggles the diagnostic overlay (F1)
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
