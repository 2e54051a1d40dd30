package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton frame clock. DeltaMS is the measured
// wall-clock duration of the previous frame; physics integrates with
// it directly, so the simulation runs at real-time rate rather than a
// fixed step. Ebiten's TPS setting supplies the frame-rate cap.
type ClockData struct {
	LastFrame time.Time
	DeltaMS   float64
	Started   bool
}

var Clock = donburi.NewComponentType[ClockData]()
