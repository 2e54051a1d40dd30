package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall-clock duration of the previous frame.
// Must run first in the system order; everything downstream integrates
// with the measured delta. The first frame reports zero so a long
// startup never produces a physics jump.
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e)
	now := time.Now()
	if clock.Started {
		clock.DeltaMS = float64(now.Sub(clock.LastFrame).Microseconds()) / 1000.0
	} else {
		clock.Started = true
		clock.DeltaMS = 0
	}
	clock.LastFrame = now
}
