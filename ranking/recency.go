package ranking

import (
	"math"
	"time"
)

const (
	recencyDecayPerDay = 0.1
	recencyFloor       = 0.1
)

// RecencyWeight maps a creation time to a freshness weight. A card created at
// the current instant weighs 1.0, the weight drops by 0.1 per day of age
// (fractional days count) and floors at 0.1 for anything nine or more days
// old.
func RecencyWeight(createdAt, now time.Time) float64 {
	daysOld := now.Sub(createdAt).Hours() / 24
	return math.Max(recencyFloor, 1.0-daysOld*recencyDecayPerDay)
}
