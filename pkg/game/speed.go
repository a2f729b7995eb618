package game

import (
	"math"
	"time"
)

// Speed returns the gravity period after the score went from prevScore to
// newScore. Every multiple of linesPerLevel crossed multiplies the period by
// factor once. The result never drops below minSpeed unless speed already did.
func Speed(speed time.Duration, prevScore int, newScore int, linesPerLevel int, factor float64, minSpeed time.Duration) time.Duration {
	before := prevScore / linesPerLevel
	after := newScore / linesPerLevel
	if after <= before {
		return speed
	}

	next := time.Duration(float64(speed) * math.Pow(factor, float64(after-before)))
	if next < minSpeed {
		if speed < minSpeed {
			return speed
		}
		return minSpeed
	}

	return next
}
