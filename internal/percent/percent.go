// Package percent is the rounding shared by every widget that shows a
// percentage.
package percent

import "math"

// Round rounds half up.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Of is round(100*part/whole), or 0 when whole is not positive.
func Of(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return Round(100 * part / whole)
}
