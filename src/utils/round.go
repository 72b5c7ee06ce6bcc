package utils

import "math"

// Round truncates a value to the given number of decimal places for
// presentation. The core keeps full precision; only the boundary rounds.
func Round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
