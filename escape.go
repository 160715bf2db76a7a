package mandel

import "math"

// escapeRadius2 is |z|² beyond which an orbit is known to diverge.
const escapeRadius2 = 4.0

// EscapeTime iterates z -> z² + c from z = 0 and returns the number of steps
// taken before |z| reached 2, capped at maxIter. Points that never escape
// return maxIter.
func EscapeTime(cx, cy float64, maxIter int) int {
	var x, y float64
	n := 0
	for x*x+y*y < escapeRadius2 && n < maxIter {
		x, y = x*x-y*y+cx, 2*x*y+cy
		n++
	}
	return n
}

// IsCandidate reports whether c survives the closed-form membership tests
// for the period-2 bulb and the main cardioid. Both regions are inside the
// set, so a false result means the orbit never escapes. A true result says
// nothing; the orbit still has to be iterated.
func IsCandidate(cx, cy float64) bool {
	if (cx+1)*(cx+1)+cy*cy < 0.0625 {
		return false
	}
	p := math.Sqrt((cx-0.25)*(cx-0.25) + cy*cy)
	return cx-(p-2*p*p+0.25) >= 0
}

// OrbitBetween reports whether c is a candidate whose orbit escapes on a step
// with zero-based index in [minIter, maxIter). A point escaping on the very
// first step has index 0.
func OrbitBetween(cx, cy float64, minIter, maxIter int) bool {
	if !IsCandidate(cx, cy) {
		return false
	}
	var x, y float64
	for i := 0; i < maxIter; i++ {
		x, y = x*x-y*y+cx, 2*x*y+cy
		if x*x+y*y >= escapeRadius2 {
			return i >= minIter
		}
	}
	return false
}
