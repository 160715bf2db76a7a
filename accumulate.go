package mandel

// Accumulate replays the orbit of p and bumps the counter of every pixel the
// orbit visits before it escapes. Positions outside the grid are skipped.
// It returns the number of counters incremented, at most maxIter. A grid
// that has not been painted has no counters and gets no hits.
func Accumulate(g *Grid, p Point, maxIter int) int {
	if g.Counts() == nil {
		return 0
	}
	hits := 0
	var x, y float64
	for i := 0; i < maxIter; i++ {
		x, y = x*x-y*y+p.X, 2*x*y+p.Y
		if x*x+y*y >= escapeRadius2 {
			break
		}
		if px, py, ok := g.PixelAt(x, y); ok {
			g.Hit(px, py)
			hits++
		}
	}
	return hits
}
