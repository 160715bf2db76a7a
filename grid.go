package mandel

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrResolution  = errors.New("grid resolution must be at least 2x2")
	ErrEmptyRegion = errors.New("region has no area")
)

// Corner selects which point of a pixel cell PointAt returns.
type Corner int

const (
	Center Corner = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

// offset returns the corner position inside a cell, in pixel units.
// Row 0 sits at Ymin, so "top" is the Ymin edge of the cell.
func (c Corner) offset() (dx, dy float64) {
	switch c {
	case TopLeft:
		return 0, 0
	case TopRight:
		return 1, 0
	case BottomLeft:
		return 0, 1
	case BottomRight:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

func (c Corner) String() string {
	switch c {
	case Center:
		return "center"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

// Grid is a ResX x ResY histogram laid over a Region. Each pixel cell is one
// 32-bit hit counter.
//
// A Grid is not safe for concurrent use. The engine gives each worker its own
// Grid and only reads it while that worker is paused.
type Grid struct {
	Region
	ResX, ResY int

	counts []uint32
}

func NewGrid(r Region, resX, resY int) (*Grid, error) {
	if resX < 2 || resY < 2 {
		return nil, fmt.Errorf("%dx%d: %w", resX, resY, ErrResolution)
	}
	if r.Empty() {
		return nil, fmt.Errorf("%s: %w", r, ErrEmptyRegion)
	}
	return &Grid{Region: r, ResX: resX, ResY: resY}, nil
}

// Paint allocates the hit counters. Only the first call allocates; later
// calls return false and leave the buffer as it is.
func (g *Grid) Paint() bool {
	if g.counts != nil {
		return false
	}
	g.counts = make([]uint32, g.ResX*g.ResY)
	return true
}

// ByteLen is the size of the counter buffer in bytes, 4*ResX*ResY once painted.
func (g *Grid) ByteLen() int { return 4 * len(g.counts) }

// PointAt maps pixel (px, py) to the plane using span = (max-min)/res.
func (g *Grid) PointAt(px, py int, c Corner) (x, y float64, ok bool) {
	if px < 0 || px >= g.ResX || py < 0 || py >= g.ResY {
		return 0, 0, false
	}
	dx, dy := c.offset()
	spanX := g.Width() / float64(g.ResX)
	spanY := g.Height() / float64(g.ResY)
	return g.Xmin + (float64(px)+dx)*spanX, g.Ymin + (float64(py)+dy)*spanY, true
}

// PixelAt maps a plane position to the pixel containing it. The span is taken
// over res-1 cells, so Xmax lands on the last column instead of one past it.
// As a result PixelAt is not an exact inverse of PointAt: points in the upper
// half of an axis resolve up to one pixel lower.
func (g *Grid) PixelAt(x, y float64) (px, py int, ok bool) {
	if !g.Contains(x, y) {
		return 0, 0, false
	}
	spanX := g.Width() / float64(g.ResX-1)
	spanY := g.Height() / float64(g.ResY-1)
	px = int(math.Floor((x - g.Xmin) / spanX))
	py = int(math.Floor((y - g.Ymin) / spanY))
	if px >= g.ResX || py >= g.ResY {
		return 0, 0, false
	}
	return px, py, true
}

// Hit increments the counter of pixel (px, py). Counters wrap on overflow.
func (g *Grid) Hit(px, py int) {
	g.counts[py*g.ResX+px]++
}

// At returns the counter of pixel (px, py).
func (g *Grid) At(px, py int) uint32 {
	return g.counts[py*g.ResX+px]
}

// Counts exposes the row-major counter buffer. Nil until Paint.
func (g *Grid) Counts() []uint32 { return g.counts }

// Total sums every counter.
func (g *Grid) Total() uint64 {
	var sum uint64
	for _, c := range g.counts {
		sum += uint64(c)
	}
	return sum
}
