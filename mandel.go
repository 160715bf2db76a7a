package mandel

import (
	"fmt"
	"sort"
	"strings"
)

// Region within the complex parameter plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Width returns the extent of the region along the real axis.
func (r Region) Width() float64 { return r.Xmax - r.Xmin }

// Height returns the extent of the region along the imaginary axis.
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Empty reports whether the region has no area.
func (r Region) Empty() bool { return !(r.Xmax > r.Xmin) || !(r.Ymax > r.Ymin) }

// Contains reports whether (x, y) lies in the closed region.
func (r Region) Contains(x, y float64) bool {
	return x >= r.Xmin && x <= r.Xmax && y >= r.Ymin && y <= r.Ymax
}

func (r Region) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Point is a sampled starting value c = X + iY.
type Point struct {
	X, Y float64
}

// Orbit density landmarks.
// Orbits are plotted in the same plane they are sampled from, so every region
// here is both the sampling rectangle and the visible window.
var (
	// FullSet – the whole set, the classic Buddhabrot framing
	FullSet = Region{
		Xmin: -2.0,
		Xmax: 1.0,
		Ymin: -1.0,
		Ymax: 1.0,
	}

	// WideField – extra margin so the outer orbit halo is not clipped
	WideField = Region{
		Xmin: -2.5,
		Xmax: 1.5,
		Ymin: -1.5,
		Ymax: 1.5,
	}

	// Ghost – the left half, where the "buddha head" of dense orbits sits
	Ghost = Region{
		Xmin: -2.0,
		Xmax: 0.0,
		Ymin: -1.0,
		Ymax: 1.0,
	}

	// Antenna – the needle along the negative real axis
	Antenna = Region{
		Xmin: -2.0,
		Xmax: -1.4,
		Ymin: -0.2,
		Ymax: 0.2,
	}
)

var regionsByName = map[string]Region{
	"full":    FullSet,
	"wide":    WideField,
	"ghost":   Ghost,
	"antenna": Antenna,
}

// RegionByName looks up one of the predefined regions.
func RegionByName(name string) (Region, error) {
	r, ok := regionsByName[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("unknown region %q (known: %s)", name, strings.Join(RegionNames(), ", "))
	}
	return r, nil
}

// RegionNames lists the predefined region names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regionsByName))
	for n := range regionsByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
