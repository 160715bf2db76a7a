package mandel

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"time"
)

// Params configures an Engine and the display loop driving it.
type Params struct {
	Region        Region
	Width, Height int
	Title         string

	// Starting points are kept when their orbit escapes on a step whose
	// zero-based index is in [MinIter, MaxIter).
	MinIter, MaxIter int

	// Workers is the number of sampling goroutines; 0 means GOMAXPROCS.
	Workers int
	// MaxDraws caps one rejection-sampling call; 0 means unlimited.
	MaxDraws int
	// Seed of worker i's random source is Seed+i; 0 derives it from the clock.
	Seed int64

	// Interval is the minimum wall time between display refreshes.
	Interval time.Duration

	// PointLogPath, when set, receives every accepted starting point.
	PointLogPath string
}

// DefaultParams renders the whole set into a 1200x800 window.
func DefaultParams() Params {
	return Params{
		Region:   FullSet,
		Width:    1200,
		Height:   800,
		Title:    "Buddhabrot",
		MinIter:  20,
		MaxIter:  1000,
		Workers:  1,
		MaxDraws: DefaultMaxDraws,
		Interval: time.Second,
	}
}

func (p Params) Validate() error {
	var errs []error
	if p.MinIter >= p.MaxIter {
		errs = append(errs, fmt.Errorf("window [%d,%d): %w", p.MinIter, p.MaxIter, ErrIterWindow))
	}
	if p.MinIter < 0 {
		errs = append(errs, fmt.Errorf("negative minIter %d", p.MinIter))
	}
	if p.Width < 2 || p.Height < 2 {
		errs = append(errs, fmt.Errorf("%dx%d: %w", p.Width, p.Height, ErrResolution))
	}
	if p.Region.Empty() {
		errs = append(errs, fmt.Errorf("%s: %w", p.Region, ErrEmptyRegion))
	}
	if p.Workers < 0 {
		errs = append(errs, fmt.Errorf("negative worker count %d", p.Workers))
	}
	if p.MaxDraws < 0 {
		errs = append(errs, fmt.Errorf("negative draw cap %d", p.MaxDraws))
	}
	if p.Interval < 0 {
		errs = append(errs, fmt.Errorf("negative refresh interval %s", p.Interval))
	}
	return errors.Join(errs...)
}

// DisplayParams implements Display with the configured window.
func (p Params) DisplayParams() (width, height int, title string) {
	return p.Width, p.Height, p.Title
}

var _ Display = Params{}

func (p Params) workers() int {
	if p.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Workers
}

func (p Params) seed() int64 {
	if p.Seed == 0 {
		return time.Now().UnixNano()
	}
	return p.Seed
}

// RegisterFlags binds the fields of p to flags on fs, using the current
// values of p as defaults.
func (p *Params) RegisterFlags(fs *flag.FlagSet) {
	fs.Var((*regionFlag)(&p.Region), "region", "predefined region to render: "+fmt.Sprint(RegionNames()))
	fs.IntVar(&p.Width, "width", p.Width, "histogram width in pixels")
	fs.IntVar(&p.Height, "height", p.Height, "histogram height in pixels")
	fs.IntVar(&p.MinIter, "min-iter", p.MinIter, "smallest escape step index kept")
	fs.IntVar(&p.MaxIter, "max-iter", p.MaxIter, "iteration cap; orbits still bounded after it are discarded")
	fs.IntVar(&p.Workers, "workers", p.Workers, "sampling goroutines, 0 for GOMAXPROCS")
	fs.IntVar(&p.MaxDraws, "max-draws", p.MaxDraws, "draw cap per starting point, 0 for unlimited")
	fs.Int64Var(&p.Seed, "seed", p.Seed, "random seed, 0 to derive from the clock")
	fs.DurationVar(&p.Interval, "interval", p.Interval, "minimum time between display refreshes")
	fs.StringVar(&p.PointLogPath, "points", p.PointLogPath, "append accepted starting points to this file")
}

// regionFlag accepts a predefined region name.
type regionFlag Region

func (f *regionFlag) String() string {
	if f == nil {
		return ""
	}
	r := Region(*f)
	for _, n := range RegionNames() {
		if regionsByName[n] == r {
			return n
		}
	}
	return r.String()
}

func (f *regionFlag) Set(name string) error {
	r, err := RegionByName(name)
	if err != nil {
		return err
	}
	*f = regionFlag(r)
	return nil
}
