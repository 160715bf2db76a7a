package mandel

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultMaxDraws bounds the rejection loop of a single Sample call.
// Over the full set roughly one draw in a few hundred is accepted with the
// default iteration window, so this only trips when the window or region
// admits no orbit at all.
const DefaultMaxDraws = 10_000_000

var (
	ErrIterWindow = errors.New("minIter must be smaller than maxIter")
	ErrNoOrbit    = errors.New("no starting point with an orbit in the iteration window")
)

// Sampler draws starting points whose orbits escape inside the iteration
// window. It owns its random source and is not safe for concurrent use.
type Sampler struct {
	region           Region
	minIter, maxIter int
	maxDraws         int
	rng              *rand.Rand
	log              *PointLog

	draws uint64
}

type SamplerOption func(*Sampler)

// WithMaxDraws caps the number of draws per Sample call. 0 means unlimited,
// in which case an empty window makes Sample spin forever.
func WithMaxDraws(n int) SamplerOption {
	return func(s *Sampler) { s.maxDraws = n }
}

// WithPointLog records every accepted starting point.
func WithPointLog(l *PointLog) SamplerOption {
	return func(s *Sampler) { s.log = l }
}

func NewSampler(r Region, minIter, maxIter int, rng *rand.Rand, opts ...SamplerOption) (*Sampler, error) {
	if minIter >= maxIter {
		return nil, fmt.Errorf("window [%d,%d): %w", minIter, maxIter, ErrIterWindow)
	}
	if r.Empty() {
		return nil, fmt.Errorf("sampling %s: %w", r, ErrEmptyRegion)
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	s := &Sampler{
		region:   r,
		minIter:  minIter,
		maxIter:  maxIter,
		maxDraws: DefaultMaxDraws,
		rng:      rng,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// MaxIter is the upper bound of the iteration window.
func (s *Sampler) MaxIter() int { return s.maxIter }

// Draws is the total number of candidate points drawn so far.
func (s *Sampler) Draws() uint64 { return s.draws }

// Sample draws uniform points from the region until one has an orbit in the
// iteration window.
func (s *Sampler) Sample() (Point, error) {
	for n := 0; s.maxDraws == 0 || n < s.maxDraws; n++ {
		s.draws++
		x := s.region.Xmin + s.rng.Float64()*s.region.Width()
		y := s.region.Ymin + s.rng.Float64()*s.region.Height()
		if OrbitBetween(x, y, s.minIter, s.maxIter) {
			s.log.Record(x, y)
			return Point{X: x, Y: y}, nil
		}
	}
	return Point{}, fmt.Errorf("after %d draws in %s: %w", s.maxDraws, s.region, ErrNoOrbit)
}
