package mandel

import (
	"fmt"
	"math/rand"
	"sync"
)

// Engine runs a set of Workers over the same region. Each worker fills its own
// Grid; Snapshot merges them.
type Engine struct {
	params  Params
	workers []*Worker
	log     *PointLog

	mu      sync.Mutex
	running bool
}

// NewEngine validates p and builds paused workers. A point log that cannot be
// opened is reported and skipped.
func NewEngine(p Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("engine params: %w", err)
	}

	e := &Engine{params: p}
	if p.PointLogPath != "" {
		l, err := OpenPointLog(p.PointLogPath)
		if err != nil {
			Logger().Warn("point log disabled", "path", p.PointLogPath, "err", err)
		} else {
			e.log = l
		}
	}

	seed := p.seed()
	n := p.workers()
	for i := 0; i < n; i++ {
		g, err := NewGrid(p.Region, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(seed + int64(i)))
		s, err := NewSampler(p.Region, p.MinIter, p.MaxIter, rng,
			WithMaxDraws(p.MaxDraws), WithPointLog(e.log))
		if err != nil {
			return nil, err
		}
		e.workers = append(e.workers, NewWorker(i, g, s))
	}

	histBytes := 0
	for _, w := range e.workers {
		histBytes += w.grid.ByteLen()
	}
	Logger().Info("engine ready", "workers", n, "region", p.Region.String(),
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height), "seed", seed, "histogram_bytes", histBytes)
	return e, nil
}

func (e *Engine) Params() Params { return e.params }

// Size is the histogram resolution.
func (e *Engine) Size() (width, height int) { return e.params.Width, e.params.Height }

func (e *Engine) Workers() []*Worker { return e.workers }

// Start resumes every worker.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.start()
}

func (e *Engine) start() error {
	for _, w := range e.workers {
		if err := w.Start(); err != nil {
			return err
		}
	}
	e.running = true
	return nil
}

// Pause returns once every worker has finished its pass in flight.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pause()
}

func (e *Engine) pause() {
	for _, w := range e.workers {
		w.Pause()
	}
	e.running = false
}

// Snapshot overwrites dst with the sum of all worker histograms. Workers are
// paused for the copy and resumed afterwards if they were running.
func (e *Engine) Snapshot(dst []uint32) (err error) {
	if want := e.params.Width * e.params.Height; len(dst) != want {
		return fmt.Errorf("snapshot buffer has %d counters, want %d", len(dst), want)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		e.pause()
		defer func() {
			if serr := e.start(); err == nil {
				err = serr
			}
		}()
	}

	clear(dst)
	for _, w := range e.workers {
		if err := w.Snapshot(dst); err != nil {
			return err
		}
	}
	return nil
}

// Stats sums the stats of all workers.
func (e *Engine) Stats() Stats {
	var s Stats
	for _, w := range e.workers {
		s = s.add(w.Stats())
	}
	return s
}

// Stop ends all workers and flushes the point log. The engine cannot be
// restarted afterwards.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, w := range e.workers {
		w.Stop()
	}
	e.running = false
	err := e.log.Close()
	e.log = nil
	return err
}
