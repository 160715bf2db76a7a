package mandel

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrStopped = errors.New("worker stopped")
	ErrRunning = errors.New("worker is running")
)

// State of a Worker.
type State int

const (
	Paused State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Stats counts the work a Worker has finished.
type Stats struct {
	Units     uint64 // completed sample+accumulate passes
	Hits      uint64 // counters incremented by those passes
	Exhausted uint64 // Sample calls that hit the draw cap
	Draws     uint64 // candidate points drawn
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Units:     s.Units + o.Units,
		Hits:      s.Hits + o.Hits,
		Exhausted: s.Exhausted + o.Exhausted,
		Draws:     s.Draws + o.Draws,
	}
}

// Worker runs sample+accumulate passes on a background goroutine, writing to
// a Grid it owns exclusively. The pass is the unit of preemption: Pause
// returns only after the pass in flight has finished, so once Pause returns
// the grid holds whole passes and nothing touches it until Start.
type Worker struct {
	id      int
	grid    *Grid
	sampler *Sampler

	mu      sync.Mutex
	cond    *sync.Cond
	state   State
	busy    bool
	started bool
	stats   Stats
	done    chan struct{}
}

// NewWorker returns a paused worker. The grid is painted if it was not yet.
func NewWorker(id int, g *Grid, s *Sampler) *Worker {
	g.Paint()
	w := &Worker{
		id:      id,
		grid:    g,
		sampler: s,
		done:    make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Worker) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Start moves the worker to Running, launching its goroutine on first use.
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == Stopped {
		return fmt.Errorf("start worker %d: %w", w.id, ErrStopped)
	}
	w.state = Running
	if !w.started {
		w.started = true
		go w.loop()
	}
	w.cond.Broadcast()
	return nil
}

// Pause moves a running worker to Paused and waits for the pass in flight.
func (w *Worker) Pause() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == Running {
		w.state = Paused
	}
	for w.busy {
		w.cond.Wait()
	}
}

// Stop pauses the worker, then ends its goroutine. Stopped is terminal.
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.state == Stopped {
		w.mu.Unlock()
		return
	}
	w.state = Paused
	for w.busy {
		w.cond.Wait()
	}
	w.state = Stopped
	w.cond.Broadcast()
	started := w.started
	w.mu.Unlock()

	if started {
		<-w.done
	}
	Logger().Info("worker stopped", "worker", w.id, "units", w.stats.Units)
}

// Snapshot adds the worker's counters into dst. The worker must not be
// running; the lock is held for the whole copy so Start cannot race it.
func (w *Worker) Snapshot(dst []uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == Running || w.busy {
		return fmt.Errorf("snapshot worker %d: %w", w.id, ErrRunning)
	}
	src := w.grid.Counts()
	if len(dst) != len(src) {
		return fmt.Errorf("snapshot worker %d: have %d counters, want %d", w.id, len(dst), len(src))
	}
	for i, c := range src {
		dst[i] += c
	}
	return nil
}

func (w *Worker) loop() {
	defer close(w.done)
	Logger().Info("worker started", "worker", w.id)

	for {
		w.mu.Lock()
		for w.state == Paused {
			w.cond.Wait()
		}
		if w.state == Stopped {
			w.mu.Unlock()
			return
		}
		w.busy = true
		w.mu.Unlock()

		hits, err := w.pass()

		w.mu.Lock()
		w.busy = false
		if err != nil {
			w.stats.Exhausted++
		} else {
			w.stats.Units++
			w.stats.Hits += uint64(hits)
		}
		w.stats.Draws = w.sampler.Draws()
		exhausted := w.stats.Exhausted
		w.cond.Broadcast()
		w.mu.Unlock()

		if err != nil && exhausted == 1 {
			Logger().Warn("sampler gave up", "worker", w.id, "err", err)
		}
	}
}

// pass is one unit of work: find a starting point and replay its orbit.
func (w *Worker) pass() (int, error) {
	p, err := w.sampler.Sample()
	if err != nil {
		return 0, err
	}
	return Accumulate(w.grid, p, w.sampler.MaxIter()), nil
}
