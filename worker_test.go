package mandel

import (
	"errors"
	"testing"
	"time"
)

func newTestWorker(t *testing.T, seed int64) *Worker {
	t.Helper()
	g, err := NewGrid(FullSet, 60, 40)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSampler(FullSet, 0, 200, newRand(seed))
	if err != nil {
		t.Fatal(err)
	}
	return NewWorker(0, g, s)
}

// waitUnits polls until the worker has completed at least n passes.
func waitUnits(t *testing.T, stats func() Stats, n uint64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for stats().Units < n {
		if time.Now().After(deadline) {
			t.Fatalf("worker completed %d passes in 5s, want %d", stats().Units, n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestWorker_Lifecycle(t *testing.T) {
	w := newTestWorker(t, 1)
	if w.State() != Paused {
		t.Fatalf("initial state %v, want paused", w.State())
	}

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	if w.State() != Running {
		t.Fatalf("state after Start %v, want running", w.State())
	}
	waitUnits(t, w.Stats, 10)

	w.Pause()
	if w.State() != Paused {
		t.Fatalf("state after Pause %v, want paused", w.State())
	}
	units := w.Stats().Units
	time.Sleep(20 * time.Millisecond)
	if got := w.Stats().Units; got != units {
		t.Errorf("paused worker went from %d to %d passes", units, got)
	}

	w.Stop()
	if w.State() != Stopped {
		t.Fatalf("state after Stop %v, want stopped", w.State())
	}
	if err := w.Start(); !errors.Is(err, ErrStopped) {
		t.Errorf("Start after Stop err = %v, want ErrStopped", err)
	}
	w.Stop() // idempotent
}

func TestWorker_StopWithoutStart(t *testing.T) {
	w := newTestWorker(t, 1)
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop on a never started worker blocked")
	}
}

func TestWorker_SnapshotWhileRunning(t *testing.T) {
	w := newTestWorker(t, 1)
	defer w.Stop()
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	dst := make([]uint32, 60*40)
	if err := w.Snapshot(dst); !errors.Is(err, ErrRunning) {
		t.Errorf("Snapshot while running err = %v, want ErrRunning", err)
	}
}

// Once Pause returns the grid holds whole passes only: the counters sum to
// exactly the hits reported by completed passes.
func TestWorker_PauseSeesOnlyCompletedPasses(t *testing.T) {
	w := newTestWorker(t, 99)
	defer w.Stop()

	for round := 0; round < 20; round++ {
		if err := w.Start(); err != nil {
			t.Fatal(err)
		}
		waitUnits(t, w.Stats, uint64(round+1)*5)
		w.Pause()

		dst := make([]uint32, 60*40)
		if err := w.Snapshot(dst); err != nil {
			t.Fatal(err)
		}
		var sum uint64
		for _, c := range dst {
			sum += uint64(c)
		}
		if want := w.Stats().Hits; sum != want {
			t.Fatalf("round %d: counters sum to %d, completed passes hit %d", round, sum, want)
		}
	}
}
