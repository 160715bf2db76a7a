package mandel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

// DefaultPointLogPath is where the commands write accepted starting points.
const DefaultPointLogPath = "nebulabrot_points.txt"

// PointLog appends accepted starting points as "x\ty\n" lines. Writes are
// best-effort: the first failure is remembered and later records are dropped.
// A nil *PointLog is valid and discards everything.
type PointLog struct {
	mu  sync.Mutex
	w   *bufio.Writer
	c   io.Closer
	err error
	n   int
}

// OpenPointLog opens path for appending, creating it if needed.
func OpenPointLog(path string) (*PointLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open point log: %w", err)
	}
	return NewPointLog(f), nil
}

// NewPointLog wraps w. If w is also an io.Closer, Close closes it.
func NewPointLog(w io.Writer) *PointLog {
	l := &PointLog{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

func (l *PointLog) Record(x, y float64) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return
	}
	var buf [64]byte
	b := strconv.AppendFloat(buf[:0], x, 'g', -1, 64)
	b = append(b, '\t')
	b = strconv.AppendFloat(b, y, 'g', -1, 64)
	b = append(b, '\n')
	if _, err := l.w.Write(b); err != nil {
		l.err = err
		Logger().Warn("point log write failed, dropping further points", "err", err)
		return
	}
	l.n++
}

// Len is the number of points recorded.
func (l *PointLog) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

// Flush writes buffered lines through.
func (l *PointLog) Flush() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.err = l.w.Flush()
	return l.err
}

func (l *PointLog) Close() error {
	if l == nil {
		return nil
	}
	err := l.Flush()
	if l.c != nil {
		if cerr := l.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
