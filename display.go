package mandel

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/marben/nebula_mandel/render"
)

// ErrTextureSize is returned by uploaders given a buffer of the wrong length,
// and by Refresh when the display size differs from the histogram.
var ErrTextureSize = render.ErrTextureSize

// ErrNoFrame is returned by GetImage before the first refresh.
var ErrNoFrame = errors.New("no frame displayed yet")

// DisplayBridge moves the engine's histogram to the screen. The render loop
// calls Tick once per frame; at most once per interval the bridge takes a
// snapshot of the histogram, tone-maps it and uploads it.
//
// Workers are paused only while their counters are copied into the snapshot,
// tone mapping and upload run while they keep sampling.
type DisplayBridge struct {
	engine   *Engine
	display  Display
	uploader TextureUploader
	palette  render.Palette
	interval time.Duration

	last   time.Time
	counts []uint32
	frame  *image.RGBA

	mu        sync.Mutex // guards shown, title and refreshes
	shown     *image.RGBA
	title     string
	refreshes int
}

type BridgeOption func(*DisplayBridge)

// WithPalette selects the colour mapping; render.Gray by default.
func WithPalette(p render.Palette) BridgeOption {
	return func(b *DisplayBridge) { b.palette = p }
}

// WithInterval overrides the engine's refresh interval.
func WithInterval(d time.Duration) BridgeOption {
	return func(b *DisplayBridge) { b.interval = d }
}

// WithStart sets the reference time of the first interval; time.Now by default.
func WithStart(t time.Time) BridgeOption {
	return func(b *DisplayBridge) { b.last = t }
}

// NewDisplayBridge uploads the histogram of e to up. The texture size is
// queried from d on every refresh and must match the histogram.
func NewDisplayBridge(e *Engine, d Display, up TextureUploader, opts ...BridgeOption) *DisplayBridge {
	w, h := e.Size()
	_, _, title := d.DisplayParams()
	b := &DisplayBridge{
		engine:   e,
		display:  d,
		uploader: up,
		title:    title,
		palette:  render.Gray,
		interval: e.Params().Interval,
		last:     time.Now(),
		counts:   make([]uint32, w*h),
		frame:    image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Tick refreshes the display if at least one interval has passed since the
// previous refresh. It reports whether a refresh happened.
func (b *DisplayBridge) Tick(now time.Time) (bool, error) {
	if now.Sub(b.last) < b.interval {
		return false, nil
	}
	b.last = now
	if err := b.Refresh(); err != nil {
		return false, err
	}
	return true, nil
}

// Refresh snapshots, tone-maps and uploads unconditionally.
func (b *DisplayBridge) Refresh() error {
	w, h, title := b.display.DisplayParams()
	if hw, hh := b.engine.Size(); w != hw || h != hh {
		return fmt.Errorf("display is %dx%d, histogram %dx%d: %w", w, h, hw, hh, ErrTextureSize)
	}

	start := time.Now()
	if err := b.engine.Snapshot(b.counts); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	copied := time.Since(start)

	peak, err := render.ToneMap(b.counts, b.frame, b.palette)
	if err != nil {
		return err
	}

	if err := b.uploader.UploadTexture(b.frame.Pix, w, h); err != nil {
		return fmt.Errorf("upload texture: %w", err)
	}

	b.mu.Lock()
	if b.shown == nil {
		b.shown = image.NewRGBA(b.frame.Rect)
	}
	copy(b.shown.Pix, b.frame.Pix)
	b.title = title
	b.refreshes++
	n := b.refreshes
	b.mu.Unlock()

	Logger().Debug("display refreshed", "refresh", n, "peak", peak,
		"snapshot", copied, "total", time.Since(start))
	return nil
}

// Counts is the histogram of the latest refresh. It is overwritten by the
// next one and must only be read from the goroutine calling Tick.
func (b *DisplayBridge) Counts() []uint32 { return b.counts }

// Title is the window title reported by the display at the last refresh.
func (b *DisplayBridge) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

// Refreshes is the number of completed refreshes.
func (b *DisplayBridge) Refreshes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshes
}

// GetImage implements ImgProvider with a copy of the last uploaded frame.
// Safe to call from any goroutine.
func (b *DisplayBridge) GetImage() (image.RGBA, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.shown == nil {
		return image.RGBA{}, ErrNoFrame
	}
	img := image.NewRGBA(b.shown.Rect)
	copy(img.Pix, b.shown.Pix)
	return *img, nil
}

var _ ImgProvider = (*DisplayBridge)(nil)
