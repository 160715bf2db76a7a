package main

import (
	"log"
	"sync"

	mandel "github.com/marben/nebula_mandel"
	"github.com/marben/nebula_mandel/render"
)

// frameHub is the server's texture target. Every uploaded frame is encoded
// once and offered to all connected viewers. Slow viewers skip frames: each
// subscription buffers only the newest one.
type frameHub struct {
	m       sync.Mutex
	latest  []byte
	viewers map[chan []byte]struct{}
	frames  int
}

func newFrameHub() *frameHub {
	return &frameHub{viewers: make(map[chan []byte]struct{})}
}

// UploadTexture implements mandel.TextureUploader.
func (h *frameHub) UploadTexture(pix []byte, width, height int) error {
	frame, err := render.EncodeFrame(pix, width, height)
	if err != nil {
		return err
	}

	h.m.Lock()
	defer h.m.Unlock()

	h.latest = frame
	h.frames++
	for ch := range h.viewers {
		// drop the stale frame, if any, in favour of this one
		select {
		case <-ch:
		default:
		}
		ch <- frame
	}
	return nil
}

// subscribe registers a viewer. The newest frame, if there is one, is
// delivered right away.
func (h *frameHub) subscribe() chan []byte {
	ch := make(chan []byte, 1)

	h.m.Lock()
	h.viewers[ch] = struct{}{}
	if h.latest != nil {
		ch <- h.latest
	}
	n := len(h.viewers)
	h.m.Unlock()

	log.Printf("viewers: %d", n)
	return ch
}

func (h *frameHub) unsubscribe(ch chan []byte) {
	h.m.Lock()
	delete(h.viewers, ch)
	n := len(h.viewers)
	h.m.Unlock()

	log.Printf("viewers: %d", n)
}

func (h *frameHub) viewerCount() int {
	h.m.Lock()
	defer h.m.Unlock()
	return len(h.viewers)
}

func (h *frameHub) frameCount() int {
	h.m.Lock()
	defer h.m.Unlock()
	return h.frames
}

var _ mandel.TextureUploader = (*frameHub)(nil)
