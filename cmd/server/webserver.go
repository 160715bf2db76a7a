package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	mandel "github.com/marben/nebula_mandel"
)

// webServer serves files in staticDir, the latest frame as /frame.png and a
// websocket endpoint streaming encoded frames on /ws.
func webServer(port int, staticDir string, hub *frameHub, frames mandel.ImgProvider) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(hub))
	mux.HandleFunc("/frame.png", pngHandler(frames))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// websocketHandler pushes every new frame to the connected viewer until it
// disconnects. Viewers never send anything.
func websocketHandler(hub *frameHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict to the configured host once the viewer is served from elsewhere
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("viewer connected: %s", r.RemoteAddr)
		ctx := c.CloseRead(r.Context())

		frames := hub.subscribe()
		defer hub.unsubscribe(frames)

		if err := streamFrames(ctx, c, frames); err != nil {
			log.Printf("viewer %s: %v", r.RemoteAddr, err)
			return
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}

func streamFrames(ctx context.Context, c *websocket.Conn, frames <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			if errors.Is(context.Cause(ctx), context.Canceled) {
				return nil
			}
			return context.Cause(ctx)
		case f := <-frames:
			wctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := c.Write(wctx, websocket.MessageBinary, f)
			cancel()
			if err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
		}
	}
}

func pngHandler(frames mandel.ImgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := frames.GetImage()
		if errors.Is(err, mandel.ErrNoFrame) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, &img); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	}
}
