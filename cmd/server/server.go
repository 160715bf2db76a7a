package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	mandel "github.com/marben/nebula_mandel"
	"github.com/marben/nebula_mandel/render"
	"golang.org/x/sync/errgroup"
)

// frameRate paces the display loop. Refreshes happen on the first frame at
// least one interval after the previous refresh.
const frameRate = 60

// main is the entry point for the Nebulabrot server.
// Sampling runs on background workers; browsers and the CLI client only watch.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	params := mandel.DefaultParams()
	params.Workers = 0
	params.RegisterFlags(flag.CommandLine)
	port := flag.Int("port", 8080, "http port")
	static := flag.String("static", "./static", "directory with index.html and main.wasm")
	palette := flag.String("palette", "gray", "gray or hue")
	flag.Parse()

	mandel.SetLogger(slog.Default())

	pal, err := render.PaletteByName(*palette)
	if err != nil {
		return err
	}

	engine, err := mandel.NewEngine(params)
	if err != nil {
		return fmt.Errorf("mandel.NewEngine: %w", err)
	}
	defer engine.Stop()

	// the hub stands in for the GPU texture: every refresh is pushed to all viewers
	hub := newFrameHub()
	bridge := mandel.NewDisplayBridge(engine, params, hub, mandel.WithPalette(pal))

	log.Printf("%s: %dx%d over %s, iterations [%d,%d)", bridge.Title(), params.Width, params.Height,
		params.Region, params.MinIter, params.MaxIter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	httpServer := webServer(*port, *static, hub, bridge)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return displayLoop(ctx, engine, bridge, hub)
	})

	log.Printf("nebulabrot server sampling with %d workers", len(engine.Workers()))
	return g.Wait()
}

// displayLoop is the render loop: it starts sampling, then ticks the bridge
// once per frame until ctx is done. An upload error ends the loop.
func displayLoop(ctx context.Context, engine *mandel.Engine, bridge *mandel.DisplayBridge, hub *frameHub) error {
	if err := engine.Start(); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			refreshed, err := bridge.Tick(now)
			if err != nil {
				return fmt.Errorf("display: %w", err)
			}
			if refreshed && bridge.Refreshes()%10 == 0 {
				s := engine.Stats()
				log.Printf("orbits: %d, hits: %d, draws: %d, viewers: %d, frames: %d",
					s.Units, s.Hits, s.Draws, hub.viewerCount(), hub.frameCount())
			}
		}
	}
}
