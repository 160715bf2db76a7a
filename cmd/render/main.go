// render samples the Nebulabrot offline for a fixed time and keeps a PNG file
// up to date with the histogram, once per refresh interval.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	mandel "github.com/marben/nebula_mandel"
	"github.com/marben/nebula_mandel/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	params := mandel.DefaultParams()
	params.Workers = 0
	params.PointLogPath = mandel.DefaultPointLogPath
	params.RegisterFlags(flag.CommandLine)
	out := flag.String("out", "nebulabrot.png", "output file, rewritten on every refresh")
	duration := flag.Duration("duration", 30*time.Second, "total sampling time")
	palette := flag.String("palette", "gray", "gray or hue")
	outW := flag.Int("out-width", 0, "resample the output to this width")
	outH := flag.Int("out-height", 0, "resample the output to this height")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pal, err := render.PaletteByName(*palette)
	if err != nil {
		return err
	}

	engine, err := mandel.NewEngine(params)
	if err != nil {
		return fmt.Errorf("mandel.NewEngine: %w", err)
	}
	defer engine.Stop()

	uploader := &render.PNGUploader{Path: *out, Width: *outW, Height: *outH}
	bridge := mandel.NewDisplayBridge(engine, params, uploader, mandel.WithPalette(pal))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	if err := engine.Start(); err != nil {
		return err
	}
	log.Printf("sampling %s for %s with %d workers", params.Region, *duration, len(engine.Workers()))

	// no frames to pace here, so poll the bridge a few times per interval
	poll := params.Interval / 4
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case now := <-ticker.C:
			if _, err := bridge.Tick(now); err != nil {
				return err
			}
		}
	}

	// final frame with everything sampled so far
	if err := bridge.Refresh(); err != nil {
		return err
	}
	s := engine.Stats()
	log.Printf("done: %d orbits, %d hits, %d draws, %d frames written to %q",
		s.Units, s.Hits, s.Draws, uploader.Uploads(), *out)
	return nil
}
