// cliclient is a CLI viewer for the Nebulabrot server.
// It connects to the frame stream, waits for a frame, and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/marben/nebula_mandel/render"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run fetches a frame from the server and saves it as a PNG file.
func run() error {
	url := flag.String("url", "ws://localhost:8080/ws", "server frame stream")
	out := flag.String("out", "nebulabrot.png", "output file")
	frames := flag.Int("frames", 1, "save the n-th received frame; later frames have more orbits")
	width := flag.Int("width", 0, "resample to this width (0 keeps the server size)")
	height := flag.Int("height", 0, "resample to this height (0 keeps the server size)")
	timeout := flag.Duration("timeout", time.Minute, "give up after this long")
	flag.Parse()

	if *frames < 1 {
		return fmt.Errorf("-frames must be at least 1, got %d", *frames)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Step 1: Receive the frame
	log.Printf("Waiting for frame %d from %s...", *frames, *url)
	img, err := fetchFrame(ctx, *url, *frames)
	if err != nil {
		return err
	}
	log.Printf("Received %dx%d frame", img.Rect.Dx(), img.Rect.Dy())

	// Step 2: Resample if asked to
	if *width > 0 && *height > 0 {
		img = render.Scale(img, *width, *height)
	}

	// Step 3: Save it
	if err := render.WritePNG(*out, img); err != nil {
		return err
	}
	log.Printf("Frame saved to %q", *out)
	return nil
}
