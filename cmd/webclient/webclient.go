//go:build js && wasm

// webclient.go is a WASM viewer for the Nebulabrot server.
// It opens the server's websocket, decodes every frame it receives and draws it on the page canvas.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/marben/nebula_mandel/render"
)

// main is the entry point for the WASM web client.
// Note: sampling happens on the server only; the browser just displays uploaded frames.
func main() {
	logScreenf("Starting WASM viewer...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect and route binary messages into a channel
	logScreenf("Connecting to %s...", websocketUrl)
	frames, err := openFrameStream(context.Background(), websocketUrl)
	if err != nil {
		logFatalf("openFrameStream: %v", err)
	}

	// Step 3: Draw frames as they arrive
	if err := frameLoop(frames); err != nil {
		logFatalf("frameLoop: %v", err)
	}
	logScreenf("Server closed the connection.")

	// Block main goroutine to keep WASM running
	select {}
}

// frameLoop decodes and draws frames until the stream closes.
func frameLoop(frames <-chan []byte) error {
	shown := 0
	for data := range frames {
		img, err := render.DecodeFrame(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if shown == 0 {
			initCanvas(img.Rect.Dx(), img.Rect.Dy())
			logScreenf("Canvas initialized to dimensions %dx%d", img.Rect.Dx(), img.Rect.Dy())
		}
		displayImage(img)
		shown++
		hudSetFrames(shown)
	}
	return nil
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

func hudSetFrames(n int) {
	js.Global().Get("document").Call("getElementById", "frames").Set("textContent", n)
}
