//go:build js && wasm

package main

import (
	"fmt"
	"image"
	"syscall/js"
	"time"
)

func canvasContext() js.Value {
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "myCanvas")
	return canvas.Call("getContext", "2d")
}

// displayImage replaces the canvas content with img
func displayImage(img *image.RGBA) {
	start := time.Now()
	ctx := canvasContext()

	width := img.Rect.Dx()
	height := img.Rect.Dy()

	// ImageData wants a Uint8ClampedArray of width * height * 4 bytes
	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)

	doc := js.Global().Get("document")
	doc.Call("getElementById", "drawTime").Set("textContent", time.Since(start).String())
}

func initCanvas(width, height int) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "myCanvas")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", "#000")
	ctx.Call("fillRect", 0, 0, width, height)

	doc.Call("getElementById", "size").Set("textContent", fmt.Sprintf("%dx%d", width, height))
}
