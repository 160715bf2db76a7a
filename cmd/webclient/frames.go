//go:build js && wasm

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/websocket"
	"github.com/marben/nebula_mandel/render"
)

// maxFrameBytes bounds a single websocket message; it fits a 4096x4096 frame.
const maxFrameBytes = render.FrameHeaderLen + 4*4096*4096

// openFrameStream dials the server's frame stream and returns a channel of its
// binary messages. The channel is closed when the connection ends.
func openFrameStream(ctx context.Context, url string) (<-chan []byte, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	c.SetReadLimit(maxFrameBytes)
	logScreenf("WebSocket connected.")

	// a slow canvas skips ahead: only the newest frame waits in the queue
	ch := make(chan []byte, 1)
	go func() {
		defer close(ch)
		defer c.CloseNow()
		for {
			typ, data, err := c.Read(ctx)
			if err != nil {
				if websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
					logScreenf("WebSocket read: %v", err)
				}
				return
			}
			if typ != websocket.MessageBinary {
				logScreenf("unexpected %v message", typ)
				continue
			}
			select {
			case <-ch:
			default:
			}
			ch <- data
		}
	}()
	return ch, nil
}
