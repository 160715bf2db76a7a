package main

import (
	"context"
	"fmt"
	"image"

	"github.com/coder/websocket"
	"github.com/marben/nebula_mandel/render"
)

// maxFrameBytes bounds a single websocket message; it fits a 4096x4096 frame.
const maxFrameBytes = render.FrameHeaderLen + 4*4096*4096

// fetchFrame connects to the server's frame stream and returns the n-th frame
// it receives. The first frame is the one the server displayed last.
func fetchFrame(ctx context.Context, url string, n int) (*image.RGBA, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	defer c.CloseNow()
	c.SetReadLimit(maxFrameBytes)

	var img *image.RGBA
	for i := 1; i <= n; i++ {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read frame %d: %w", i, err)
		}
		if typ != websocket.MessageBinary {
			return nil, fmt.Errorf("frame %d: unexpected %v message", i, typ)
		}
		if i < n {
			continue
		}
		img, err = render.DecodeFrame(data)
		if err != nil {
			return nil, err
		}
	}

	c.Close(websocket.StatusNormalClosure, "")
	return img, nil
}
