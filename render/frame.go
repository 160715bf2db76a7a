package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

// FrameHeaderLen is the size of the width/height prefix of an encoded frame.
const FrameHeaderLen = 8

var ErrShortFrame = errors.New("frame shorter than its header")

// EncodeFrame prefixes RGBA pixels with little-endian uint32 width and height.
func EncodeFrame(pix []byte, width, height int) ([]byte, error) {
	if err := CheckTextureSize(pix, width, height); err != nil {
		return nil, err
	}
	b := make([]byte, FrameHeaderLen, FrameHeaderLen+len(pix))
	binary.LittleEndian.PutUint32(b[0:4], uint32(width))
	binary.LittleEndian.PutUint32(b[4:8], uint32(height))
	return append(b, pix...), nil
}

// DecodeFrame is the inverse of EncodeFrame. The returned image copies b.
func DecodeFrame(b []byte) (*image.RGBA, error) {
	if len(b) < FrameHeaderLen {
		return nil, fmt.Errorf("%d bytes: %w", len(b), ErrShortFrame)
	}
	w := int(binary.LittleEndian.Uint32(b[0:4]))
	h := int(binary.LittleEndian.Uint32(b[4:8]))
	pix := b[FrameHeaderLen:]
	if err := CheckTextureSize(pix, w, h); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	return img, nil
}
