// Package render turns orbit histograms into displayable RGBA frames.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// Gamma compresses densities so a few very bright pixels do not wash out the
// rest of the image.
const Gamma = 0.85

var ErrTextureSize = errors.New("pixel buffer does not match texture size")

// CheckTextureSize reports ErrTextureSize unless len(pix) == 4*width*height.
func CheckTextureSize(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 || len(pix) != 4*width*height {
		return fmt.Errorf("%d bytes for %dx%d: %w", len(pix), width, height, ErrTextureSize)
	}
	return nil
}

// Palette maps a density in [0,1] to a colour. Alpha is forced to 255 by
// ToneMap.
type Palette func(density float64) color.RGBA

// Gray replicates the 8-bit density on all three channels.
func Gray(density float64) color.RGBA {
	v := uint8(density * 255)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// Max returns the largest counter.
func Max(counts []uint32) uint32 {
	var m uint32
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Density is (count/peak)^Gamma clamped to [0,1].
func Density(count, peak uint32) float64 {
	if peak == 0 {
		return 0
	}
	d := math.Pow(float64(count)/float64(peak), Gamma)
	return math.Min(math.Max(d, 0), 1)
}

// ToneMap writes counts into dst, one counter per pixel in row-major order,
// and returns the maximum count. Empty pixels become opaque black. When every
// counter is zero dst is left untouched.
func ToneMap(counts []uint32, dst *image.RGBA, pal Palette) (uint32, error) {
	b := dst.Bounds()
	if len(counts) != b.Dx()*b.Dy() {
		return 0, fmt.Errorf("tone map %d counters into %dx%d: %w", len(counts), b.Dx(), b.Dy(), ErrTextureSize)
	}
	if pal == nil {
		pal = Gray
	}

	m := Max(counts)
	if m == 0 {
		return 0, nil
	}

	w := b.Dx()
	for i, c := range counts {
		off := dst.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
		px := dst.Pix[off : off+4 : off+4]
		if c == 0 {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 255
			continue
		}
		col := pal(Density(c, m))
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, 255
	}
	return m, nil
}
