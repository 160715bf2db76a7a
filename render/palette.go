package render

import (
	"fmt"
	"image/color"
	"math"
)

// Hue tints the density: sparse pixels are deep blue, dense ones run through
// violet into white-hot red.
func Hue(density float64) color.RGBA {
	if density <= 0 {
		return color.RGBA{A: 255}
	}
	return hsv(0.66-0.66*density, 1-0.5*density, math.Sqrt(density))
}

// PaletteByName returns "gray" or "hue".
func PaletteByName(name string) (Palette, error) {
	switch name {
	case "", "gray":
		return Gray, nil
	case "hue":
		return Hue, nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

// Simple HSV -> RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
