package render

import (
	"errors"
	"image"
	"testing"
)

func TestCheckTextureSize(t *testing.T) {
	tests := []struct {
		n, w, h int
		ok      bool
	}{
		{4 * 6, 3, 2, true},
		{4*6 - 1, 3, 2, false},
		{4*6 + 4, 3, 2, false},
		{0, 0, 0, false},
		{-4, -1, 1, false},
	}
	for _, tt := range tests {
		pix := make([]byte, max(tt.n, 0))
		err := CheckTextureSize(pix, tt.w, tt.h)
		if tt.ok && err != nil {
			t.Errorf("CheckTextureSize(%d bytes, %dx%d) = %v", len(pix), tt.w, tt.h, err)
		}
		if !tt.ok && !errors.Is(err, ErrTextureSize) {
			t.Errorf("CheckTextureSize(%d bytes, %dx%d) = %v, want ErrTextureSize", len(pix), tt.w, tt.h, err)
		}
	}
}

func TestToneMap(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	peak, err := ToneMap([]uint32{0, 1, 4, 2}, dst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if peak != 4 {
		t.Errorf("peak = %d, want 4", peak)
	}

	// (1/4)^0.85 = 0.3078 -> 78, (2/4)^0.85 = 0.5548 -> 141
	want := []byte{
		0, 0, 0, 255,
		78, 78, 78, 255,
		255, 255, 255, 255,
		141, 141, 141, 255,
	}
	if string(dst.Pix) != string(want) {
		t.Errorf("ToneMap pixels = %v, want %v", dst.Pix, want)
	}
}

func TestToneMap_AllZeroLeavesImage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	for i := range dst.Pix {
		dst.Pix[i] = 7
	}
	peak, err := ToneMap([]uint32{0, 0}, dst, Gray)
	if err != nil || peak != 0 {
		t.Fatalf("ToneMap() = %d, %v", peak, err)
	}
	for i, v := range dst.Pix {
		if v != 7 {
			t.Fatalf("byte %d changed to %d", i, v)
		}
	}
}

func TestToneMap_SizeMismatch(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, err := ToneMap(make([]uint32, 3), dst, Gray); !errors.Is(err, ErrTextureSize) {
		t.Errorf("ToneMap(3 counters, 2x2) = %v, want ErrTextureSize", err)
	}
}

func TestDensity(t *testing.T) {
	if Density(5, 0) != 0 {
		t.Error("Density with zero peak is not 0")
	}
	if Density(10, 10) != 1 {
		t.Error("Density(peak, peak) != 1")
	}
	prev := 0.0
	for c := uint32(1); c <= 100; c++ {
		d := Density(c, 100)
		if d <= prev || d > 1 {
			t.Fatalf("Density(%d,100) = %g not increasing within (0,1]", c, d)
		}
		prev = d
	}
}

func TestPalettes(t *testing.T) {
	for _, name := range []string{"gray", "hue", ""} {
		pal, err := PaletteByName(name)
		if err != nil {
			t.Fatalf("PaletteByName(%q) = %v", name, err)
		}
		for _, d := range []float64{0, 0.3, 1} {
			if c := pal(d); c.A != 255 {
				t.Errorf("%q(%g) alpha = %d", name, d, c.A)
			}
		}
	}
	if _, err := PaletteByName("sepia"); err == nil {
		t.Error("PaletteByName(sepia) succeeded")
	}
	if c := Hue(0); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Hue(0) = %v, want black", c)
	}
}
