package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Scale resamples src to width x height. src is returned as is when it
// already has that size.
func Scale(src *image.RGBA, width, height int) *image.RGBA {
	if b := src.Bounds(); b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// PNGUploader is a texture target that writes every frame to a PNG file.
// The file is replaced atomically so viewers never see a partial image.
type PNGUploader struct {
	Path string
	// Width and Height, when non-zero, resample frames before encoding.
	Width, Height int

	uploads int
}

func (u *PNGUploader) UploadTexture(pix []byte, width, height int) error {
	if err := CheckTextureSize(pix, width, height); err != nil {
		return err
	}
	img := &image.RGBA{Pix: pix, Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}
	if u.Width > 0 && u.Height > 0 {
		img = Scale(img, u.Width, u.Height)
	}
	if err := WritePNG(u.Path, img); err != nil {
		return err
	}
	u.uploads++
	return nil
}

// Uploads is the number of frames written.
func (u *PNGUploader) Uploads() int { return u.uploads }

// WritePNG encodes img to path through a temporary file in the same directory.
func WritePNG(path string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".frame-*.png")
	if err != nil {
		return fmt.Errorf("create temp frame: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp frame: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}
