package mandel

import (
	"image"
)

// TextureUploader receives finished frames. It replaces whatever texture it
// displayed before. len(pix) must equal 4*width*height.
type TextureUploader interface {
	UploadTexture(pix []byte, width, height int) error
}

// Display reports the current window dimensions and title.
type Display interface {
	DisplayParams() (width, height int, title string)
}

// Image maps between the continuous plane and a pixel grid.
type Image interface {
	Paint() bool
	PixelAt(x, y float64) (px, py int, ok bool)
	PointAt(px, py int, c Corner) (x, y float64, ok bool)
}

// ImgProvider hands out the most recently displayed frame.
type ImgProvider interface {
	GetImage() (image.RGBA, error)
}

var _ Image = (*Grid)(nil)
