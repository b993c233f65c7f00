package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

// Restricts drawing to r. Uses the image's own SubImage when available
// (keeps the stdlib draw fast paths), else wraps with a bounds-limited image.
func ClipImage(img draw.Image, r image.Rectangle) draw.Image {
	r = r.Intersect(img.Bounds())
	if si, ok := img.(subImager); ok {
		if img2, ok := si.SubImage(r).(draw.Image); ok {
			return img2
		}
	}
	return &clippedImage{img, r}
}

type clippedImage struct {
	draw.Image
	r image.Rectangle
}

func (c *clippedImage) Bounds() image.Rectangle { return c.r }

func (c *clippedImage) Set(x, y int, u color.Color) {
	if (image.Point{x, y}).In(c.r) {
		c.Image.Set(x, y, u)
	}
}
