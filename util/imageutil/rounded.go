package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// Alpha mask of a filled circle, for rounded corners/caps.
type circleMask struct {
	center image.Point
	radius int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }
func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(
		m.center.X-m.radius, m.center.Y-m.radius,
		m.center.X+m.radius, m.center.Y+m.radius)
}
func (m *circleMask) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{0xff}
	}
	return color.Alpha{}
}

//----------

// Fills r with the corners rounded by radius. A radius bigger then half of
// the smallest side is reduced to it.
func FillRoundedRectangle(img draw.Image, r *image.Rectangle, c color.Color, radius int) {
	if radius <= 0 {
		FillRectangle(img, r, c)
		return
	}
	max := Smaller(r.Dx(), r.Dy()) / 2
	if radius > max {
		radius = max
	}

	// center cross (full width middle band, full height middle band)
	u := *r
	u.Min.Y += radius
	u.Max.Y -= radius
	FillRectangle(img, &u, c)
	u = *r
	u.Min.X += radius
	u.Max.X -= radius
	u2 := u
	u2.Max.Y = r.Min.Y + radius
	FillRectangle(img, &u2, c)
	u2 = u
	u2.Min.Y = r.Max.Y - radius
	FillRectangle(img, &u2, c)

	// corner quarters via circle masks
	corners := []image.Point{
		{r.Min.X + radius, r.Min.Y + radius},
		{r.Max.X - radius, r.Min.Y + radius},
		{r.Min.X + radius, r.Max.Y - radius},
		{r.Max.X - radius, r.Max.Y - radius},
	}
	quads := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+radius, r.Min.Y+radius),
		image.Rect(r.Max.X-radius, r.Min.Y, r.Max.X, r.Min.Y+radius),
		image.Rect(r.Min.X, r.Max.Y-radius, r.Min.X+radius, r.Max.Y),
		image.Rect(r.Max.X-radius, r.Max.Y-radius, r.Max.X, r.Max.Y),
	}
	for i, q := range quads {
		m := &circleMask{center: corners[i], radius: radius}
		DrawUniformMask(img, &q, c, m, image.Point{}, draw.Over)
	}
}

// Paints the area of r outside the rounded rectangle (the corner slivers)
// with c. Used to emulate a rounded clip region after childs have painted.
func FillOutsideRoundedCorners(img draw.Image, r *image.Rectangle, c color.Color, radius int) {
	if radius <= 0 {
		return
	}
	max := Smaller(r.Dx(), r.Dy()) / 2
	if radius > max {
		radius = max
	}
	corners := []image.Point{
		{r.Min.X + radius, r.Min.Y + radius},
		{r.Max.X - radius, r.Min.Y + radius},
		{r.Min.X + radius, r.Max.Y - radius},
		{r.Max.X - radius, r.Max.Y - radius},
	}
	quads := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+radius, r.Min.Y+radius),
		image.Rect(r.Max.X-radius, r.Min.Y, r.Max.X, r.Min.Y+radius),
		image.Rect(r.Min.X, r.Max.Y-radius, r.Min.X+radius, r.Max.Y),
		image.Rect(r.Max.X-radius, r.Max.Y-radius, r.Max.X, r.Max.Y),
	}
	for i, q := range quads {
		m := &invertedCircleMask{circleMask{center: corners[i], radius: radius}}
		DrawUniformMask(img, &q, c, m, image.Point{}, draw.Over)
	}
}

type invertedCircleMask struct {
	circleMask
}

func (m *invertedCircleMask) Bounds() image.Rectangle {
	// cover the whole quadrant, not just the circle box
	return image.Rect(-1e6, -1e6, 1e6, 1e6)
}
func (m *invertedCircleMask) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{}
	}
	return color.Alpha{0xff}
}

//----------

func Smaller(a, b int) int {
	if a < b {
		return a
	}
	return b
}
