package widget

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"scrollview/util/fontutil"
	"scrollview/util/imageutil"
)

// Draws multi-line text without wrapping. Mostly to be used as scrollable
// content; its measure is the full text extent, independent of the hint.
type BasicText struct {
	ENode
	ctx ImageContext
	str string
}

func NewBasicText(ctx ImageContext, str string) *BasicText {
	bt := &BasicText{ctx: ctx, str: str}
	return bt
}

func (bt *BasicText) SetStr(str string) {
	if str != bt.str {
		bt.str = str
		bt.MarkNeedsLayoutAndPaint()
	}
}

func (bt *BasicText) lines() []string {
	return strings.Split(bt.str, "\n")
}

func (bt *BasicText) Measure(hint image.Point) image.Point {
	face := bt.TreeThemeFontFace()
	lh := fontutil.LineHeight(face)
	w := 0
	lines := bt.lines()
	for _, ln := range lines {
		u := fontutil.StringWidth(face, ln)
		if u > w {
			w = u
		}
	}
	return image.Point{w, lh * len(lines)}
}

func (bt *BasicText) Paint() {
	bg := bt.TreeThemePaletteColor("text_bg")
	fg := bt.TreeThemePaletteColor("text_fg")
	face := bt.TreeThemeFontFace()

	img := bt.ctx.Image()
	imageutil.FillRectangle(img, &bt.Bounds, bg)

	m := face.Metrics()
	lh := fontutil.LineHeight(face)
	d := font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	y := bt.Bounds.Min.Y + m.Ascent.Ceil()
	for _, ln := range bt.lines() {
		// skip lines outside the visible area
		if y-m.Ascent.Ceil() >= bt.Bounds.Max.Y {
			break
		}
		if y+m.Descent.Ceil() >= bt.Bounds.Min.Y {
			d.Dot = fixed.P(bt.Bounds.Min.X, y)
			d.DrawString(ln)
		}
		y += lh
	}
}
