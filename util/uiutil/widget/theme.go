package widget

import (
	"image/color"

	"golang.org/x/image/font"

	"scrollview/util/fontutil"
)

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}
)

type Theme struct {
	Palette  Palette
	FontFace font.Face
}

type Palette map[string]color.Color

var DefaultPalette = Palette{
	"background":   White,
	"text_fg":      Black,
	"text_bg":      White,
	"scrollbar_fg": color.RGBA{0, 0, 0, 179}, // 70% black
	"scrollbar_bg": color.RGBA{0, 0, 0, 0},
}

//----------

func (en *EmbedNode) SetThemeFontFace(ff font.Face) {
	defer en.MarkNeedsLayout()
	en.theme.FontFace = ff
}

func (en *EmbedNode) TreeThemeFontFace() font.Face {
	for n := en; n != nil; n = n.Parent {
		if n.theme.FontFace != nil {
			return n.theme.FontFace
		}
	}
	return fontutil.DefaultFontFace()
}
