package fontutil

import (
	"log"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var defFace struct {
	sync.Once
	face font.Face
}

func DefaultFontFace() font.Face {
	defFace.Do(func() {
		opt := &truetype.Options{DPI: 0, Size: 14, Hinting: font.HintingFull}
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			// bundled font, parse can't fail at runtime
			log.Fatal(err)
		}
		defFace.face = truetype.NewFace(f, opt)
	})
	return defFace.face
}

//----------

// Height of a text line for the face, in pixels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return m.Height.Ceil()
}

// Advance of a string, in pixels.
func StringWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
