package xdriver

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Window backbuffer. Drawing happens on a local RGBA image; PutImage uploads
// the damaged rectangle to the server in BGRX byte order.
type WImage struct {
	conn   *xgb.Conn
	window xproto.Window
	screen *xproto.ScreenInfo
	gctx   xproto.Gcontext
	img    *image.RGBA
}

func NewWImage(conn *xgb.Conn, window xproto.Window, screen *xproto.ScreenInfo, gctx xproto.Gcontext) *WImage {
	wi := &WImage{conn: conn, window: window, screen: screen, gctx: gctx}
	wi.img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	return wi
}

func (wi *WImage) Image() draw.Image {
	return wi.img
}

func (wi *WImage) Resize(r image.Rectangle) error {
	if !r.Eq(wi.img.Bounds()) {
		wi.img = image.NewRGBA(r)
	}
	return nil
}

func (wi *WImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}

	// X max data length = (2^16) * 4, send in row chunks
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxPixels := (maxReqSize - putImgReqSize) / 4
	if r.Dx() > maxPixels {
		return fmt.Errorf("wimage: dx>max, %v>%v", r.Dx(), maxPixels)
	}
	chunkH := maxPixels / r.Dx()

	for minY := r.Min.Y; minY < r.Max.Y; minY += chunkH {
		h := chunkH
		if h2 := r.Max.Y - minY; h2 < h {
			h = h2
		}
		data := wi.bgrxData(r.Min.X, minY, r.Dx(), h)
		_ = xproto.PutImage( // unchecked (performance; errors handled in ev loop)
			wi.conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.window),
			wi.gctx,
			uint16(r.Dx()), uint16(h), // width/height
			int16(r.Min.X), int16(minY), // dst X/Y
			0, // left pad, must be 0 for ZPixmap format
			wi.screen.RootDepth,
			data)
	}
	return nil
}

func (wi *WImage) bgrxData(x, y, w, h int) []byte {
	data := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		i := wi.img.PixOffset(x, y+row)
		o := row * w * 4
		for col := 0; col < w; col++ {
			data[o+0] = wi.img.Pix[i+2]
			data[o+1] = wi.img.Pix[i+1]
			data[o+2] = wi.img.Pix[i+0]
			data[o+3] = 0
			i += 4
			o += 4
		}
	}
	return data
}
