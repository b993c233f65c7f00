package driver

import (
	"image"
	"image/draw"

	"scrollview/util/uiutil/event"
)

type Window interface {
	EventLoop(events chan<- interface{}) // emits events from uiutil/event

	Close()
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	UpdateImageSize() error

	SetCursor(event.Cursor)
	QueryPointer() (image.Point, error)
}
