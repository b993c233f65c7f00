package uiutil

import (
	"image"
	"image/draw"
	"log"
	"time"

	"scrollview/driver"
	"scrollview/util/uiutil/event"
	"scrollview/util/uiutil/widget"
)

type BasicUI struct {
	DrawFrameRate int // frames per second
	RootNode      widget.Node
	Win           driver.Window

	events          chan interface{}
	lastPaint       time.Time
	incompleteDraws int
	curCursor       event.Cursor

	applier *widget.ApplyEvent
}

func NewBasicUI(events chan interface{}, winName string, root widget.Node) (*BasicUI, error) {
	win, err := driver.NewWindow()
	if err != nil {
		return nil, err
	}
	win.SetWindowName(winName)

	ui := &BasicUI{
		DrawFrameRate: 37,
		RootNode:      root,
		Win:           win,
		events:        events,
		applier:       widget.NewApplyEvent(),
	}
	root.Embed().SetWrapperForRoot(root)

	go ui.Win.EventLoop(events)

	return ui, nil
}

func (ui *BasicUI) Close() {
	ui.Win.Close()
}

//----------

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowExpose:
		ui.UpdateImageSize()
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowResize:
		ui.UpdateImageSize()
	case *event.WindowInput:
		ui.applier.Apply(ui.RootNode, t.Event, t.Point)
	case *event.WindowPutImageDone:
		ui.onWindowPutImageDone()
	case *UIRunFuncEvent:
		t.Func()
	case struct{}:
		// no op
	case error:
		log.Print(t)
	default:
		log.Printf("unhandled event: %#v", ev)
	}
}

func (ui *BasicUI) UpdateImageSize() {
	err := ui.Win.UpdateImageSize()
	if err != nil {
		log.Println(err)
		return
	}
	ib := ui.Win.Image().Bounds()
	en := ui.RootNode.Embed()
	if !en.Bounds.Eq(ib) {
		en.Bounds = ib
		en.MarkNeedsLayoutAndPaint()
	}
}

//----------

// This function should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	canPaint := d > (time.Second / time.Duration(ui.DrawFrameRate))
	if canPaint {
		if ui.paintIfNeeded() {
			ui.lastPaint = now
		}
	} else {
		if len(ui.events) == 0 {
			// didn't paint to avoid high fps; enqueue a no-op event to let
			// the loop iterate and try again
			ui.EnqueueNoOpEvent()
		}
	}
}

func (ui *BasicUI) paintIfNeeded() bool {
	// still painting something else; called again on the put done event
	if ui.incompleteDraws != 0 {
		return false
	}

	ui.RootNode.LayoutMarked()
	r := ui.RootNode.PaintMarked()
	if r.Empty() {
		return false
	}
	ui.putImage(r)
	return true
}

func (ui *BasicUI) putImage(r image.Rectangle) {
	ui.incompleteDraws++
	if err := ui.Win.PutImage(r); err != nil {
		log.Print(err)
	}
}

func (ui *BasicUI) onWindowPutImageDone() {
	ui.incompleteDraws--
}

func (ui *BasicUI) EnqueueNoOpEvent() {
	ui.events <- struct{}{}
}

func (ui *BasicUI) RequestPaint() {
	ui.EnqueueNoOpEvent()
}

//----------

func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

func (ui *BasicUI) QueryPointer() (image.Point, error) {
	return ui.Win.QueryPointer()
}

//----------

func (ui *BasicUI) RunOnUIThread(f func()) {
	ui.events <- &UIRunFuncEvent{f}
}

type UIRunFuncEvent struct {
	Func func()
}
