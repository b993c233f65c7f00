package widget

import (
	"image"
	"image/draw"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"scrollview/util/imageutil"
	"scrollview/util/uiutil/event"
)

//----------

type testCtx struct {
	img draw.Image
}

func (c *testCtx) Image() draw.Image { return c.img }

// Content node with a fixed natural size.
type fixedNode struct {
	ENode
	ctx  ImageContext
	size image.Point

	evs []interface{}
}

func (fn *fixedNode) Measure(hint image.Point) image.Point {
	return fn.size
}
func (fn *fixedNode) Paint() {
	if fn.ctx == nil {
		return
	}
	imageutil.FillRectangle(fn.ctx.Image(), &fn.Bounds, imageutil.IntRGBA(0x00ff00))
}
func (fn *fixedNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	fn.evs = append(fn.evs, ev)
	return false
}

//----------

func newTestScrollView(viewSize, contentSize image.Point) (*ScrollView, *fixedNode) {
	ctx := &testCtx{img: image.NewRGBA(image.Rect(0, 0, 400, 400))}
	sv := NewScrollView(ctx)
	sv.Embed().SetWrapperForRoot(sv)
	fn := &fixedNode{size: contentSize}
	fn.ctx = sv.ContentCtx()
	sv.SetContent(fn)
	sv.Bounds = image.Rect(0, 0, viewSize.X, viewSize.Y)
	sv.LayoutTree()
	return sv, fn
}

func pt(x, y int) image.Point { return image.Point{x, y} }

//----------

func TestClamp1(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))

	sv.ScrollTo(pt(950, 950))
	if sv.Viewport().Min != pt(900, 900) {
		t.Fatal(sv.Viewport())
	}
	// clamping is idempotent
	sv.ScrollTo(sv.Viewport().Min)
	if sv.Viewport().Min != pt(900, 900) {
		t.Fatal(sv.Viewport())
	}
	sv.ScrollTo(pt(-50, -50))
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
	sv.ScrollDelta(pt(30, 2000))
	if sv.Viewport().Min != pt(30, 900) {
		t.Fatal(sv.Viewport())
	}
}

func TestClamp2(t *testing.T) {
	// content fits: origin pinned at zero on both axis
	sv, _ := newTestScrollView(pt(100, 100), pt(50, 50))
	sv.ScrollTo(pt(30, 30))
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
	sv.ScrollDelta(pt(-10, 5))
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
}

func TestClamp3(t *testing.T) {
	// one axis fits, the other doesn't
	sv, _ := newTestScrollView(pt(100, 100), pt(50, 1000))
	sv.ScrollTo(pt(30, 500))
	if sv.Viewport().Min != pt(0, 500) {
		t.Fatal(sv.Viewport())
	}
}

func TestOnScrollOnce(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	count := 0
	sv.OnScroll = func(vp image.Rectangle) {
		count++
	}
	sv.ScrollTo(pt(100, 100))
	sv.ScrollTo(pt(100, 100)) // no-op, already there
	sv.ScrollTo(pt(2000, 0))  // clamps to (900,0)
	sv.ScrollTo(pt(950, 0))   // clamps to the same (900,0), no-op
	if count != 2 {
		t.Fatal(count)
	}
}

//----------

func TestPanToVisible1(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))

	// already visible: no movement
	sv.OnScroll = func(image.Rectangle) { t.Fatal("scrolled") }
	sv.PanToVisible(image.Rect(10, 10, 20, 20))
	sv.OnScroll = nil

	// below/right of the viewport: smallest pan that shows it
	sv.PanToVisible(image.Rect(150, 150, 170, 170))
	if sv.Viewport().Min != pt(70, 70) {
		t.Fatal(sv.Viewport())
	}
	// above/left
	sv.PanToVisible(image.Rect(0, 0, 10, 10))
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
}

func TestPanToVisible2(t *testing.T) {
	// larger than the viewport: the rect origin corner wins
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.PanToVisible(image.Rect(200, 0, 400, 50))
	vp := sv.Viewport()
	if vp.Min.X != 200 {
		t.Fatal(vp)
	}
}

//----------

func TestBarGeometry1(t *testing.T) {
	// content fits on both axis: no bars
	sv, _ := newTestScrollView(pt(100, 100), pt(50, 50))
	if _, ok := sv.calcVerticalBarBounds(); ok {
		t.Fatal("have vertical bar")
	}
	if _, ok := sv.calcHorizontalBarBounds(); ok {
		t.Fatal("have horizontal bar")
	}
}

func TestBarGeometry2(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))

	b, ok := sv.calcVerticalBarBounds()
	if !ok {
		t.Fatal("no vertical bar")
	}
	// 10% visible of a 100px track, right edge, at the top
	if b != image.Rect(90, 0, 100, 10) {
		t.Fatal(b)
	}

	// thumb offset is monotonic in the scroll position
	prev := -1
	for _, y := range []int{0, 300, 450, 600, 900} {
		sv.ScrollTo(pt(0, y))
		b, _ := sv.calcVerticalBarBounds()
		off := b.Min.Y - sv.Viewport().Min.Y
		if off <= prev && y != 0 {
			t.Fatal(y, off, prev)
		}
		prev = off
	}
	// at the bottom the thumb touches the end of the track
	sv.ScrollTo(pt(0, 900))
	b, _ = sv.calcVerticalBarBounds()
	if b.Max.Y-sv.Viewport().Min.Y != 100 {
		t.Fatal(b)
	}
}

func TestBarGeometry3(t *testing.T) {
	// tiny proportion: the thumb keeps its minimum length
	sv, _ := newTestScrollView(pt(100, 100), pt(100000, 100000))
	b, _ := sv.calcVerticalBarBounds()
	if b.Dy() != sv.Style.Thickness {
		t.Fatal(b)
	}
	b2, _ := sv.calcHorizontalBarBounds()
	if b2.Dx() != ScrollBarMinSize {
		t.Fatal(b2)
	}
}

func TestBarGeometry4(t *testing.T) {
	// with both bars present the horizontal track avoids the corner
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.ScrollTo(pt(900, 0)) // fully scrolled right
	b, _ := sv.calcHorizontalBarBounds()
	o := sv.Viewport().Min
	if b.Max.X-o.X != 100-sv.Style.Thickness {
		t.Fatal(b)
	}
}

//----------

func TestTrackClickJump(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))

	ev := &event.MouseDown{Point: pt(95, 50), Button: event.ButtonLeft}
	h := sv.InterceptInputEvent(ev, ev.Point)
	if !h {
		t.Fatal("not handled")
	}
	// clicked point becomes the thumb center: 50/100*1000 - 100/2
	if sv.Viewport().Min != pt(0, 450) {
		t.Fatal(sv.Viewport())
	}
	// the press anchors an immediate drag at the jumped position
	if sv.drag.held != dragVertical || sv.drag.startOrigin != pt(0, 450) {
		t.Fatal(spew.Sdump(sv.drag))
	}
}

func TestThumbDrag(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))

	// press inside the thumb: no jump
	down := &event.MouseDown{Point: pt(95, 5), Button: event.ButtonLeft}
	if !sv.InterceptInputEvent(down, down.Point) {
		t.Fatal("not handled")
	}
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}

	// 20px of pointer travel scaled by viewLen/contentLen
	move := &event.MouseMove{Point: pt(95, 25)}
	if !sv.InterceptInputEvent(move, move.Point) {
		t.Fatal("not handled")
	}
	if sv.Viewport().Min != pt(0, 200) {
		t.Fatal(sv.Viewport())
	}

	// overshoot clamps
	move = &event.MouseMove{Point: pt(95, 500)}
	sv.InterceptInputEvent(move, move.Point)
	if sv.Viewport().Min != pt(0, 900) {
		t.Fatal(sv.Viewport())
	}

	// release anywhere ends the drag
	up := &event.MouseUp{Point: pt(-30, 700), Button: event.ButtonLeft}
	sv.InterceptInputEvent(up, up.Point)
	if sv.drag.held != dragNone {
		t.Fatal(spew.Sdump(sv.drag))
	}

	// idle moves over the content change nothing
	move = &event.MouseMove{Point: pt(50, 50)}
	if sv.InterceptInputEvent(move, move.Point) {
		t.Fatal("handled while idle")
	}
	if sv.Viewport().Min != pt(0, 900) {
		t.Fatal(sv.Viewport())
	}
}

func TestDragHorizontal(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))

	down := &event.MouseDown{Point: pt(5, 95), Button: event.ButtonLeft}
	if !sv.InterceptInputEvent(down, down.Point) {
		t.Fatal("not handled")
	}
	if sv.drag.held != dragHorizontal {
		t.Fatal(spew.Sdump(sv.drag))
	}
	start := sv.Viewport().Min
	move := &event.MouseMove{Point: pt(15, 95)}
	sv.InterceptInputEvent(move, move.Point)
	if got := sv.Viewport().Min.X - start.X; got != 100 {
		t.Fatal(got)
	}
	// the cross axis is held fixed during the drag
	move = &event.MouseMove{Point: pt(20, 20)}
	sv.InterceptInputEvent(move, move.Point)
	if sv.Viewport().Min.Y != start.Y {
		t.Fatal(sv.Viewport())
	}
}

func TestSecondaryButtonIgnored(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	ev := &event.MouseDown{Point: pt(95, 50), Button: event.ButtonRight}
	if sv.InterceptInputEvent(ev, ev.Point) {
		t.Fatal("handled")
	}
	if sv.drag.held != dragNone {
		t.Fatal(spew.Sdump(sv.drag))
	}
}

func TestHiddenBarsIgnorePointer(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.Exec(SetHidden{true})
	ev := &event.MouseDown{Point: pt(95, 50), Button: event.ButtonLeft}
	if sv.InterceptInputEvent(ev, ev.Point) {
		t.Fatal("handled")
	}
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
}

//----------

func TestWheel1(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.ScrollTo(pt(100, 100))

	ev := &event.MouseWheel{Point: pt(50, 50), Delta: pt(0, -20)}
	h := sv.OnInputEvent(ev, ev.Point)
	if !h {
		t.Fatal("not handled")
	}
	if sv.Viewport().Min != pt(100, 80) {
		t.Fatal(sv.Viewport())
	}
}

func TestWheelAxisSwap(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.ScrollTo(pt(100, 100))
	sv.VerticalWheelAsHorizontal = true

	ev := &event.MouseWheel{Point: pt(50, 50), Delta: pt(0, -20)}
	sv.OnInputEvent(ev, ev.Point)
	if sv.Viewport().Min != pt(80, 100) {
		t.Fatal(sv.Viewport())
	}

	// an already-horizontal delta is not swapped
	ev = &event.MouseWheel{Point: pt(50, 50), Delta: pt(10, 0)}
	sv.OnInputEvent(ev, ev.Point)
	if sv.Viewport().Min != pt(90, 100) {
		t.Fatal(sv.Viewport())
	}
}

func TestWheelPropagate(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	ev := &event.MouseWheel{Point: pt(50, 50), Delta: pt(0, 20)}
	if h := sv.OnInputEvent(ev, ev.Point); !h {
		t.Fatal(h)
	}
	sv.Exec(SetPropagateWheel{true})
	if h := sv.OnInputEvent(ev, ev.Point); h {
		t.Fatal(h)
	}
	// still scrolled both times
	if sv.Viewport().Min != pt(0, 40) {
		t.Fatal(sv.Viewport())
	}
}

func TestWheelListener(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.OnWheel = func(ev *event.MouseWheel) event.Handled {
		return true
	}
	ev := &event.MouseWheel{Point: pt(50, 50), Delta: pt(0, 20)}
	if h := sv.OnInputEvent(ev, ev.Point); !h {
		t.Fatal(h)
	}
	// the listener consumed it, no scrolling
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
}

func TestPageKeys(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	ev := &event.KeyDown{KeySym: event.KSymPageDown}
	sv.OnInputEvent(ev, image.Point{})
	if sv.Viewport().Min != pt(0, 100) {
		t.Fatal(sv.Viewport())
	}
	ev = &event.KeyDown{KeySym: event.KSymPageUp}
	sv.OnInputEvent(ev, image.Point{})
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
}

//----------

func TestExecCommands(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.Exec(
		ScrollTo{pt(100, 100)},
		ScrollDelta{pt(0, 50)},
		EnsureVisible{image.Rect(0, 0, 10, 10)},
		SetBarThickness{16},
		SetBarRounded{true},
	)
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
	if sv.Style.Thickness != 16 || !sv.Style.Rounded {
		t.Fatal(spew.Sdump(sv.Style))
	}
	b, _ := sv.calcVerticalBarBounds()
	if b.Dx() != 16 {
		t.Fatal(b)
	}
}

//----------

func TestResizeReclamps(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.ScrollTo(pt(900, 900))

	// grow the window: the old origin is now out of range
	sv.Bounds = image.Rect(0, 0, 200, 200)
	sv.LayoutTree()
	if sv.Viewport().Min != pt(800, 800) {
		t.Fatal(sv.Viewport())
	}
}

func TestContentGone(t *testing.T) {
	sv, fn := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.ScrollTo(pt(500, 500))

	// content shrinks below the viewport: origin pins to zero, bars go away
	fn.size = pt(50, 50)
	sv.LayoutTree()
	if sv.Viewport().Min != pt(0, 0) {
		t.Fatal(sv.Viewport())
	}
	if _, ok := sv.calcVerticalBarBounds(); ok {
		t.Fatal("have vertical bar")
	}
}

func TestPadding(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.Padding = PadInsets{Top: PadPx(10), Left: PadPx(10), Right: PadPx(10), Bottom: PadPx(10)}
	sv.LayoutTree()
	if sv.ActualRect() != image.Rect(10, 10, 90, 90) {
		t.Fatal(sv.ActualRect())
	}
	if sv.Viewport().Size() != pt(80, 80) {
		t.Fatal(sv.Viewport())
	}

	// percent padding resolves against the box width on every side
	sv.Padding = PadInsets{Top: PadPct(10)}
	sv.LayoutTree()
	if sv.ActualRect() != image.Rect(0, 10, 100, 100) {
		t.Fatal(sv.ActualRect())
	}
}

//----------

func TestPaintClip(t *testing.T) {
	sv, _ := newTestScrollView(pt(100, 100), pt(1000, 1000))
	sv.PaintTree()

	img := sv.ctx.Image()
	// content painted inside the viewport
	if r, g, _, _ := img.At(50, 50).RGBA(); r != 0 || g == 0 {
		t.Fatal(img.At(50, 50))
	}
	// nothing painted outside the bounds
	if _, _, _, a := img.At(150, 50).RGBA(); a != 0 {
		t.Fatal(img.At(150, 50))
	}
	// the thumb drawn over the content at the right edge
	if r, g, b, _ := img.At(95, 5).RGBA(); r == g && g == b && b == 0xffff {
		t.Fatal(img.At(95, 5))
	}
}

//----------

func TestApplyEventGrab(t *testing.T) {
	sv, fn := newTestScrollView(pt(100, 100), pt(1000, 1000))
	ae := NewApplyEvent()

	// press on the thumb grabs the pointer
	down := &event.MouseDown{Point: pt(95, 5), Button: event.ButtonLeft}
	ae.Apply(sv, down, down.Point)
	if ae.grab == nil {
		t.Fatal("no grab")
	}

	// moves outside the node bounds still reach the grab owner
	move := &event.MouseMove{Point: pt(300, 45)}
	ae.Apply(sv, move, move.Point)
	if sv.Viewport().Min != pt(0, 400) {
		t.Fatal(sv.Viewport())
	}
	// the content never saw the gesture
	if len(fn.evs) != 0 {
		t.Fatal(spew.Sdump(fn.evs))
	}

	// release clears the grab
	up := &event.MouseUp{Point: pt(300, 45), Button: event.ButtonLeft}
	ae.Apply(sv, up, up.Point)
	if ae.grab != nil {
		t.Fatal("still grabbed")
	}
}

func TestApplyEventContent(t *testing.T) {
	sv, fn := newTestScrollView(pt(100, 100), pt(1000, 1000))
	ae := NewApplyEvent()

	// a press over the content area routes to the content, no grab
	down := &event.MouseDown{Point: pt(50, 50), Button: event.ButtonLeft}
	ae.Apply(sv, down, down.Point)
	if ae.grab != nil {
		t.Fatal("grabbed")
	}
	if len(fn.evs) != 1 {
		t.Fatal(spew.Sdump(fn.evs))
	}
}
