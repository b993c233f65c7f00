package widget

import (
	"image"
	"image/color"
	"image/draw"

	"scrollview/util/imageutil"
	"scrollview/util/mathutil"
	"scrollview/util/uiutil/event"
)

// Minimum length for the horizontal scrollbar thumb on its primary axis.
// The vertical thumb minimum is the bar thickness instead.
const ScrollBarMinSize = 10

// hint used to obtain the content natural size, independent of the
// viewport bounds
var unboundedHint = image.Point{1 << 22, 1 << 22}

//----------

type ScrollBarStyle struct {
	Color     color.Color // nil: use theme "scrollbar_fg"
	Rounded   bool
	Hidden    bool
	Thickness int
	EdgeWidth int
}

func DefaultScrollBarStyle() ScrollBarStyle {
	return ScrollBarStyle{Thickness: 10}
}

//----------

// Denotes which scrollbar, if any, is currently being dragged.
type dragAxis int

const (
	dragNone dragAxis = iota
	dragVertical
	dragHorizontal
)

type dragState struct {
	held        dragAxis
	anchor      int         // pointer coordinate on the drag axis at press
	startOrigin image.Point // viewport origin at press
}

//----------

// Padding value, either pixels or a percentage of the box width (both axes
// resolve against the width).
type PadValue struct {
	Value float64
	Pct   bool
}

func PadPx(v float64) PadValue  { return PadValue{Value: v} }
func PadPct(v float64) PadValue { return PadValue{Value: v, Pct: true} }

func (pv PadValue) resolve(boxWidth int) int {
	if pv.Pct {
		return int(pv.Value / 100 * float64(boxWidth))
	}
	return int(pv.Value)
}

type PadInsets struct {
	Top, Right, Bottom, Left PadValue
}

//----------

// ScrollView keeps a clipped viewport over a larger content widget, renders
// proportional overlay scrollbars, and repositions the viewport from pointer
// drags, track clicks, wheel events and external commands. The content child
// is placed absolutely at its natural size; only the viewport window of it
// is visible.
type ScrollView struct {
	ENode
	Style        ScrollBarStyle
	Padding      PadInsets
	CornerRadius int // content clip corner rounding

	PropagateWheel            bool // report wheel as not fully handled
	VerticalWheelAsHorizontal bool

	// called exactly once per effective viewport change
	OnScroll func(viewport image.Rectangle)
	// externally registered wheel listener, checked before scrolling
	OnWheel func(ev *event.MouseWheel) event.Handled

	content     Node
	contentSize image.Point     // content natural size (zero before measure)
	actualRect  image.Rectangle // bounds minus resolved padding
	origin      image.Point     // viewport origin in content coordinates
	drag        dragState

	ctx ImageContext
}

func NewScrollView(ctx ImageContext) *ScrollView {
	sv := &ScrollView{ctx: ctx}
	sv.Style = DefaultScrollBarStyle()
	return sv
}

func (sv *ScrollView) SetContent(n Node) {
	if sv.content != nil {
		sv.Remove(sv.content)
	}
	sv.content = n
	sv.Append(n)
}

// Context for content construction; drawing gets clipped to the viewport.
func (sv *ScrollView) ContentCtx() ImageContext {
	return &scrollClipCtx{sv}
}

type scrollClipCtx struct {
	sv *ScrollView
}

func (c *scrollClipCtx) Image() draw.Image {
	return imageutil.ClipImage(c.sv.ctx.Image(), c.sv.actualRect)
}

//----------

// The current viewport rectangle in content coordinates. Its size always
// equals the actual (padding-excluded) rect size.
func (sv *ScrollView) Viewport() image.Rectangle {
	return image.Rectangle{Min: sv.origin, Max: sv.origin.Add(sv.actualRect.Size())}
}

func (sv *ScrollView) ContentSize() image.Point {
	return sv.contentSize
}

func (sv *ScrollView) ActualRect() image.Rectangle {
	return sv.actualRect
}

//----------

func (sv *ScrollView) Measure(hint image.Point) image.Point {
	m := image.Point{}
	if sv.content != nil {
		m = sv.content.Measure(hint)
	}
	w := hint.X
	m.X += sv.Padding.Left.resolve(w) + sv.Padding.Right.resolve(w)
	m.Y += sv.Padding.Top.resolve(w) + sv.Padding.Bottom.resolve(w)
	return imageutil.MinPoint(m, hint)
}

func (sv *ScrollView) Layout() {
	sv.updateSize()
	sv.clampViewport(sv.origin)
	sv.placeContent()
}

// Recomputes the actual rect from the assigned bounds minus resolved
// padding, and the content size from the child's natural measure. A content
// size change requests a re-layout (scrollbar presence/length may change).
func (sv *ScrollView) updateSize() {
	b := sv.Bounds
	w := b.Dx()
	r := b
	r.Min.X += sv.Padding.Left.resolve(w)
	r.Max.X -= sv.Padding.Right.resolve(w)
	r.Min.Y += sv.Padding.Top.resolve(w)
	r.Max.Y -= sv.Padding.Bottom.resolve(w)
	sv.actualRect = r.Intersect(b)

	cs := image.Point{}
	if sv.content != nil {
		cs = sv.content.Measure(unboundedHint)
	}
	if cs != sv.contentSize {
		sv.contentSize = cs
		sv.MarkNeedsLayout()
	}
}

// Absolute placement of the content at its natural size, offset by the
// negative scroll origin.
func (sv *ScrollView) placeContent() {
	if sv.content == nil {
		return
	}
	min := sv.actualRect.Min.Sub(sv.origin)
	sv.content.Embed().Bounds = image.Rectangle{Min: min, Max: min.Add(sv.contentSize)}
}

//----------

func (sv *ScrollView) clampOrigin(p image.Point) image.Point {
	cs := sv.contentSize
	vs := sv.actualRect.Size()
	if vs.X >= cs.X {
		p.X = 0
	} else {
		p.X = mathutil.LimitInt(p.X, 0, cs.X-vs.X)
	}
	if vs.Y >= cs.Y {
		p.Y = 0
	} else {
		p.Y = mathutil.LimitInt(p.Y, 0, cs.Y-vs.Y)
	}
	return p
}

// Constrains the candidate origin to the valid range and commits it. On an
// effective change it repositions the content, requests re-layout/paint and
// runs the OnScroll callback once.
func (sv *ScrollView) clampViewport(candidate image.Point) bool {
	p := sv.clampOrigin(candidate)
	if p == sv.origin {
		return false
	}
	sv.origin = p
	sv.placeContent()
	sv.MarkNeedsLayout()
	sv.MarkNeedsPaint()
	if sv.OnScroll != nil {
		sv.OnScroll(sv.Viewport())
	}
	return true
}

func (sv *ScrollView) ScrollDelta(delta image.Point) {
	sv.clampViewport(sv.origin.Add(delta))
}

func (sv *ScrollView) ScrollTo(p image.Point) {
	sv.clampViewport(p)
}

//----------

// Given a value and the min and max edges of an axis, return a delta by
// which to adjust that axis such that the value falls between its edges.
func closestOnAxis(v, min, max int) int {
	if v > min && v < max {
		return 0
	}
	if v <= min {
		return v - min
	}
	return v - max
}

// Pan the smallest distance that makes the target rect visible. If the rect
// is larger than the viewport, the region closest to the rect's origin is
// prioritized.
func (sv *ScrollView) PanToVisible(r image.Rectangle) {
	vp := sv.Viewport()

	// clamp the target size to the viewport size, keeping the origin corner
	sz := imageutil.MinPoint(r.Size(), vp.Size())
	r = image.Rectangle{Min: r.Min, Max: r.Min.Add(sz)}

	dx := panAxisDelta(r.Min.X, r.Max.X, vp.Min.X, vp.Max.X)
	dy := panAxisDelta(r.Min.Y, r.Max.Y, vp.Min.Y, vp.Max.Y)
	sv.clampViewport(sv.origin.Add(image.Point{dx, dy}))
}

func panAxisDelta(lo, hi, min, max int) int {
	d0 := closestOnAxis(lo, min, max)
	d1 := closestOnAxis(hi, min, max)
	// both nonzero can't contradict due to the size clamp; defensively keep
	// the larger magnitude
	if abs(d0) > abs(d1) {
		return d0
	}
	return d1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

//----------

// Thumb rect of the vertical bar in content coordinates, or false when the
// content fits the viewport (no bar, and no zero division in the percents).
func (sv *ScrollView) calcVerticalBarBounds() (image.Rectangle, bool) {
	vs := sv.actualRect.Size()
	cs := sv.contentSize
	if vs.Y >= cs.Y {
		return image.Rectangle{}, false
	}

	bw := sv.Style.Thickness

	percentVisible := float64(vs.Y) / float64(cs.Y)
	percentScrolled := float64(sv.origin.Y) / float64(cs.Y-vs.Y)

	length := mathutil.CeilFloat64(percentVisible * float64(vs.Y))
	// vertical thumb must be at least as long as the bar is thick
	length = mathutil.Biggest(length, bw)

	yoff := mathutil.CeilFloat64(float64(vs.Y-length) * percentScrolled)

	o := sv.origin
	return image.Rect(o.X+vs.X-bw, o.Y+yoff, o.X+vs.X, o.Y+yoff+length), true
}

func (sv *ScrollView) calcHorizontalBarBounds() (image.Rectangle, bool) {
	vs := sv.actualRect.Size()
	cs := sv.contentSize
	if vs.X >= cs.X {
		return image.Rectangle{}, false
	}

	bw := sv.Style.Thickness

	percentVisible := float64(vs.X) / float64(cs.X)
	percentScrolled := float64(sv.origin.X) / float64(cs.X-vs.X)

	length := mathutil.CeilFloat64(percentVisible * float64(vs.X))
	length = mathutil.Biggest(length, ScrollBarMinSize)

	// don't run under the vertical bar corner when both bars are present
	inset := 0
	if vs.Y < cs.Y {
		inset = bw
	}

	xoff := mathutil.CeilFloat64(float64(vs.X-length-inset) * percentScrolled)

	o := sv.origin
	return image.Rect(o.X+xoff, o.Y+vs.Y-bw, o.X+xoff+length, o.Y+vs.Y), true
}

//----------

// Hit tests operate in content coordinates (pointer plus scroll offset).

func (sv *ScrollView) toContent(p image.Point) image.Point {
	return p.Sub(sv.actualRect.Min).Add(sv.origin)
}

// The bar's thickness band stretched across the entire cross extent of the
// viewport: decides whether the gesture belongs to the scrollbar at all.
func (sv *ScrollView) withinVerticalBand(pos image.Point) bool {
	b, ok := sv.calcVerticalBarBounds()
	if !ok {
		return false
	}
	return pos.X >= b.Min.X && pos.X <= sv.origin.X+sv.actualRect.Dx()
}

func (sv *ScrollView) withinHorizontalBand(pos image.Point) bool {
	b, ok := sv.calcHorizontalBarBounds()
	if !ok {
		return false
	}
	return pos.Y >= b.Min.Y && pos.Y <= sv.origin.Y+sv.actualRect.Dy()
}

// Inside the thumb rect itself: grab, don't page-jump.
func (sv *ScrollView) hitsVerticalThumb(pos image.Point) bool {
	b, ok := sv.calcVerticalBarBounds()
	if !ok {
		return false
	}
	b.Max.X = sv.origin.X + sv.actualRect.Dx() // stretch to the edge
	return pos.In(b)
}

func (sv *ScrollView) hitsHorizontalThumb(pos image.Point) bool {
	b, ok := sv.calcHorizontalBarBounds()
	if !ok {
		return false
	}
	b.Max.Y = sv.origin.Y + sv.actualRect.Dy()
	return pos.In(b)
}

//----------

// Whether the point (in screen coordinates) falls on a scrollbar band.
func (sv *ScrollView) PointOnBars(p image.Point) bool {
	if sv.Style.Hidden {
		return false
	}
	pos := sv.toContent(p)
	return sv.withinVerticalBand(pos) || sv.withinHorizontalBand(pos)
}

//----------

// Track click: reposition so the clicked point maps to the thumb center.
func (sv *ScrollView) jumpVertical(p image.Point) {
	vs := sv.actualRect.Size()
	local := p.Sub(sv.actualRect.Min)
	y := mathutil.RoundFloat64(float64(local.Y)/float64(vs.Y)*float64(sv.contentSize.Y) - float64(vs.Y)/2)
	sv.clampViewport(image.Point{sv.origin.X, y})
}

func (sv *ScrollView) jumpHorizontal(p image.Point) {
	vs := sv.actualRect.Size()
	local := p.Sub(sv.actualRect.Min)
	x := mathutil.RoundFloat64(float64(local.X)/float64(vs.X)*float64(sv.contentSize.X) - float64(vs.X)/2)
	sv.clampViewport(image.Point{x, sv.origin.Y})
}

//----------

// Bar gestures run before the content child sees the event; a handled
// mouse-down makes this node the pointer grab target (exclusive gesture
// ownership until mouse-up).
func (sv *ScrollView) InterceptInputEvent(ev interface{}, p image.Point) event.Handled {
	switch evt := ev.(type) {
	case *event.MouseDown:
		if sv.Style.Hidden || !evt.Button.IsPrimary() {
			return false
		}
		sv.drag.held = dragNone
		pos := sv.toContent(evt.Point)
		if sv.withinVerticalBand(pos) {
			if !sv.hitsVerticalThumb(pos) {
				sv.jumpVertical(evt.Point)
			}
			// anchored at the (possibly jumped) origin: a held button keeps
			// dragging without a second press
			sv.drag = dragState{held: dragVertical, anchor: evt.Point.Y, startOrigin: sv.origin}
			return true
		}
		if sv.withinHorizontalBand(pos) {
			if !sv.hitsHorizontalThumb(pos) {
				sv.jumpHorizontal(evt.Point)
			}
			sv.drag = dragState{held: dragHorizontal, anchor: evt.Point.X, startOrigin: sv.origin}
			return true
		}

	case *event.MouseMove:
		if sv.Style.Hidden {
			return false
		}
		vs := sv.actualRect.Size()
		cs := sv.contentSize
		switch sv.drag.held {
		case dragVertical:
			if cs.Y == 0 {
				return true
			}
			scale := float64(vs.Y) / float64(cs.Y)
			y := sv.drag.startOrigin.Y + mathutil.RoundFloat64(float64(evt.Point.Y-sv.drag.anchor)/scale)
			sv.clampViewport(image.Point{sv.drag.startOrigin.X, y})
			return true
		case dragHorizontal:
			if cs.X == 0 {
				return true
			}
			scale := float64(vs.X) / float64(cs.X)
			x := sv.drag.startOrigin.X + mathutil.RoundFloat64(float64(evt.Point.X-sv.drag.anchor)/scale)
			sv.clampViewport(image.Point{x, sv.drag.startOrigin.Y})
			return true
		default:
			// swallow hover over the bands (no drag-through to the content)
			pos := sv.toContent(evt.Point)
			if sv.withinVerticalBand(pos) || sv.withinHorizontalBand(pos) {
				return true
			}
		}

	case *event.MouseUp:
		// unconditional, regardless of pointer position
		sv.drag.held = dragNone
	}
	return false
}

// Wheel and paging run after the content child had its chance.
func (sv *ScrollView) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	switch evt := ev.(type) {
	case *event.MouseWheel:
		if sv.OnWheel != nil && sv.OnWheel(evt) {
			return true
		}
		d := evt.Delta
		if sv.VerticalWheelAsHorizontal && d.X == 0 && d.Y != 0 {
			d = image.Point{d.Y, 0}
		}
		sv.clampViewport(sv.origin.Add(d))
		return event.Handled(!sv.PropagateWheel)
	case *event.KeyDown:
		switch evt.KeySym {
		case event.KSymPageUp:
			sv.clampViewport(sv.origin.Sub(image.Point{0, sv.actualRect.Dy()}))
			return true
		case event.KSymPageDown:
			sv.clampViewport(sv.origin.Add(image.Point{0, sv.actualRect.Dy()}))
			return true
		}
	}
	return false
}

//----------

func (sv *ScrollView) Paint() {
	bg := sv.TreeThemePaletteColor("background")
	imageutil.FillRectangle(sv.ctx.Image(), &sv.Bounds, bg)
}

func (sv *ScrollView) PaintOver() {
	if sv.CornerRadius > 0 {
		bg := sv.TreeThemePaletteColor("background")
		r := sv.actualRect
		imageutil.FillOutsideRoundedCorners(sv.ctx.Image(), &r, bg, sv.CornerRadius)
	}
	if !sv.Style.Hidden {
		sv.paintBars()
	}
}

func (sv *ScrollView) barColor() color.Color {
	if sv.Style.Color != nil {
		return sv.Style.Color
	}
	return sv.TreeThemePaletteColor("scrollbar_fg")
}

func (sv *ScrollView) paintBars() {
	c := sv.barColor()
	ew := sv.Style.EdgeWidth

	paint := func(b image.Rectangle, vertical bool) {
		// content coords to screen coords
		r := b.Sub(sv.origin).Add(sv.actualRect.Min)
		r = r.Inset(-ew / 2)
		radius := 0
		if sv.Style.Rounded {
			if vertical {
				radius = r.Dx() / 2
			} else {
				radius = r.Dy() / 2
			}
		}
		r = r.Intersect(sv.Bounds)
		imageutil.FillRoundedRectangle(sv.ctx.Image(), &r, c, radius)
		if ew > 0 {
			imageutil.BorderRectangle(sv.ctx.Image(), &r, c, ew)
		}
	}

	if b, ok := sv.calcVerticalBarBounds(); ok {
		paint(b, true)
	}
	if b, ok := sv.calcHorizontalBarBounds(); ok {
		paint(b, false)
	}
}
