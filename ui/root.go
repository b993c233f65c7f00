package ui

import (
	"image"

	"scrollview/util/uiutil/event"
	"scrollview/util/uiutil/widget"
)

// Root of the widget tree: a scroll view over a text body.
type Root struct {
	widget.ENode
	UI         *UI
	ScrollView *widget.ScrollView
	Text       *widget.BasicText
}

func NewRoot(ui *UI) *Root {
	root := &Root{UI: ui}
	sv := widget.NewScrollView(ui)
	root.ScrollView = sv
	root.Text = widget.NewBasicText(sv.ContentCtx(), "")
	sv.SetContent(root.Text)
	root.Append(sv)
	return root
}

func (root *Root) SetText(s string) {
	root.Text.SetStr(s)
}

// Pointer feedback while hovering the scrollbars.
func (root *Root) InterceptInputEvent(ev interface{}, p image.Point) event.Handled {
	if mm, ok := ev.(*event.MouseMove); ok {
		c := event.DefaultCursor
		if root.ScrollView.PointOnBars(mm.Point) {
			c = event.PointerCursor
		}
		root.UI.SetCursor(c)
	}
	return false
}
