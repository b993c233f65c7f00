package widget

import (
	"image"
	"image/color"
)

// Discrete commands delivered from outside the widget tree (config layers,
// watchers, app code). Consumed synchronously, in arrival order, by
// ScrollView.Exec.
type ScrollCommand interface {
	isScrollCommand()
}

type EnsureVisible struct{ Rect image.Rectangle }
type ScrollDelta struct{ Delta image.Point }
type ScrollTo struct{ Point image.Point }

type SetHidden struct{ Hidden bool }
type SetPropagateWheel struct{ Propagate bool }
type SetAxisSwap struct{ Swap bool }

type SetBarColor struct{ Color color.Color }
type SetBarRounded struct{ Rounded bool }
type SetBarThickness struct{ Thickness int }
type SetBarEdgeWidth struct{ Width int }

func (EnsureVisible) isScrollCommand()     {}
func (ScrollDelta) isScrollCommand()       {}
func (ScrollTo) isScrollCommand()          {}
func (SetHidden) isScrollCommand()         {}
func (SetPropagateWheel) isScrollCommand() {}
func (SetAxisSwap) isScrollCommand()       {}
func (SetBarColor) isScrollCommand()       {}
func (SetBarRounded) isScrollCommand()     {}
func (SetBarThickness) isScrollCommand()   {}
func (SetBarEdgeWidth) isScrollCommand()   {}

func (sv *ScrollView) Exec(cmds ...ScrollCommand) {
	for _, cmd := range cmds {
		switch t := cmd.(type) {
		case EnsureVisible:
			sv.PanToVisible(t.Rect)
		case ScrollDelta:
			sv.ScrollDelta(t.Delta)
		case ScrollTo:
			sv.ScrollTo(t.Point)
		case SetHidden:
			if sv.Style.Hidden != t.Hidden {
				sv.Style.Hidden = t.Hidden
				sv.MarkNeedsPaint()
			}
		case SetPropagateWheel:
			sv.PropagateWheel = t.Propagate
		case SetAxisSwap:
			sv.VerticalWheelAsHorizontal = t.Swap
		case SetBarColor:
			sv.Style.Color = t.Color
			sv.MarkNeedsPaint()
		case SetBarRounded:
			sv.Style.Rounded = t.Rounded
			sv.MarkNeedsPaint()
		case SetBarThickness:
			sv.Style.Thickness = t.Thickness
			sv.MarkNeedsPaint()
		case SetBarEdgeWidth:
			sv.Style.EdgeWidth = t.Width
			sv.MarkNeedsPaint()
		default:
			panic("unexpected scroll command")
		}
	}
}
