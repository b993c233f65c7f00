package widget

import (
	"image"

	"scrollview/util/uiutil/event"
)

// Routes input events through the node tree. Later childs are drawn over
// previous ones, so childs run in reverse order, depth first. A node may
// intercept an event before its childs (scrollbar gestures); a handled
// mouse-down makes the intercepting node the pointer grab target, receiving
// all pointer events until mouse-up.
type ApplyEvent struct {
	grab Node
}

func NewApplyEvent() *ApplyEvent {
	return &ApplyEvent{}
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	if ae.grab != nil {
		ae.applyGrabbed(ev, p)
		return
	}

	switch ev.(type) {
	case *event.MouseDown:
		ae.applyMouseDown(node, ev, p)
	default:
		ae.depthFirstEv(node, ev, p)
	}
}

//----------

func (ae *ApplyEvent) applyMouseDown(node Node, ev interface{}, p image.Point) {
	h, grab := ae.depthFirstEv2(node, ev, p)
	if h && grab != nil {
		ae.grab = grab
	}
}

func (ae *ApplyEvent) applyGrabbed(ev interface{}, p image.Point) {
	ae.runIntercept(ae.grab, ev, p)
	if _, ok := ev.(*event.MouseUp); ok {
		// the grab owner also sees the release through the normal path
		ae.grab.OnInputEvent(ev, p)
		ae.grab = nil
	}
}

//----------

func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point) event.Handled {
	h, _ := ae.depthFirstEv2(node, ev, p)
	return h
}

// Also returns the node whose intercept handled the event, for grabs.
func (ae *ApplyEvent) depthFirstEv2(node Node, ev interface{}, p image.Point) (event.Handled, Node) {
	if !p.In(node.Embed().Bounds) {
		return false, nil
	}

	// intercept step: before the childs
	if h := ae.runIntercept(node, ev, p); h {
		return true, node
	}

	// execute on childs; later childs are drawn over previous ones, run
	// loop backwards
	h := event.Handled(false)
	var grab Node
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		h, grab = ae.depthFirstEv2(c, ev, p)
		return h == false // continue while not handled
	})

	// execute on node
	if !h {
		h = node.OnInputEvent(ev, p)
	}

	return h, grab
}

//----------

func (ae *ApplyEvent) runIntercept(node Node, ev interface{}, p image.Point) event.Handled {
	return node.InterceptInputEvent(ev, p)
}
