package xdriver

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"scrollview/util/uiutil/event"
)

// Pixels of scroll per wheel detent; wheel events arrive as discrete button
// presses on X11.
const wheelScrollStep = 40

type XInput struct {
	conn *xgb.Conn

	minKC, maxKC xproto.Keycode
	perKC        int
	keysyms      []xproto.Keysym
}

func NewXInput(conn *xgb.Conn) (*XInput, error) {
	xi := &XInput{conn: conn}
	si := xproto.Setup(conn)
	xi.minKC = si.MinKeycode
	xi.maxKC = si.MaxKeycode
	if err := xi.ReadMapTable(); err != nil {
		return nil, err
	}
	return xi, nil
}

func (xi *XInput) ReadMapTable() error {
	count := byte(xi.maxKC - xi.minKC + 1)
	cookie := xproto.GetKeyboardMapping(xi.conn, xi.minKC, count)
	reply, err := cookie.Reply()
	if err != nil {
		return err
	}
	xi.perKC = int(reply.KeysymsPerKeycode)
	xi.keysyms = reply.Keysyms
	return nil
}

func (xi *XInput) keysymAt(kc xproto.Keycode, col int) xproto.Keysym {
	i := int(kc-xi.minKC)*xi.perKC + col
	if i < 0 || i >= len(xi.keysyms) {
		return 0
	}
	return xi.keysyms[i]
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks, ru := xi.lookup(ev.Detail, ev.State)
	ev2 := &event.KeyDown{Point: p, KeySym: ks, Mods: translateMods(ev.State), Rune: ru}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) KeyRelease(ev *xproto.KeyReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks, ru := xi.lookup(ev.Detail, ev.State)
	ev2 := &event.KeyUp{Point: p, KeySym: ks, Mods: translateMods(ev.State), Rune: ru}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	mods := translateMods(ev.State)
	if d, ok := wheelDelta(ev.Detail); ok {
		ev2 := &event.MouseWheel{Point: p, Delta: d, Mods: mods}
		return &event.WindowInput{Point: p, Event: ev2}
	}
	ev2 := &event.MouseDown{Point: p, Button: translateButton(ev.Detail), Mods: mods}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	if _, ok := wheelDelta(ev.Detail); ok {
		// wheel detents already reported on press
		return nil
	}
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ev2 := &event.MouseUp{Point: p, Button: translateButton(ev.Detail), Mods: translateMods(ev.State)}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ev2 := &event.MouseMove{Point: p, Buttons: translateButtons(ev.State), Mods: translateMods(ev.State)}
	return &event.WindowInput{Point: p, Event: ev2}
}

//----------

// X11 keysym values
const (
	xkEscape   = 0xff1b
	xkHome     = 0xff50
	xkLeft     = 0xff51
	xkUp       = 0xff52
	xkRight    = 0xff53
	xkDown     = 0xff54
	xkPageUp   = 0xff55
	xkPageDown = 0xff56
	xkEnd      = 0xff57
)

func (xi *XInput) lookup(kc xproto.Keycode, state uint16) (event.KeySym, rune) {
	col := 0
	if state&xproto.KeyButMaskShift > 0 && xi.perKC > 1 {
		if xi.keysymAt(kc, 1) != 0 {
			col = 1
		}
	}
	xks := xi.keysymAt(kc, col)
	switch xks {
	case xkEscape:
		return event.KSymEscape, 0
	case xkHome:
		return event.KSymHome, 0
	case xkLeft:
		return event.KSymLeft, 0
	case xkUp:
		return event.KSymUp, 0
	case xkRight:
		return event.KSymRight, 0
	case xkDown:
		return event.KSymDown, 0
	case xkPageUp:
		return event.KSymPageUp, 0
	case xkPageDown:
		return event.KSymPageDown, 0
	case xkEnd:
		return event.KSymEnd, 0
	}
	// printable ascii range keeps its value
	if xks >= 0x20 && xks <= 0x7e {
		return event.KeySym(xks), rune(xks)
	}
	return event.KSymNone, 0
}

func wheelDelta(b xproto.Button) (image.Point, bool) {
	switch b {
	case 4:
		return image.Point{0, -wheelScrollStep}, true
	case 5:
		return image.Point{0, wheelScrollStep}, true
	case 6:
		return image.Point{-wheelScrollStep, 0}, true
	case 7:
		return image.Point{wheelScrollStep, 0}, true
	}
	return image.Point{}, false
}

func translateButton(b xproto.Button) event.MouseButton {
	switch b {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 8:
		return event.ButtonBackward
	case 9:
		return event.ButtonForward
	}
	return event.ButtonNone
}

func translateButtons(state uint16) event.MouseButtons {
	var bs event.MouseButtons
	if state&xproto.KeyButMaskButton1 > 0 {
		bs |= event.MouseButtons(event.ButtonLeft)
	}
	if state&xproto.KeyButMaskButton2 > 0 {
		bs |= event.MouseButtons(event.ButtonMiddle)
	}
	if state&xproto.KeyButMaskButton3 > 0 {
		bs |= event.MouseButtons(event.ButtonRight)
	}
	return bs
}

func translateMods(state uint16) event.KeyModifiers {
	var m event.KeyModifiers
	if state&xproto.KeyButMaskShift > 0 {
		m |= event.ModShift
	}
	if state&xproto.KeyButMaskLock > 0 {
		m |= event.ModLock
	}
	if state&xproto.KeyButMaskControl > 0 {
		m |= event.ModCtrl
	}
	if state&xproto.KeyButMaskMod1 > 0 {
		m |= event.ModAlt
	}
	return m
}
