package event

import (
	"image"
)

//----------

type WindowClose struct{}
type WindowExpose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowPutImageDone struct{}
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

type Handled bool

//----------

type MouseDown struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseUp struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

// Wheel motion with a pixel delta vector. Drivers that only report discrete
// wheel buttons synthesize a fixed-step delta.
type MouseWheel struct {
	Point image.Point
	Delta image.Point
	Mods  KeyModifiers
}

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
	ButtonBackward
	ButtonForward
)

// The primary button is the left one.
func (b MouseButton) IsPrimary() bool {
	return b == ButtonLeft
}

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
func (mb MouseButtons) Is(b MouseButton) bool {
	return int32(mb) == int32(b)
}

//----------

type KeyDown struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}
type KeyUp struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock
	ModCtrl
	ModAlt
)

//----------

//----------

type Cursor int

const (
	NoneCursor Cursor = iota
	DefaultCursor
	PointerCursor
	BeamCursor
	WaitCursor
)

//----------

type KeySym int

const (
	KSymNone KeySym = 0

	// let ascii codes keep their values
	KSym_dummy_ KeySym = 256 + iota

	KSymHome
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymEnd
	KSymEscape
)
