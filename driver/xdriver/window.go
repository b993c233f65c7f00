package xdriver

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"

	"scrollview/util/uiutil/event"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	closeOnce sync.Once

	XInput  *XInput
	Cursors *Cursors
	WImg    *WImage

	events chan interface{}
}

func NewWindow() (*Window, error) {
	display := os.Getenv("DISPLAY")
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("x conn: %w", err)
	}

	win := &Window{
		Conn:   conn,
		events: make(chan interface{}, 8),
	}
	if err := win.initialize(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("win init: %w", err)
	}

	go win.xLoop()

	return win, nil
}

func (win *Window) initialize() error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	// event mask
	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 500, 500,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	if err := loadAtoms(win.Conn); err != nil {
		return err
	}

	// participate in the window manager delete protocol
	b := make([]byte, 4)
	xgb.Put32(b, uint32(Atoms.WMDeleteWindow))
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,
		Atoms.WMProtocols,
		xproto.AtomAtom,
		32, 1, b)

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, []uint32{})
	if err := c2.Check(); err != nil {
		return err
	}

	xi, err := NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	cs, err := NewCursors(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Cursors = cs

	win.WImg = NewWImage(win.Conn, win.Window, win.Screen, win.GCtx)

	return nil
}

func (win *Window) Close() {
	win.closeOnce.Do(func() {
		win.Conn.Close()
	})
}

//----------

func (win *Window) EventLoop(events chan<- interface{}) {
	for ev := range win.events {
		events <- ev
	}
}

func (win *Window) xLoop() {
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			win.events <- &event.WindowClose{}
			close(win.events)
			return
		}
		if xerr != nil {
			win.events <- error(xerr)
		}
		if ev != nil {
			win.handleXEvent(ev)
		}
	}
}

func (win *Window) handleXEvent(ev xgb.Event) {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		w, h := int(t.Width), int(t.Height)
		win.events <- &event.WindowResize{Rect: image.Rect(0, 0, w, h)}
	case xproto.ExposeEvent: // region needs paint
		win.events <- &event.WindowExpose{}
	case xproto.MapNotifyEvent: // window mapped (created)

	case xproto.MappingNotifyEvent: // keyboard mapping
		win.XInput.ReadMapTable()

	case xproto.KeyPressEvent:
		win.sendInput(win.XInput.KeyPress(&t))
	case xproto.KeyReleaseEvent:
		win.sendInput(win.XInput.KeyRelease(&t))
	case xproto.ButtonPressEvent:
		win.sendInput(win.XInput.ButtonPress(&t))
	case xproto.ButtonReleaseEvent:
		win.sendInput(win.XInput.ButtonRelease(&t))
	case xproto.MotionNotifyEvent:
		win.sendInput(win.XInput.MotionNotify(&t))

	case xproto.ClientMessageEvent:
		if t.Type == Atoms.WMProtocols && t.Format == 32 {
			for _, u := range t.Data.Data32 {
				if xproto.Atom(u) == Atoms.WMDeleteWindow {
					win.events <- &event.WindowClose{}
				}
			}
		}

	default:
		log.Printf("unhandled x event: %#v", ev)
	}
}

func (win *Window) sendInput(wi *event.WindowInput) {
	if wi != nil {
		win.events <- wi
	}
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		Atoms.NetWMName,  // property
		Atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

//----------

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

func (win *Window) PutImage(r image.Rectangle) error {
	err := win.WImg.PutImage(r)
	win.events <- &event.WindowPutImageDone{}
	return err
}

func (win *Window) UpdateImageSize() error {
	cookie := xproto.GetGeometry(win.Conn, xproto.Drawable(win.Window))
	geom, err := cookie.Reply()
	if err != nil {
		return err
	}
	r := image.Rect(0, 0, int(geom.Width), int(geom.Height))
	return win.WImg.Resize(r)
}

//----------

func (win *Window) QueryPointer() (image.Point, error) {
	cookie := xproto.QueryPointer(win.Conn, win.Window)
	r, err := cookie.Reply()
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{int(r.WinX), int(r.WinY)}, nil
}

func (win *Window) SetCursor(c event.Cursor) {
	sc := func(c2 uint16) {
		if err := win.Cursors.Set(c2); err != nil {
			log.Print(err)
		}
	}
	switch c {
	case event.NoneCursor, event.DefaultCursor:
		sc(cursorNone)
	case event.PointerCursor:
		sc(xcursor.Hand2)
	case event.BeamCursor:
		sc(xcursor.XTerm)
	case event.WaitCursor:
		sc(xcursor.Watch)
	}
}

//----------

var Atoms struct {
	NetWMName      xproto.Atom
	Utf8String     xproto.Atom
	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom
}

func loadAtoms(conn *xgb.Conn) error {
	m := map[string]*xproto.Atom{
		"_NET_WM_NAME":     &Atoms.NetWMName,
		"UTF8_STRING":      &Atoms.Utf8String,
		"WM_PROTOCOLS":     &Atoms.WMProtocols,
		"WM_DELETE_WINDOW": &Atoms.WMDeleteWindow,
	}
	for name, dst := range m {
		cookie := xproto.InternAtom(conn, false, uint16(len(name)), name)
		r, err := cookie.Reply()
		if err != nil {
			return err
		}
		*dst = r.Atom
	}
	return nil
}
