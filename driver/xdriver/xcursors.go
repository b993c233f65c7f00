package xdriver

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Restores the parent window cursor.
const cursorNone = 0xffff

// Cursors from the standard X cursor font, created lazily and cached.
type Cursors struct {
	conn   *xgb.Conn
	win    xproto.Window
	font   xproto.Font
	cache  map[uint16]xproto.Cursor
	loaded bool
}

func NewCursors(conn *xgb.Conn, win xproto.Window) (*Cursors, error) {
	cs := &Cursors{conn: conn, win: win, cache: map[uint16]xproto.Cursor{}}
	return cs, nil
}

func (cs *Cursors) openFont() error {
	if cs.loaded {
		return nil
	}
	font, err := xproto.NewFontId(cs.conn)
	if err != nil {
		return err
	}
	name := "cursor"
	err = xproto.OpenFontChecked(cs.conn, font, uint16(len(name)), name).Check()
	if err != nil {
		return err
	}
	cs.font = font
	cs.loaded = true
	return nil
}

func (cs *Cursors) Set(c uint16) error {
	if c == cursorNone {
		return cs.setWindowCursor(xproto.CursorNone)
	}
	cur, ok := cs.cache[c]
	if !ok {
		var err error
		cur, err = cs.create(c)
		if err != nil {
			return err
		}
		cs.cache[c] = cur
	}
	return cs.setWindowCursor(cur)
}

func (cs *Cursors) create(c uint16) (xproto.Cursor, error) {
	if err := cs.openFont(); err != nil {
		return 0, err
	}
	cur, err := xproto.NewCursorId(cs.conn)
	if err != nil {
		return 0, err
	}
	// the mask glyph follows the shape glyph in the cursor font
	err = xproto.CreateGlyphCursorChecked(
		cs.conn, cur,
		cs.font, cs.font,
		c, c+1,
		0, 0, 0,
		0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, err
	}
	return cur, nil
}

func (cs *Cursors) setWindowCursor(cur xproto.Cursor) error {
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(cur)}
	return xproto.ChangeWindowAttributesChecked(cs.conn, cs.win, mask, values).Check()
}
