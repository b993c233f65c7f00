package ui

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"scrollview/util/uiutil/widget"
)

// Scrollbar style configuration file (toml). The file can be watched so that
// edits apply to the running UI without a restart.
//
//	[scrollbar]
//	color = "#000000b3"
//	rounded = true
//	thickness = 10
type StyleConf struct {
	Scrollbar struct {
		Color          string `toml:"color"` // "#rrggbb" or "#rrggbbaa"
		Rounded        bool   `toml:"rounded"`
		Hidden         bool   `toml:"hidden"`
		Thickness      int    `toml:"thickness"`
		EdgeWidth      int    `toml:"edge_width"`
		PropagateWheel bool   `toml:"propagate_wheel"`
		AxisSwap       bool   `toml:"axis_swap"`
	} `toml:"scrollbar"`
}

func ReadStyleConf(filename string) (*StyleConf, error) {
	sc := &StyleConf{}
	sc.Scrollbar.Thickness = 10
	if _, err := toml.DecodeFile(filename, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// The scroll commands that bring a scroll view to this configuration.
func (sc *StyleConf) Commands() ([]widget.ScrollCommand, error) {
	s := sc.Scrollbar
	cmds := []widget.ScrollCommand{
		widget.SetHidden{Hidden: s.Hidden},
		widget.SetBarRounded{Rounded: s.Rounded},
		widget.SetBarThickness{Thickness: s.Thickness},
		widget.SetBarEdgeWidth{Width: s.EdgeWidth},
		widget.SetPropagateWheel{Propagate: s.PropagateWheel},
		widget.SetAxisSwap{Swap: s.AxisSwap},
	}
	if s.Color != "" {
		c, err := parseHexColor(s.Color)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, widget.SetBarColor{Color: c})
	}
	return cmds, nil
}

func parseHexColor(s string) (color.Color, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return nil, fmt.Errorf("bad color: %q", s)
	}
	u, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("bad color: %q", s)
	}
	if len(s) == 7 {
		return color.NRGBA{uint8(u >> 16), uint8(u >> 8), uint8(u), 255}, nil
	}
	return color.NRGBA{uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)}, nil
}

//----------

// Loads the conf file and applies it to the UI's scroll view.
func ApplyStyleConf(filename string, ui *UI) error {
	sc, err := ReadStyleConf(filename)
	if err != nil {
		return err
	}
	cmds, err := sc.Commands()
	if err != nil {
		return err
	}
	ui.RunOnUIThread(func() {
		ui.Root.ScrollView.Exec(cmds...)
		ui.RequestPaint()
	})
	return nil
}

// Watches the conf file, re-applying it on writes. Close the returned watcher
// to stop.
func WatchStyleConf(filename string, ui *UI) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filename); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				// some editors replace the file (create+rename)
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := ApplyStyleConf(filename, ui); err != nil {
					log.Print(err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Print(err)
			}
		}
	}()
	return w, nil
}
