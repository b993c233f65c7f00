package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"scrollview/ui"
	"scrollview/util/uiutil/event"
)

var flags struct {
	styleFilename string
	lines         int
}

func main() {
	log.SetFlags(log.Lshortfile)

	flag.StringVar(&flags.styleFilename, "style", "", "scrollbar style toml filename, watched for changes")
	flag.IntVar(&flags.lines, "lines", 500, "demo text line count")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	events := make(chan interface{}, 64)
	u, err := ui.NewUI(events, "scrollview")
	if err != nil {
		return err
	}
	defer u.Close()

	u.Root.SetText(demoText(flags.lines))

	if flags.styleFilename != "" {
		if err := ui.ApplyStyleConf(flags.styleFilename, u); err != nil {
			return err
		}
		w, err := ui.WatchStyleConf(flags.styleFilename, u)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	for ev := range events {
		switch ev.(type) {
		case *event.WindowClose:
			return nil
		default:
			u.HandleEvent(ev)
		}
		u.PaintIfTime()
	}
	return nil
}

func demoText(n int) string {
	b := &strings.Builder{}
	for i := 0; i < n; i++ {
		fmt.Fprintf(b, "%4d: the quick brown fox jumps over the lazy dog, round %d\n", i, i)
	}
	return b.String()
}
