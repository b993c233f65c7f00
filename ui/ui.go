package ui

import (
	"scrollview/util/uiutil"
)

type UI struct {
	*uiutil.BasicUI
	Root *Root
}

func NewUI(events chan interface{}, winName string) (*UI, error) {
	ui := &UI{}
	ui.Root = NewRoot(ui)

	bui, err := uiutil.NewBasicUI(events, winName, ui.Root)
	if err != nil {
		return nil, err
	}
	ui.BasicUI = bui

	return ui, nil
}
