package driver

import (
	"scrollview/driver/xdriver"
)

func NewWindow() (Window, error) {
	return xdriver.NewWindow()
}
