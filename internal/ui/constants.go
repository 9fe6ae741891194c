package ui

import "fyne.io/fyne/v2"

// Window metrics
const (
	WindowWidth  = 960
	WindowHeight = 720

	ToastWidth  = 320
	ToastMargin = 16
)

// DefaultWindowSize is the initial window size
var DefaultWindowSize = fyne.NewSize(WindowWidth, WindowHeight)
