package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// App is what the worker demo needs from the application.
type App interface {
	StartWorker() bool
	StopWorker() error
	SendCommand(literal string) error
	WorkerRunning() bool
}

// Ticker is implemented by demos driven by the periodic clock.
type Ticker interface {
	Tick()
}

// TextColor is the colour of every demo label at full opacity.
var TextColor color.Color = color.White

func newBigText(text string, size float32) *canvas.Text {
	t := canvas.NewText(text, TextColor)
	t.TextSize = size
	t.Alignment = fyne.TextAlignCenter
	return t
}

// CreateMainWindow creates the window that hosts one demo.
func CreateMainWindow(fyneApp fyne.App, title string, content fyne.CanvasObject, size fyne.Size) fyne.Window {
	if name := fyneApp.Metadata().Name; name != "" {
		title = name + " - " + title
	}
	w := fyneApp.NewWindow(title)
	w.SetContent(content)
	w.Resize(size)
	w.SetMaster()
	return w
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
