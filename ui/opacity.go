package ui

import (
	"UIDemos/i18n"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// OpacityDemo hides and shows a label by its opacity, so the layout never
// moves, and counts the ticks.
type OpacityDemo struct {
	grid        *fyne.Container
	hello       *canvas.Text
	counterText *canvas.Text
	opacity     float64
	counter     int
}

func NewOpacityDemo(fontSize float32) *OpacityDemo {
	d := &OpacityDemo{opacity: 1}
	d.hello = newBigText(i18n.T("Hello!"), fontSize)
	d.counterText = newBigText(strconv.Itoa(d.counter), fontSize)
	d.grid = container.NewGridWithColumns(2,
		newBigText(i18n.T("Text:"), fontSize),
		d.hello,
		newBigText(i18n.T("Counter:"), fontSize),
		d.counterText,
	)
	return d
}

func (d *OpacityDemo) Content() fyne.CanvasObject {
	return d.grid
}

// Tick flips the label between fully opaque and fully transparent and
// advances the counter.
func (d *OpacityDemo) Tick() {
	if d.opacity > 0 {
		d.opacity = 0
	} else {
		d.opacity = 1
	}
	d.hello.Color = withAlpha(TextColor, uint8(d.opacity*255))
	d.hello.Refresh()

	d.counter++
	d.counterText.Text = strconv.Itoa(d.counter)
	d.counterText.Refresh()
}

func (d *OpacityDemo) Opacity() float64 {
	return d.opacity
}

func (d *OpacityDemo) Counter() int {
	return d.counter
}
