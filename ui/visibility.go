package ui

import (
	"UIDemos/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// VisibilityDemo shows a label that is removed from and re-added to a grid
// on every tick.
type VisibilityDemo struct {
	grid     *fyne.Container
	hello    *canvas.Text // nil while detached
	fontSize float32
}

func NewVisibilityDemo(fontSize float32) *VisibilityDemo {
	d := &VisibilityDemo{fontSize: fontSize}
	d.hello = newBigText(i18n.T("Hello!"), fontSize)
	d.grid = container.NewGridWithColumns(2,
		newBigText(i18n.T("Text:"), fontSize),
		d.hello,
	)
	return d
}

func (d *VisibilityDemo) Content() fyne.CanvasObject {
	return d.grid
}

// Tick detaches the label if it is attached, otherwise attaches a new one.
func (d *VisibilityDemo) Tick() {
	if d.hello == nil {
		d.hello = newBigText(i18n.T("Hello!"), d.fontSize)
		d.grid.Add(d.hello)
		return
	}
	d.grid.Remove(d.hello)
	d.hello = nil
}

// Visible reports whether the label is currently in the grid.
func (d *VisibilityDemo) Visible() bool {
	return d.hello != nil
}
