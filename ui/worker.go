package ui

import (
	"UIDemos/dispatch"
	"UIDemos/i18n"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// WorkerDemo drives a background counter with a Start/Stop button and a 10x
// button, and shows the counter the worker publishes.
type WorkerDemo struct {
	app         App
	startStop   *widget.Button
	tenX        *widget.Button
	counterText *canvas.Text
	grid        *fyne.Container
}

func NewWorkerDemo(a App, fontSize float32) *WorkerDemo {
	d := &WorkerDemo{app: a}
	d.startStop = widget.NewButton(i18n.T("Start"), d.toggle)
	d.tenX = widget.NewButton("10x", func() { d.send("10x") })
	d.tenX.Disable()
	d.counterText = newBigText("0", fontSize)

	d.grid = container.NewGridWithColumns(2,
		d.startStop,
		d.tenX,
		newBigText(i18n.T("Counter:"), fontSize),
		d.counterText,
	)
	return d
}

func (d *WorkerDemo) Content() fyne.CanvasObject {
	return d.grid
}

func (d *WorkerDemo) toggle() {
	if !d.app.WorkerRunning() {
		d.startStop.SetText(i18n.T("Stop"))
		d.tenX.Enable()
		d.app.StartWorker()
		return
	}
	d.startStop.SetText(i18n.T("Start"))
	d.tenX.Disable()
	if err := d.app.StopWorker(); err != nil {
		log.Printf("Stopping worker: %v", err)
	}
}

func (d *WorkerDemo) send(literal string) {
	if err := d.app.SendCommand(literal); err != nil {
		log.Printf("Sending %s: %v", literal, err)
	}
}

// ApplyUpdate shows a counter value published by the worker. It must run on
// the UI thread.
func (d *WorkerDemo) ApplyUpdate(u dispatch.Update) {
	d.counterText.Text = strconv.FormatInt(u.Counter, 10)
	d.counterText.Refresh()
}

// CounterText returns the text currently shown for the counter.
func (d *WorkerDemo) CounterText() string {
	return d.counterText.Text
}

// OnStop shuts the worker down when the application closes.
func (d *WorkerDemo) OnStop() {
	if err := d.app.StopWorker(); err != nil {
		log.Printf("Stopping worker on exit: %v", err)
	}
}
