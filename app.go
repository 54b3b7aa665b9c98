// Package main contains the application wiring and the AppManager which
// owns the state of the running demo.
//
// Maintenance notes / tips:
//   - Concurrency model: widgets are only touched on the Fyne main
//     goroutine. The periodic clock (demos 1 and 2) and the mailbox pump
//     (demo 3) reach it through the dispatch.Runner, which is fyne.Do in the
//     application.
//   - The worker never sees a widget. It posts dispatch.Update values into
//     the mailbox and reads commands from the queue owned by the controller.
//   - OnStopped may run twice (window close and app stop); every step in it
//     is idempotent.
package main

import (
	"UIDemos/audio"
	"UIDemos/clock"
	"UIDemos/config"
	"UIDemos/control"
	"UIDemos/dispatch"
	"UIDemos/ui"
	"UIDemos/worker"
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	settings config.Settings
	run      dispatch.Runner
	player   *audio.Player

	ctx    context.Context
	cancel context.CancelFunc

	// demos 1 and 2
	ticker   ui.Ticker
	schedule *clock.Schedule

	// demo 3
	mailbox    *dispatch.Mailbox
	controller *worker.Controller
	workerDemo *ui.WorkerDemo

	content fyne.CanvasObject
}

// NewAppManager creates the state for the configured demo. player may be nil.
func NewAppManager(st config.Settings, run dispatch.Runner, player *audio.Player) *AppManager {
	a := &AppManager{settings: st, run: run, player: player}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	switch st.Demo {
	case config.DemoVisibility:
		d := ui.NewVisibilityDemo(st.FontSize)
		a.ticker, a.content = d, d.Content()
	case config.DemoOpacity:
		d := ui.NewOpacityDemo(st.FontSize)
		a.ticker, a.content = d, d.Content()
	default:
		a.mailbox = dispatch.NewMailbox()
		a.controller = worker.NewController(a.mailbox, st.StopTimeout, worker.WithInterval(st.Tick))
		a.workerDemo = ui.NewWorkerDemo(a, st.FontSize)
		a.content = a.workerDemo.Content()
	}
	return a
}

// Content returns the root object of the demo.
func (a *AppManager) Content() fyne.CanvasObject {
	return a.content
}

// OnStarted runs once the window is shown.
func (a *AppManager) OnStarted() {
	log.Printf("Started %s demo.", a.settings.Demo)
	if a.ticker != nil {
		a.schedule = clock.ScheduleInterval(a.ctx, a.settings.Tick, a.run, a.onTick)
		return
	}
	go a.mailbox.Pump(a.ctx, a.run, a.applyUpdate)
}

// OnStopped runs when the application is closing.
func (a *AppManager) OnStopped() {
	if a.workerDemo != nil {
		a.workerDemo.OnStop()
	}
	if a.schedule != nil {
		a.schedule.Cancel()
	}
	a.cancel()
}

func (a *AppManager) onTick(time.Duration) {
	a.ticker.Tick()
	a.player.Click()
}

func (a *AppManager) applyUpdate(u dispatch.Update) {
	a.workerDemo.ApplyUpdate(u)
	a.player.Click()
}

// StartWorker starts the background counter unless it is already running.
func (a *AppManager) StartWorker() bool {
	return a.controller.Start()
}

// StopWorker stops the background counter if it is running.
func (a *AppManager) StopWorker() error {
	return a.controller.Stop()
}

// SendCommand parses a command literal ("10x", "die") and forwards it to
// the running worker.
func (a *AppManager) SendCommand(literal string) error {
	cmd, err := control.ParseCommand(literal)
	if err != nil {
		return err
	}
	a.controller.Send(cmd)
	return nil
}

// WorkerRunning reports whether the background counter is running.
func (a *AppManager) WorkerRunning() bool {
	return a.controller.Running()
}
