package main

import (
	"UIDemos/audio"
	"UIDemos/config"
	"UIDemos/dispatch"
	"UIDemos/ui"
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
)

func main() {
	st := config.Load()

	demo := flag.String("demo", "", "demo to show: 1/visibility, 2/opacity, 3/worker")
	tick := flag.Duration("tick", 0, "interval between ticks")
	flag.Parse()

	if *demo != "" {
		d, err := config.ParseDemo(*demo)
		if err != nil {
			log.Fatalf("Invalid -demo: %v", err)
		}
		st.Demo = d
	}
	if *tick > 0 {
		st.SetTick(*tick)
	}

	fyneApp := app.NewWithID("io.uidemos")
	fyneApp.SetIcon(theme.FyneLogo())
	fyneApp.Settings().SetTheme(ui.NewCustomTheme(st.FontSize / 2))

	var player *audio.Player
	if st.TickSound {
		player = audio.NewPlayer()
	}

	a := NewAppManager(st, dispatch.Fyne, player)

	w := ui.CreateMainWindow(fyneApp, st.Demo.String(), a.Content(), fyne.NewSize(st.WindowWidth, st.WindowHeight))

	fyneApp.Lifecycle().SetOnStarted(a.OnStarted)
	fyneApp.Lifecycle().SetOnStopped(a.OnStopped)
	w.SetOnClosed(a.OnStopped)

	w.ShowAndRun()
}
