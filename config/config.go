// Package config loads demo settings from the environment and an optional
// .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Demo selects which screen the application shows.
type Demo int

const (
	DemoVisibility Demo = iota + 1
	DemoOpacity
	DemoWorker
)

func (d Demo) String() string {
	switch d {
	case DemoVisibility:
		return "visibility"
	case DemoOpacity:
		return "opacity"
	case DemoWorker:
		return "worker"
	}
	return "unknown"
}

// ParseDemo accepts a demo number or name.
func ParseDemo(s string) (Demo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "visibility":
		return DemoVisibility, nil
	case "2", "opacity":
		return DemoOpacity, nil
	case "3", "worker":
		return DemoWorker, nil
	}
	return 0, errors.Errorf("unknown demo %q", s)
}

// Settings keeps all configuration options.
type Settings struct {
	Demo        Demo
	Tick        time.Duration
	StopTimeout time.Duration
	// StopTimeoutSet is true when StopTimeout was configured explicitly
	// rather than derived from Tick.
	StopTimeoutSet bool
	FontSize       float32
	WindowWidth    float32
	WindowHeight   float32
	TickSound      bool
}

// stopTimeoutTicks is the default stop timeout in ticks.
const stopTimeoutTicks = 3

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Demo:         DemoWorker,
		Tick:         time.Second,
		StopTimeout:  stopTimeoutTicks * time.Second,
		FontSize:     72,
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// SetTick changes the tick interval. Unless the stop timeout was set
// explicitly it follows the tick, so Stop always waits longer than one tick.
func (s *Settings) SetTick(d time.Duration) {
	s.Tick = d
	if !s.StopTimeoutSet {
		s.StopTimeout = stopTimeoutTicks * d
	}
}

// Load reads a .env file if present and then the environment, supporting
// both UPPER_CASE and lower_case keys.
func Load() Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.Printf("Failed to read .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds settings from a lookup function, falling back to Defaults
// for missing or malformed values.
func FromEnv(getenv func(string) string) Settings {
	get := func(keys []string, def string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				return v
			}
		}
		return def
	}
	getDuration := func(keys []string, def time.Duration) time.Duration {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			return d
		}
		log.Printf("Ignoring invalid duration %s=%q", keys[0], s)
		return def
	}
	getFloat := func(keys []string, def float32) float32 {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if f, err := strconv.ParseFloat(s, 32); err == nil && f > 0 {
			return float32(f)
		}
		log.Printf("Ignoring invalid number %s=%q", keys[0], s)
		return def
	}
	getBool := func(keys []string, def bool) bool {
		s := strings.ToLower(get(keys, ""))
		if s == "" {
			return def
		}
		return s == "1" || s == "true" || s == "yes" || s == "on"
	}

	st := Defaults()
	if s := get([]string{"UIDEMOS_DEMO", "uidemos_demo"}, ""); s != "" {
		if d, err := ParseDemo(s); err == nil {
			st.Demo = d
		} else {
			log.Printf("Ignoring UIDEMOS_DEMO: %v", err)
		}
	}
	st.SetTick(getDuration([]string{"UIDEMOS_TICK", "uidemos_tick"}, st.Tick))
	if d := getDuration([]string{"UIDEMOS_STOP_TIMEOUT", "uidemos_stop_timeout"}, 0); d > 0 {
		st.StopTimeout = d
		st.StopTimeoutSet = true
	}
	st.FontSize = getFloat([]string{"UIDEMOS_FONT_SIZE", "uidemos_font_size"}, st.FontSize)
	st.WindowWidth = getFloat([]string{"UIDEMOS_WIDTH", "uidemos_width"}, st.WindowWidth)
	st.WindowHeight = getFloat([]string{"UIDEMOS_HEIGHT", "uidemos_height"}, st.WindowHeight)
	st.TickSound = getBool([]string{"UIDEMOS_TICK_SOUND", "uidemos_tick_sound"}, st.TickSound)
	return st
}
