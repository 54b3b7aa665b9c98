// Package audio plays the short click that accompanies counter updates.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate beep.SampleRate = 44100

	clickFreq     = 880.0
	clickDuration = 40 * time.Millisecond
)

// Player renders a pre-generated click into the speaker. A Player whose
// speaker failed to initialise is silent.
type Player struct {
	mu     sync.Mutex
	click  *beep.Buffer
	output func(beep.Streamer)
}

// NewPlayer initialises the speaker and generates the click. Failures are
// logged and leave the player disabled.
func NewPlayer() *Player {
	p := &Player{}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return p
	}
	p.output = func(s beep.Streamer) { speaker.Play(s) }
	p.click = newClick()
	return p
}

// newClick renders a short sine tone into a buffer.
func newClick() *beep.Buffer {
	tone, err := generators.SineTone(SampleRate, clickFreq)
	if err != nil {
		log.Printf("Failed to generate click tone: %v", err)
		return nil
	}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(SampleRate.N(clickDuration), tone))
	return buf
}

// Enabled reports whether the player can produce sound.
func (p *Player) Enabled() bool {
	return p != nil && p.output != nil && p.click != nil
}

// Click plays the click once.
func (p *Player) Click() {
	if !p.Enabled() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.output(p.click.Streamer(0, p.click.Len()))
}
