// Package audio plays short synthesized cues for game events. Cues go
// through the speaker's internal mixer, so overlapping ones blend.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/warrenfall/event"
)

const sampleRate = beep.SampleRate(44100)

// cueDef binds one event type to a tone
type cueDef struct {
	freq     float64
	duration time.Duration
}

var cues = map[event.EventType]cueDef{
	event.EventShot:     {freq: 660, duration: 40 * time.Millisecond},
	event.EventDamaged:  {freq: 220, duration: 90 * time.Millisecond},
	event.EventKill:     {freq: 880, duration: 70 * time.Millisecond},
	event.EventDodge:    {freq: 520, duration: 50 * time.Millisecond},
	event.EventGameOver: {freq: 110, duration: 600 * time.Millisecond},
}

// Player owns the speaker. A failed init leaves it muted and the game
// runs on without sound.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker unless muted up front
func NewPlayer(mute bool) (*Player, error) {
	p := &Player{}
	if mute {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("speaker init: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Cue plays the tone bound to the event type, if any
func (p *Player) Cue(t event.EventType) {
	if !p.enabled {
		return
	}
	def, ok := cues[t]
	if !ok {
		return
	}
	tone, err := generators.SineTone(sampleRate, def.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(def.duration), tone))
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
