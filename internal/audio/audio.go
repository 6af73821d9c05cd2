// Package audio synthesizes the game's sound effects with beep.
// Audio is optional: when the output device cannot be opened the player
// stays silent and the game runs unchanged.
package audio

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays named effects through a shared mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *log.Logger
}

// New creates a player. Call Init before sounds become audible.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer: &beep.Mixer{},
		log:   logger,
	}
}

// Init opens the speaker. On error the player stays usable but silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the named effect and reports whether the name is known.
// Known effects are accepted silently while the speaker is closed.
func (p *Player) Play(name string) bool {
	tones, ok := effects[name]
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return true
	}

	speaker.Lock()
	p.mixer.Add(effectStreamer(tones))
	speaker.Unlock()
	return true
}

// Close stops every playing effect.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	p.log.Debug("audio closed")
}

// Known reports whether an effect with this name exists.
func Known(name string) bool {
	_, ok := effects[name]
	return ok
}

// Names lists the available effects in sorted order.
func Names() []string {
	names := make([]string, 0, len(effects))
	for n := range effects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// effectStreamer renders a tone sequence, cut to its exact length.
func effectStreamer(tones []Tone) beep.Streamer {
	var total time.Duration
	for _, t := range tones {
		total += t.Duration
	}
	return beep.Take(sampleRate.N(total), newSynth(tones))
}
