package audio

import (
	"math"
	"math/rand"
	"time"
)

// Waveform types
const (
	WaveSine = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one segment of an effect: a waveform sweeping from From to To Hz.
type Tone struct {
	Wave     int
	From, To float64
	Duration time.Duration
	Volume   float64
}

var effects = map[string][]Tone{
	"shoot": {
		{Wave: WaveSquare, From: 880, To: 440, Duration: 80 * time.Millisecond, Volume: 0.15},
	},
	"hit": {
		{Wave: WaveNoise, Duration: 60 * time.Millisecond, Volume: 0.2},
	},
	"enemy_defeated": {
		{Wave: WaveSaw, From: 440, To: 110, Duration: 200 * time.Millisecond, Volume: 0.2},
	},
	"game_over": {
		{Wave: WaveSquare, From: 392, To: 392, Duration: 200 * time.Millisecond, Volume: 0.15},
		{Wave: WaveSquare, From: 330, To: 330, Duration: 200 * time.Millisecond, Volume: 0.15},
		{Wave: WaveSquare, From: 262, To: 196, Duration: 400 * time.Millisecond, Volume: 0.15},
	},
	"victory": {
		{Wave: WaveSine, From: 523, To: 523, Duration: 120 * time.Millisecond, Volume: 0.25},
		{Wave: WaveSine, From: 659, To: 659, Duration: 120 * time.Millisecond, Volume: 0.25},
		{Wave: WaveSine, From: 784, To: 784, Duration: 120 * time.Millisecond, Volume: 0.25},
		{Wave: WaveSine, From: 1047, To: 1047, Duration: 300 * time.Millisecond, Volume: 0.25},
	},
	"click": {
		{Wave: WaveSine, From: 1200, To: 1200, Duration: 30 * time.Millisecond, Volume: 0.2},
	},
}

// envelope edge length in seconds, avoids clicks at segment borders
const fadeSeconds = 0.005

// synth generates a tone sequence and then silence.
type synth struct {
	tones []Tone
	index int     // Current tone
	pos   int     // Sample within the current tone
	phase float64 // Oscillator phase in [0, 1)
	noise *rand.Rand
}

func newSynth(tones []Tone) *synth {
	return &synth{
		tones: tones,
		noise: rand.New(rand.NewSource(1)),
	}
}

// Stream fills samples; it never ends on its own, beep.Take bounds it.
func (s *synth) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.next()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *synth) Err() error {
	return nil
}

func (s *synth) next() float64 {
	for s.index < len(s.tones) {
		t := s.tones[s.index]
		length := sampleRate.N(t.Duration)
		if s.pos >= length {
			s.index++
			s.pos = 0
			continue
		}

		progress := float64(s.pos) / float64(length)
		freq := t.From + (t.To-t.From)*progress
		v := s.wave(t.Wave) * t.Volume * envelope(s.pos, length)

		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
		return v
	}
	return 0
}

func (s *synth) wave(kind int) float64 {
	switch kind {
	case WaveSquare:
		if s.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (s.phase - 0.5)
	case WaveNoise:
		return s.noise.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

// envelope ramps volume in and out at the edges of a tone.
func envelope(pos, length int) float64 {
	fade := fadeSeconds * float64(sampleRate)
	edge := int(fade)
	if edge <= 0 || length <= 2*edge {
		return 1
	}
	switch {
	case pos < edge:
		return float64(pos) / float64(edge)
	case pos >= length-edge:
		return float64(length-pos) / float64(edge)
	default:
		return 1
	}
}
