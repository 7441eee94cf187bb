// Package audio synthesizes the game's sound effects and plays them through the speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Laser shot shape.
const (
	laserDuration = 120 * time.Millisecond
	laserFromHz   = 1400.0
	laserToHz     = 300.0
)

// Player plays sound effects through a shared mixer.
// A Player whose Init failed or was never called stays silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewPlayer creates a player. volume is a linear gain in (0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close silences every playing effect.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// Fire plays the laser shot of the player's ship.
func (p *Player) Fire() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(Laser(sampleRate), p.volume))
	speaker.Unlock()
}

// Nop is a silent cue for muted sessions and remote players.
type Nop struct{}

func (Nop) Fire() {}

// withVolume scales a streamer by a linear gain.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// laser is a square wave sweeping down in pitch with an exponential decay.
type laser struct {
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// Laser returns a finite streamer with the sound of a laser shot.
func Laser(rate beep.SampleRate) beep.Streamer {
	return &laser{rate: rate, total: rate.N(laserDuration)}
}

func (l *laser) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if l.position >= l.total {
			return i, i > 0
		}
		progress := float64(l.position) / float64(l.total)
		freq := laserFromHz + (laserToHz-laserFromHz)*progress

		val := 0.25
		if l.phase >= 0.5 {
			val = -0.25
		}
		val *= math.Exp(-4 * progress)

		samples[i][0] = val
		samples[i][1] = val

		l.phase += freq / float64(l.rate)
		l.phase -= math.Floor(l.phase)
		l.position++
	}
	return len(samples), true
}

func (l *laser) Err() error { return nil }
