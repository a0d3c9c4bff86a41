// Package audio synthesizes the game's sound cues with beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gold-miner/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Sound identifies a cue
type Sound int

const (
	SoundCatch Sound = iota
	SoundCoin
	SoundBreak
	SoundRepair
	SoundExplosion
	SoundError
)

func (s Sound) String() string {
	switch s {
	case SoundCatch:
		return "catch"
	case SoundCoin:
		return "coin"
	case SoundBreak:
		return "break"
	case SoundRepair:
		return "repair"
	case SoundExplosion:
		return "explosion"
	case SoundError:
		return "error"
	}
	return "unknown"
}

// SoundManager manages all game audio
// Every Play is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      map[Sound]int
}

// NewSoundManager creates a sound manager; volume is a base 2 offset, 0 is unchanged
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[Sound]int),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Played returns how many times s was requested while enabled
func (sm *SoundManager) Played(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := Cue(s)
	if streamer == nil {
		return
	}
	sm.played[s]++

	vol := &effects.Volume{Streamer: streamer, Base: 2, Volume: sm.volume}
	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}

// Cue builds the finite streamer of a sound, nil for unknown sounds
func Cue(s Sound) beep.Streamer {
	switch s {
	case SoundCatch:
		return take(parameter.SoundCatchDuration, NewSweepGenerator(sampleRate, 660, 990, 0.2))
	case SoundCoin:
		return beep.Seq(
			take(parameter.SoundCoinDuration/2, NewSweepGenerator(sampleRate, 988, 988, 0.2)),
			take(parameter.SoundCoinDuration/2, NewSweepGenerator(sampleRate, 1319, 1319, 0.2)),
		)
	case SoundBreak:
		return take(parameter.SoundBreakDuration, NewNoiseGenerator(sampleRate, 6, 90, 1))
	case SoundRepair:
		return take(parameter.SoundRepairDuration, NewSweepGenerator(sampleRate, 330, 660, 0.15))
	case SoundExplosion:
		return take(parameter.SoundExplosionDuration, NewNoiseGenerator(sampleRate, 4, 55, 7))
	case SoundError:
		return take(parameter.SoundErrorDuration, NewBuzzGenerator(sampleRate, 120))
	}
	return nil
}

func take(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), s)
}
