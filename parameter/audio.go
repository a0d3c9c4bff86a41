package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effect durations
const (
	SoundCatchDuration     = 120 * time.Millisecond
	SoundCoinDuration      = 180 * time.Millisecond
	SoundBreakDuration     = 300 * time.Millisecond
	SoundRepairDuration    = 150 * time.Millisecond
	SoundExplosionDuration = 450 * time.Millisecond
	SoundErrorDuration     = 150 * time.Millisecond
)
