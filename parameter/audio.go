package parameter

import (
	"time"
)

// Settle cue
const (
	AudioSampleRate = 44100

	SnapSoundDuration = 90 * time.Millisecond
	SnapSoundAttack   = 5 * time.Millisecond
	SnapSoundRelease  = 60 * time.Millisecond

	// Left edge lands lower, right edge higher
	SnapToneLeft  = 523.25 // C5
	SnapToneRight = 659.25 // E5

	// SnapOvertoneRatio is the second note interval (a fifth)
	SnapOvertoneRatio = 1.5

	DefaultVolume = 0.4
)
