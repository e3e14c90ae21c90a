package parameter

import (
	"time"
)

// Settle animation
const (
	// SettleDuration is the fixed length of the release animation
	SettleDuration = 1 * time.Second

	// SpringDampingRatio slightly below critical gives a barely visible overshoot
	SpringDampingRatio = 0.98

	// SpringSettleEpsilon is the envelope amplitude remaining at SettleDuration
	SpringSettleEpsilon = 0.001

	// FrameRate drives both the render ticker and the spring sub-step
	FrameRate = 60
)

// Release velocity estimation
const (
	// VelocityWindow bounds how far back pointer samples contribute
	VelocityWindow = 100 * time.Millisecond

	// VelocityStaleAfter zeroes velocity when the pointer rested before release
	VelocityStaleAfter = 80 * time.Millisecond

	// VelocitySampleCap bounds the sample ring
	VelocitySampleCap = 20
)
