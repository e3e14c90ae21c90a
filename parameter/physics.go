package parameter

// Release projection
const (
	// VelocityLimit caps each release velocity component, points/second
	VelocityLimit = 800.0

	// VelocityNormalization converts points/second to points/millisecond for decay projection
	VelocityNormalization = 1000.0

	// DecelerationRateNormal matches the standard scroll view deceleration per millisecond
	DecelerationRateNormal = 0.998

	// DecelerationRateFast matches the fast scroll view deceleration per millisecond
	DecelerationRateFast = 0.99
)

// Deceleration names accepted by configuration
const (
	DecelerationNormal = "normal"
	DecelerationFast   = "fast"
)

// DecelerationRate resolves a configured name, unknown names fall back to normal
func DecelerationRate(name string) float64 {
	if name == DecelerationFast {
		return DecelerationRateFast
	}
	return DecelerationRateNormal
}
