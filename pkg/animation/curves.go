package animation

// LinearCurve passes progress through unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut decelerates toward the end of the animation.
func EaseOut(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv
}

// EaseInOut accelerates through the midpoint then decelerates.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	inv := -2*t + 2
	return 1 - inv*inv/2
}
