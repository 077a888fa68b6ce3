package gamemath

// LaunchImpulse returns the velocity handed to a released projectile:
// the drag vector from release back to start, scaled.
func LaunchImpulse(start, release Vec, scale float64) Vec {
	return start.Sub(release).Scale(scale)
}

// WithinRadius reports whether p lies strictly inside the circle at center.
func WithinRadius(p, center Vec, radius float64) bool {
	return p.Dist(center) < radius
}

// Exceeds reports whether speed is strictly above threshold.
// Destruction never fires on an exact match.
func Exceeds(speed, threshold float64) bool {
	return speed > threshold
}

// Countdown subtracts dt from remaining and reports whether it has run out.
// The epsilon absorbs float drift from repeated 1/60 steps.
func Countdown(remaining, dt float64) (float64, bool) {
	remaining -= dt
	if remaining <= 1e-9 {
		return 0, true
	}
	return remaining, false
}
