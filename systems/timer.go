package systems

// Interval is a periodic timer driven by simulated time.
type Interval struct {
	Period  float64 // Seconds between firings; <= 0 never fires
	elapsed float64
}

// Advance adds dt seconds and returns how many periods completed.
func (iv *Interval) Advance(dt float64) int {
	if iv.Period <= 0 {
		return 0
	}
	iv.elapsed += dt
	fired := 0
	for iv.elapsed >= iv.Period {
		iv.elapsed -= iv.Period
		fired++
	}
	return fired
}

// Reset restarts the current period.
func (iv *Interval) Reset() {
	iv.elapsed = 0
}
