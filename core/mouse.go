package core

// MouseTracker turns absolute cursor positions into per-frame deltas.
// The first sample only primes the tracker so startup does not jump.
type MouseTracker struct {
	LastX, LastY float64
	HasSample    bool
}

// Delta returns the movement since the previous sample. dy is positive
// when the cursor moves up the screen.
func (m *MouseTracker) Delta(x, y float64) (dx, dy float32) {
	if !m.HasSample {
		m.LastX, m.LastY = x, y
		m.HasSample = true
		return 0, 0
	}

	dx = float32(x - m.LastX)
	dy = float32(m.LastY - y)
	m.LastX, m.LastY = x, y
	return dx, dy
}

// Reset forgets the last sample, e.g. after the cursor is recaptured.
func (m *MouseTracker) Reset() {
	*m = MouseTracker{}
}
