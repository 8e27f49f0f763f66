package tween

// A Multiplex runs its channels in parallel on one clock. Channels shorter
// than the multiplex hold their end value once the clock passes them.
type Multiplex struct {
	channels []Node
	elapsed  float64
}

// NewMultiplex creates an empty Multiplex.
func NewMultiplex() *Multiplex {
	return new(Multiplex)
}

// AddChannel appends a channel and returns the multiplex.
func (m *Multiplex) AddChannel(n Node) *Multiplex {
	if n == nil {
		panic("tween: nil node added to multiplex")
	}
	m.channels = append(m.channels, n)
	return m
}

// Duration is the longest channel duration.
func (m *Multiplex) Duration() float64 {
	var longest float64
	for _, ch := range m.channels {
		if d := ch.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// IsDone reports whether every channel has completed.
func (m *Multiplex) IsDone() bool {
	for _, ch := range m.channels {
		if !ch.IsDone() {
			return false
		}
	}
	return true
}

// Advance moves every channel forward by dt.
func (m *Multiplex) Advance(dt float64) error {
	return advance(m, dt)
}

// SeekTo seeks every channel to the same t.
func (m *Multiplex) SeekTo(t float64) {
	t = clamp(t, 0, m.Duration())
	for _, ch := range m.channels {
		ch.SeekTo(t)
	}
	m.elapsed = t
}

func (m *Multiplex) step(dt float64) float64 {
	for _, ch := range m.channels {
		ch.step(dt)
	}

	var left float64
	if remaining := m.Duration() - m.elapsed; dt >= remaining {
		m.elapsed += remaining
		left = dt - remaining
	} else {
		m.elapsed += dt
	}
	return left
}

func (m *Multiplex) rewind() {
	m.elapsed = 0
	for _, ch := range m.channels {
		ch.rewind()
	}
}
