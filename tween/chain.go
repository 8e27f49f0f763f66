package tween

// A Chain runs its children one after another. Child i owns the half-open
// interval [sum(d[0..i)), sum(d[0..i])) of the chain's clock.
type Chain struct {
	children []Node
	elapsed  float64
	index    int
}

// NewChain creates an empty Chain.
func NewChain() *Chain {
	return new(Chain)
}

// Add appends a child and returns the chain. The chain owns n; adding the
// same node to two composites is not supported.
func (c *Chain) Add(n Node) *Chain {
	if n == nil {
		panic("tween: nil node added to chain")
	}
	c.children = append(c.children, n)
	return c
}

// Elapsed returns the play-head position.
func (c *Chain) Elapsed() float64 {
	return c.elapsed
}

// Duration is the sum of the children's durations.
func (c *Chain) Duration() float64 {
	var total float64
	for _, child := range c.children {
		total += child.Duration()
	}
	return total
}

// IsDone reports whether every child has completed.
func (c *Chain) IsDone() bool {
	return c.index >= len(c.children)
}

// Advance moves the play-head forward by dt, carrying time left over by a
// finished child into the next.
func (c *Chain) Advance(dt float64) error {
	return advance(c, dt)
}

// SeekTo moves the play-head to t without replaying from zero. Children
// before the owner of t are completed, the owner is seeked to its local
// time, and later children are rewound without touching their cells.
func (c *Chain) SeekTo(t float64) {
	if len(c.children) == 0 {
		return
	}

	t = clamp(t, 0, c.Duration())
	last := len(c.children) - 1
	owner := last
	var start float64
	for i, child := range c.children {
		d := child.Duration()
		if i == last || t < start+d {
			owner = i
			break
		}
		start += d
	}

	for i, child := range c.children {
		switch {
		case i < owner:
			child.SeekTo(child.Duration())
		case i == owner:
			child.SeekTo(t - start)
		default:
			child.rewind()
		}
	}

	c.elapsed = t
	c.index = owner
	if c.children[owner].IsDone() {
		c.index++
	}
}

func (c *Chain) step(dt float64) float64 {
	left := dt
	for c.index < len(c.children) {
		child := c.children[c.index]
		left = child.step(left)
		if !child.IsDone() {
			left = 0
			break
		}
		c.index++
	}

	total := c.Duration()
	c.elapsed += dt
	if c.elapsed > total {
		c.elapsed = total
	}
	return left
}

func (c *Chain) rewind() {
	c.elapsed = 0
	c.index = 0
	for _, child := range c.children {
		child.rewind()
	}
}
