package tween

// A Callback is a zero-length node that runs an action when the play-head
// reaches it. It is typically used to reset shared cells before a pass.
type Callback struct {
	action func()
	fired  bool
}

// NewCallback creates a Callback. A nil action does nothing.
func NewCallback(action func()) *Callback {
	c := new(Callback)
	c.action = action
	return c
}

// Advance fires the action if it has not fired since the last rewind.
func (c *Callback) Advance(dt float64) error {
	return advance(c, dt)
}

// SeekTo fires the action. Any t is at or past a zero-length node.
func (c *Callback) SeekTo(float64) {
	c.fire()
}

// IsDone reports whether the action has fired.
func (c *Callback) IsDone() bool {
	return c.fired
}

// Duration is always zero.
func (c *Callback) Duration() float64 {
	return 0
}

func (c *Callback) step(dt float64) float64 {
	if !c.fired {
		c.fire()
	}
	return dt
}

func (c *Callback) rewind() {
	c.fired = false
}

func (c *Callback) fire() {
	if c.action != nil {
		c.action()
	}
	c.fired = true
}
