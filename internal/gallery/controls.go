package gallery

import (
	"sync"
	"time"
)

// DefaultControlsIdle is how long controls stay up without pointer movement.
const DefaultControlsIdle = 3 * time.Second

// Controls tracks whether the viewer's on-screen controls are visible.
//
// They start visible, hide after idle without a Touch, and come back on the
// next Touch. While the current image is loading they are shown regardless.
// Stop cancels the pending timer and must be called on teardown.
type Controls struct {
	mu      sync.Mutex
	idle    time.Duration
	visible bool
	loading bool
	stopped bool
	timer   *time.Timer
	gen     uint64 // bumped on every re-arm so a stale timer cannot hide
}

func NewControls(idle time.Duration) *Controls {
	if idle <= 0 {
		idle = DefaultControlsIdle
	}
	c := &Controls{idle: idle, visible: true}
	c.arm()
	return c
}

// arm starts a fresh idle timer. Caller holds mu, except in NewControls.
func (c *Controls) arm() {
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.idle, func() { c.hide(gen) })
}

func (c *Controls) hide(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.stopped && gen == c.gen {
		c.visible = false
	}
}

// Touch records pointer movement or a viewer transition.
func (c *Controls) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.visible = true
	c.timer.Stop()
	c.arm()
}

// SetLoading flags whether the current image is still being fetched.
func (c *Controls) SetLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

func (c *Controls) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Visible reports whether controls should be drawn right now.
func (c *Controls) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible || c.loading
}

// Stop cancels the idle timer. Further Touch calls are ignored.
func (c *Controls) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.timer.Stop()
}
