package application

import (
	"fmt"
	"sync"
)

const DefaultCountdownSeconds = 120

// Countdown is a cosmetic estimate shown while a generation runs. Reaching
// zero has no effect on the request.
type Countdown struct {
	mu        sync.Mutex
	remaining int
}

func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{remaining: seconds}
}

// Tick consumes one second and returns what is left, never below zero.
func (c *Countdown) Tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) String() string {
	return FormatCountdown(c.Remaining())
}

// FormatCountdown renders seconds as m:ss.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
