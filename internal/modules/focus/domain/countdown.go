package domain

import (
	"fmt"
	"time"
)

// Countdown is the pomodoro timer. It is advanced by one-second ticks and
// ignores ticks while paused.
type Countdown struct {
	length    time.Duration
	remaining time.Duration
	running   bool
}

func NewCountdown(minutes int) Countdown {
	c := Countdown{}
	c.Reset(minutes)
	return c
}

func (c *Countdown) Start() {
	if c.remaining > 0 {
		c.running = true
	}
}

func (c *Countdown) Pause() { c.running = false }

// Reset pauses and rewinds to minutes, falling back to the default length
// for non-positive values.
func (c *Countdown) Reset(minutes int) {
	if minutes <= 0 {
		minutes = DefaultPlannedMinutes
	}
	c.length = time.Duration(minutes) * time.Minute
	c.remaining = c.length
	c.running = false
}

// Tick consumes one second and reports whether the countdown just finished.
// Finishing pauses the countdown.
func (c *Countdown) Tick() bool {
	return c.Elapse(time.Second)
}

// Elapse consumes d at once, used to catch up with a session started
// elsewhere.
func (c *Countdown) Elapse(d time.Duration) bool {
	if !c.running || d <= 0 {
		return false
	}
	c.remaining -= d
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

func (c Countdown) Remaining() time.Duration { return c.remaining }
func (c Countdown) Running() bool            { return c.running }
func (c Countdown) Length() time.Duration    { return c.length }

// Fraction is the elapsed share of the countdown, 0 to 1.
func (c Countdown) Fraction() float64 {
	if c.length <= 0 {
		return 0
	}
	return float64(c.length-c.remaining) / float64(c.length)
}

// Clock renders the remaining time as MM:SS.
func (c Countdown) Clock() string {
	secs := int(c.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
