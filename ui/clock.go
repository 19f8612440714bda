package ui

import "time"

// FrameClock paces a loop to a fixed number of frames per second. A tick
// missed while a frame runs long is dropped, not queued.
type FrameClock struct {
	ticker *time.Ticker
}

func NewFrameClock(fps int) *FrameClock {
	return &FrameClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick boundary.
func (c *FrameClock) Wait() {
	<-c.ticker.C
}

func (c *FrameClock) Stop() {
	c.ticker.Stop()
}
