package controller

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

type tracker struct {
	stop chan struct{}
	done chan struct{}
}

// startTracking polls the active order now and then every interval, until
// the tracking screen is left or stopTracking is called. The loop checks
// its stop signal between polls and never interrupts a request in flight.
func (c *Controller) startTracking(ctx context.Context) {
	c.stopTracking()

	t := &tracker{stop: make(chan struct{}), done: make(chan struct{})}
	c.mu.Lock()
	c.tracking = t
	c.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer close(t.done)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			if !c.stillTracking(t) {
				return
			}
			c.PollOrder(ctx)

			select {
			case <-t.stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

func (c *Controller) stillTracking(t *tracker) bool {
	select {
	case <-t.stop:
		return false
	default:
	}
	return c.screen.Get() == models.ScreenMyOrder
}

// stopTracking signals the polling loop to exit and returns a channel that
// is closed once it has. The channel is already closed when nothing runs.
func (c *Controller) stopTracking() <-chan struct{} {
	c.mu.Lock()
	t := c.tracking
	c.tracking = nil
	c.mu.Unlock()

	if t == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	close(t.stop)
	return t.done
}

// Tracking reports whether the order polling loop is running.
func (c *Controller) Tracking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracking != nil
}
