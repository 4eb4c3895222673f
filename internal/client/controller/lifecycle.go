package controller

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// Initialize establishes the device session, registering with the backend
// only if no session id is persisted yet, and loads the persisted identity.
// It always ends with the controller marked ready; the screen is left as is.
func (c *Controller) Initialize(ctx context.Context) error {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	defer c.markReady()

	if _, _, err := c.session.EnsureRegistered(ctx); err != nil {
		return c.fail(ctx, "initialize", err)
	}
	if err := c.loadIdentity(ctx); err != nil {
		return c.fail(ctx, "initialize", err)
	}
	return nil
}

func (c *Controller) markReady() {
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	c.readyVal.Set(true)
}

// loadIdentity copies the persisted identity into memory.
func (c *Controller) loadIdentity(ctx context.Context) error {
	sid, err := c.store.SessionID(ctx)
	if err != nil {
		return fmt.Errorf("load session id: %w", err)
	}
	uid, err := c.store.UserID(ctx)
	if err != nil {
		return fmt.Errorf("load user id: %w", err)
	}
	oid, err := c.store.ActiveOrderID(ctx)
	if err != nil {
		return fmt.Errorf("load order id: %w", err)
	}
	registered, err := c.store.IsRegistered(ctx)
	if err != nil {
		return fmt.Errorf("load registration flag: %w", err)
	}
	loc, err := c.store.LastLocation(ctx)
	if err != nil {
		return fmt.Errorf("load location: %w", err)
	}

	c.mu.Lock()
	c.sid, c.uid, c.oid, c.registered = sid, uid, oid, registered
	if loc != nil {
		c.lastLoc = loc
	}
	c.mu.Unlock()

	if loc != nil {
		c.locationVal.Set(loc)
	}
	return nil
}

// Resume restores the screen saved by the last Pause. Without a saved
// screen it goes Home. The identity is reloaded from the store first, so the
// restore does not depend on memory that may not have survived.
func (c *Controller) Resume(ctx context.Context) error {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	if !c.isReady() {
		return ErrNotReady
	}

	screen, ok, err := c.store.LastScreen(ctx)
	if err != nil {
		c.log.Warn(ctx, "cannot read last screen", "error", err)
		ok = false
	}
	if !ok {
		c.forceScreen(models.ScreenHome)
		return nil
	}

	if err := c.loadIdentity(ctx); err != nil {
		return c.fail(ctx, "resume", err)
	}

	switch screen {
	case models.ScreenLoading:
		c.forceScreen(models.ScreenHome)

	case models.ScreenMenuDetail:
		mid, err := c.store.LastViewedMenuID(ctx)
		if err != nil {
			return c.fail(ctx, "resume", err)
		}
		if mid == models.NoMenuID {
			return c.fail(ctx, "resume", fmt.Errorf("%w: no menu saved", ErrInvalidMenu))
		}
		if err := c.loadMenuDetail(ctx, mid); err != nil {
			return c.fail(ctx, "resume", err)
		}
		c.forceScreen(models.ScreenMenuDetail)

	case models.ScreenProfile:
		if err := c.loadUserInfo(ctx); err != nil {
			return c.fail(ctx, "resume", err)
		}
		c.forceScreen(models.ScreenProfile)

	case models.ScreenMenuList:
		c.forceScreen(models.ScreenMenuList)
		loc := c.currentLocation()
		if loc == nil {
			return c.fail(ctx, "resume", ErrLocationUnknown)
		}
		return c.SyncMenuList(ctx, *loc)

	case models.ScreenMyOrder:
		c.forceScreen(models.ScreenMyOrder)
		c.startTracking(ctx)

	default:
		c.forceScreen(screen)
	}
	return nil
}

// Pause persists what Resume needs: the current screen, the last known
// location and, on the menu detail screen, the displayed menu id. It runs to
// completion even if ctx is canceled. Failures are logged only.
func (c *Controller) Pause(ctx context.Context) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	ctx = context.WithoutCancel(ctx)
	<-c.stopTracking()

	screen := c.screen.Get()
	if err := c.store.SetLastScreen(ctx, screen); err != nil {
		c.log.Warn(ctx, "pause: cannot save screen", "screen", screen, "error", err)
	}

	if loc := c.currentLocation(); loc != nil {
		if err := c.store.SetLastLocation(ctx, *loc); err != nil {
			c.log.Warn(ctx, "pause: cannot save location", "error", err)
		}
	}

	if screen == models.ScreenMenuDetail {
		c.mu.Lock()
		mid := c.menuID
		c.mu.Unlock()
		if err := c.store.SetLastViewedMenuID(ctx, mid); err != nil {
			c.log.Warn(ctx, "pause: cannot save menu id", "mid", mid, "error", err)
		}
	}
	c.log.Debug(ctx, "paused", "screen", screen)
}

// Start is the cold start: Initialize followed by Resume.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.Initialize(ctx); err != nil {
		return err
	}
	return c.Resume(ctx)
}
