package controller

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// RequestMenus opens the nearby menu list from Home. Without location
// permission it shows the permission alert instead.
func (c *Controller) RequestMenus(ctx context.Context) error {
	if !c.location.Granted() {
		return c.transition(models.ScreenAlertPermission)
	}
	if err := c.checkTransition(models.ScreenMenuList); err != nil {
		return err
	}

	loc, err := c.location.Current(ctx)
	if err != nil {
		return c.fail(ctx, "request menus", fmt.Errorf("resolve location: %w", err))
	}
	c.setLocation(loc)

	if err := c.transition(models.ScreenMenuList); err != nil {
		return err
	}
	return c.SyncMenuList(ctx, loc)
}

// SyncMenuList refreshes the menu list around loc and pre-warms the image
// cache for every entry. MenusReady is false for the whole refresh and is
// set only by the most recent one. A failed list fetch escalates to Error;
// failed image downloads do not.
func (c *Controller) SyncMenuList(ctx context.Context, loc models.Location) error {
	gen := c.syncGen.Add(1)
	c.menusReady.Set(false)

	sid := c.sessionID()
	menus, err := c.client.ListMenus(ctx, sid, loc)
	if err != nil {
		if c.syncGen.Load() != gen {
			c.log.Warn(ctx, "superseded menu refresh failed", "error", err)
			return err
		}
		return c.fail(ctx, "sync menu list", err)
	}

	cached := c.images.Prewarm(ctx, sid, menus)
	if cached < len(menus) {
		c.log.Warn(ctx, "menu images partially cached", "cached", cached, "total", len(menus))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.syncGen.Load() != gen {
		c.log.Debug(ctx, "menu refresh superseded", "generation", gen)
		return nil
	}
	c.menus.Set(menus)
	c.menusReady.Set(true)
	return nil
}

// RefreshMenus re-runs SyncMenuList around the last known location.
func (c *Controller) RefreshMenus(ctx context.Context) error {
	if c.screen.Get() != models.ScreenMenuList {
		return fmt.Errorf("%w: refresh outside the menu list", ErrInvalidTransition)
	}
	loc := c.currentLocation()
	if loc == nil {
		return c.fail(ctx, "refresh menus", ErrLocationUnknown)
	}
	return c.SyncMenuList(ctx, *loc)
}

// ResolveImage returns the cached or freshly downloaded image for a menu of
// the current list. Failures yield an empty string.
func (c *Controller) ResolveImage(ctx context.Context, mid, version int) string {
	img, err := c.images.Resolve(ctx, c.sessionID(), mid, version)
	if err != nil {
		c.log.Warn(ctx, "image unavailable", "mid", mid, "error", err)
		return ""
	}
	return img
}

// SelectMenu loads the detail of mid and shows it.
func (c *Controller) SelectMenu(ctx context.Context, mid int) error {
	if err := c.checkTransition(models.ScreenMenuDetail); err != nil {
		return err
	}
	if err := c.loadMenuDetail(ctx, mid); err != nil {
		return c.fail(ctx, "select menu", err)
	}
	return c.transition(models.ScreenMenuDetail)
}

// BackToMenuList leaves the detail screen for the list already loaded.
func (c *Controller) BackToMenuList() error {
	if c.screen.Get() != models.ScreenMenuDetail {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.screen.Get(), models.ScreenMenuList)
	}
	return c.transition(models.ScreenMenuList)
}

// loadMenuDetail fetches the detail and image of mid and publishes both.
func (c *Controller) loadMenuDetail(ctx context.Context, mid int) error {
	if mid < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMenu, mid)
	}
	loc := c.currentLocation()
	if loc == nil {
		return ErrLocationUnknown
	}

	sid := c.sessionID()
	detail, err := c.client.GetMenu(ctx, sid, mid, *loc)
	if err != nil {
		return fmt.Errorf("load menu %d: %w", mid, err)
	}
	img := c.ResolveImage(ctx, detail.MenuID, detail.ImageVersion)

	c.mu.Lock()
	c.menuID = mid
	c.mu.Unlock()
	c.menuDetail.Set(detail)
	c.menuImage.Set(img)
	return nil
}

// LookupMenu fetches a menu detail without touching the screen, e.g. to
// name the menu of the tracked order. It returns nil on failure.
func (c *Controller) LookupMenu(ctx context.Context, mid int) *models.MenuDetail {
	var loc models.Location
	if l := c.currentLocation(); l != nil {
		loc = *l
	}
	detail, err := c.client.GetMenu(ctx, c.sessionID(), mid, loc)
	if err != nil {
		c.log.Warn(ctx, "menu lookup failed", "mid", mid, "error", err)
		return nil
	}
	return detail
}
