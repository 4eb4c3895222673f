package controller

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// GoHome returns to Home from any screen. It is also the only way out of
// the Error screen.
func (c *Controller) GoHome() {
	c.lastError.Set(nil)
	c.forceScreen(models.ScreenHome)
}

// SetLocationPermission records the answer to the location permission
// prompt.
func (c *Controller) SetLocationPermission(granted bool) {
	c.location.SetPermission(granted)
	c.permission.Set(granted)
}

// DismissAlert closes the alert on screen and moves on. After an order
// alert the destination depends on the classification: a placed order is
// tracked, a registration or card problem opens the profile, and an existing
// active order returns to the menu list.
func (c *Controller) DismissAlert(ctx context.Context) error {
	screen := c.screen.Get()
	switch screen {
	case models.ScreenAlertProfile, models.ScreenAlertPermission:
		return c.transition(models.ScreenHome)

	case models.ScreenAlertOrder:
		switch c.orderError.Get() {
		case models.OrderErrorNone:
			return c.OpenOrderTracking(ctx)
		case models.OrderErrorNotRegistered, models.OrderErrorInvalidPaymentCard:
			return c.OpenProfile(ctx)
		case models.OrderErrorAlreadyHasActiveOrder:
			return c.transition(models.ScreenMenuList)
		}
	}
	return fmt.Errorf("%w: no alert on %s", ErrInvalidTransition, screen)
}
