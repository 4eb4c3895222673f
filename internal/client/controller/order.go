package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/metrics"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// PlaceOrder buys menu mid for delivery to the current location.
//
// An unregistered user gets the NotRegistered alert without any backend
// call. A 409 or 403 from the backend is reported through the order alert as
// AlreadyHasActiveOrder or InvalidPaymentCard. Every other failure goes to
// the Error screen. Calling it without a resolved location is a programming
// error and returns ErrLocationUnknown.
func (c *Controller) PlaceOrder(ctx context.Context, mid int) error {
	if err := c.checkTransition(models.ScreenAlertOrder); err != nil {
		return err
	}

	registered, err := c.store.IsRegistered(ctx)
	if err != nil {
		return c.fail(ctx, "place order", err)
	}
	if !registered {
		return c.orderAlert(models.OrderErrorNotRegistered)
	}

	loc := c.currentLocation()
	if loc == nil {
		return c.fail(ctx, "place order", ErrLocationUnknown)
	}

	req := models.OrderRequest{SessionID: c.sessionID(), DeliveryLocation: *loc}
	order, err := c.client.BuyMenu(ctx, mid, req)
	if err != nil {
		if class, ok := classifyOrderError(err); ok {
			c.log.Info(ctx, "order rejected", "mid", mid, "reason", class)
			return c.orderAlert(class)
		}
		metrics.OrderOutcome("error")
		return c.fail(ctx, "place order", err)
	}

	c.mu.Lock()
	c.oid = order.OrderID
	c.mu.Unlock()
	if err := c.store.SetActiveOrderID(ctx, order.OrderID); err != nil {
		c.log.Warn(ctx, "cannot persist active order", "oid", order.OrderID, "error", err)
	}
	c.order.Set(order)
	c.log.Info(ctx, "order placed", "oid", order.OrderID, "mid", mid)

	metrics.OrderOutcome("placed")
	c.orderError.Set(models.OrderErrorNone)
	return c.transition(models.ScreenAlertOrder)
}

func (c *Controller) orderAlert(class models.OrderError) error {
	metrics.OrderOutcome(class.String())
	c.orderError.Set(class)
	return c.transition(models.ScreenAlertOrder)
}

func classifyOrderError(err error) (models.OrderError, bool) {
	code, ok := client.StatusCode(err)
	if !ok {
		return models.OrderErrorNone, false
	}
	switch code {
	case http.StatusConflict:
		return models.OrderErrorAlreadyHasActiveOrder, true
	case http.StatusForbidden:
		return models.OrderErrorInvalidPaymentCard, true
	}
	return models.OrderErrorNone, false
}

// PollOrder re-fetches the active order by its persisted id and replaces
// the in-memory record. A failed poll keeps the previous record.
func (c *Controller) PollOrder(ctx context.Context) {
	oid, err := c.store.ActiveOrderID(ctx)
	if err != nil {
		c.log.Warn(ctx, "poll: cannot read active order", "error", err)
		return
	}
	if oid == models.NoOrderID {
		return
	}

	order, err := c.client.GetOrder(ctx, c.sessionID(), oid)
	if err != nil {
		c.log.Warn(ctx, "poll failed", "oid", oid, "error", err)
		return
	}
	c.order.Set(order)
}

// OpenOrderTracking shows the active order and starts polling it.
func (c *Controller) OpenOrderTracking(ctx context.Context) error {
	if !c.location.Granted() {
		return c.transition(models.ScreenAlertPermission)
	}
	if err := c.checkTransition(models.ScreenMyOrder); err != nil {
		return err
	}

	loc, err := c.location.Current(ctx)
	if err != nil {
		return c.fail(ctx, "open order tracking", fmt.Errorf("resolve location: %w", err))
	}
	c.setLocation(loc)

	if err := c.transition(models.ScreenMyOrder); err != nil {
		return err
	}
	c.startTracking(ctx)
	return nil
}
