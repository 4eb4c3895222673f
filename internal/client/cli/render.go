package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

var orderAlertText = map[models.OrderError]string{
	models.OrderErrorNone:                  "Order placed! Type 'ok' to follow it.",
	models.OrderErrorNotRegistered:         "Complete your profile before ordering. Type 'ok' to open it.",
	models.OrderErrorAlreadyHasActiveOrder: "You already have an order on its way. Type 'ok' to go back.",
	models.OrderErrorInvalidPaymentCard:    "Your payment card was refused. Type 'ok' to update it.",
}

// render prints the current screen.
func (a *App) render(ctx context.Context) {
	switch a.ctrl.Screen().Get() {
	case models.ScreenLoading:
		printlnFn("Loading...")

	case models.ScreenHome:
		printlnFn("[Home] menus | track | profile")

	case models.ScreenAlertPermission:
		printlnFn("[Alert] Location permission is required. Type 'allow', then 'ok'.")

	case models.ScreenMenuList:
		a.renderMenuList()

	case models.ScreenMenuDetail:
		a.renderMenuDetail()

	case models.ScreenAlertOrder:
		printlnFn("[Alert] " + orderAlertText[a.ctrl.OrderError().Get()])

	case models.ScreenMyOrder:
		a.renderOrder(ctx)

	case models.ScreenProfile:
		a.renderProfile()

	case models.ScreenAlertProfile:
		printlnFn("[Alert] Profile saved. Type 'ok' to continue.")

	case models.ScreenError:
		msg := "unknown error"
		if err := a.ctrl.LastError().Get(); err != nil {
			msg = err.Error()
		}
		printlnFn("[Error] " + msg + ". Type 'home' to start over.")
	}
}

func (a *App) renderMenuList() {
	if !a.ctrl.MenusReady().Get() {
		printlnFn("[Menus] loading...")
		return
	}
	menus := a.ctrl.Menus().Get()
	if len(menus) == 0 {
		printlnFn("[Menus] nothing deliverable near you")
		return
	}
	var b strings.Builder
	b.WriteString("[Menus]")
	for _, m := range menus {
		fmt.Fprintf(&b, "\n  %4d  %-24s %7.2f  %3d min  %s", m.MenuID, m.Name, m.Price, m.DeliveryTime, m.ShortDescription)
	}
	printlnFn(b.String())
}

func (a *App) renderMenuDetail() {
	d := a.ctrl.MenuDetail().Get()
	if d == nil {
		return
	}
	img := a.ctrl.MenuImage().Get()
	printlnFn(fmt.Sprintf("[Menu %d] %s  %.2f  %d min\n%s\n(image: %d bytes)\nbuy | back",
		d.MenuID, d.Name, d.Price, d.DeliveryTime, d.LongDescription, len(img)))
}

func (a *App) renderOrder(ctx context.Context) {
	o := a.ctrl.Order().Get()
	if o == nil {
		printlnFn("[Order] no order yet")
		return
	}
	name := fmt.Sprintf("menu %d", o.MenuID)
	if m := a.ctrl.LookupMenu(ctx, o.MenuID); m != nil {
		name = m.Name
	}
	printlnFn(fmt.Sprintf("[Order] %s\n%s", name, formatOrder(o)))
}

func formatOrder(o *models.Order) string {
	switch {
	case o.DeliveryTimestamp != nil:
		return fmt.Sprintf("order #%d %s, delivered at %s", o.OrderID, o.Status, *o.DeliveryTimestamp)
	case o.ExpectedDeliveryTimestamp != nil:
		return fmt.Sprintf("order #%d %s, expected at %s, now at %.4f,%.4f",
			o.OrderID, o.Status, *o.ExpectedDeliveryTimestamp, o.CurrentPosition.Lat, o.CurrentPosition.Lng)
	default:
		return fmt.Sprintf("order #%d %s", o.OrderID, o.Status)
	}
}

func (a *App) renderProfile() {
	u := a.ctrl.UserInfo().Get()
	if u == nil || u.FirstName == nil {
		printlnFn("[Profile] not filled in yet. Type 'edit'.")
		return
	}
	card := ""
	if u.CardNumber != nil && len(*u.CardNumber) >= 4 {
		n := *u.CardNumber
		card = "**** " + n[len(n)-4:]
	}
	printlnFn(fmt.Sprintf("[Profile] %s %s  card %s\nedit | home", deref(u.FirstName), deref(u.LastName), card))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
