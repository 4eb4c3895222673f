package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophfood/internal/client/metrics"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

func (a *App) Home(ctx context.Context) error {
	a.ctrl.GoHome()
	a.render(ctx)
	return nil
}

func (a *App) Menus(ctx context.Context) error {
	err := a.ctrl.RequestMenus(ctx)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Refresh(ctx context.Context) error {
	err := a.ctrl.RefreshMenus(ctx)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Select(ctx context.Context, arg string) error {
	mid, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Menu id must be a number")
		return err
	}
	err = a.ctrl.SelectMenu(ctx, mid)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Back(ctx context.Context) error {
	err := a.ctrl.BackToMenuList()
	a.render(ctx)
	return a.report(err)
}

func (a *App) Buy(ctx context.Context) error {
	detail := a.ctrl.MenuDetail().Get()
	if detail == nil || a.ctrl.Screen().Get() != models.ScreenMenuDetail {
		printlnFn("Select a menu first")
		return nil
	}
	err := a.ctrl.PlaceOrder(ctx, detail.MenuID)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Track(ctx context.Context) error {
	err := a.ctrl.OpenOrderTracking(ctx)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Profile(ctx context.Context) error {
	err := a.ctrl.OpenProfile(ctx)
	a.render(ctx)
	return a.report(err)
}

// Edit reopens the profile form, reads it from the terminal and submits it.
func (a *App) Edit(ctx context.Context) error {
	if err := a.report(a.ctrl.EditProfile(ctx)); err != nil {
		return err
	}

	form, err := a.readProfileForm()
	if err != nil {
		printlnFn("Profile not saved:", err)
		return err
	}
	err = a.ctrl.SubmitProfile(ctx, form)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Dismiss(ctx context.Context) error {
	err := a.ctrl.DismissAlert(ctx)
	a.render(ctx)
	return a.report(err)
}

func (a *App) Permission(ctx context.Context, granted bool) error {
	a.ctrl.SetLocationPermission(granted)
	if granted {
		printlnFn("Location permission granted")
	} else {
		printlnFn("Location permission denied")
	}
	return nil
}

func (a *App) Pause(ctx context.Context) error {
	a.ctrl.Pause(ctx)
	printlnFn("Paused")
	return nil
}

func (a *App) Resume(ctx context.Context) error {
	err := a.ctrl.Resume(ctx)
	a.render(ctx)
	return a.report(err)
}

func (a *App) readProfileForm() (models.ProfileUpdate, error) {
	var (
		f   models.ProfileUpdate
		err error
	)
	if f.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return f, err
	}
	if f.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return f, err
	}
	if f.CardFullName, err = GetSimpleText(a.reader, "Name on card", a.out); err != nil {
		return f, err
	}
	if f.CardNumber, err = GetSimpleText(a.reader, "Card number", a.out); err != nil {
		return f, err
	}
	f.CardNumber = strings.ReplaceAll(f.CardNumber, " ", "")
	if f.CardExpireMonth, err = GetInt(a.reader, "Expiry month", a.out); err != nil {
		return f, err
	}
	if f.CardExpireMonth < 1 || f.CardExpireMonth > 12 {
		return f, fmt.Errorf("invalid month %d", f.CardExpireMonth)
	}
	if f.CardExpireYear, err = GetInt(a.reader, "Expiry year", a.out); err != nil {
		return f, err
	}
	if f.CardCVV, err = GetSecret(a.reader, "CVV", a.out); err != nil {
		return f, err
	}
	return f, nil
}

// Stats prints the client counters and the cached image versions.
func (a *App) Stats(ctx context.Context) error {
	families, err := metrics.Registry.Gather()
	if err != nil {
		a.log.Warn(ctx, "cannot gather metrics", "error", err)
		return err
	}

	var b strings.Builder
	b.WriteString("[Stats]")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			fmt.Fprintf(&b, "\n  %s{%s} %g", mf.GetName(), strings.Join(labels, ","), value)
		}
	}

	cached, err := a.images.Cached(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot list cached images", "error", err)
	}
	versions := make([]string, 0, len(cached))
	for _, img := range cached {
		versions = append(versions, fmt.Sprintf("%d@v%d", img.MenuID, img.Version))
	}
	if len(versions) == 0 {
		versions = append(versions, "none")
	}
	fmt.Fprintf(&b, "\n  cached images: %s", strings.Join(versions, " "))

	printlnFn(b.String())
	return nil
}
