package controller

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// OpenProfile fetches the user profile and shows it.
func (c *Controller) OpenProfile(ctx context.Context) error {
	if err := c.checkTransition(models.ScreenProfile); err != nil {
		return err
	}
	if err := c.loadUserInfo(ctx); err != nil {
		return c.fail(ctx, "open profile", err)
	}
	return c.transition(models.ScreenProfile)
}

func (c *Controller) loadUserInfo(ctx context.Context) error {
	c.mu.Lock()
	sid, uid := c.sid, c.uid
	c.mu.Unlock()

	info, err := c.client.GetUser(ctx, sid, uid)
	if err != nil {
		return fmt.Errorf("load user %d: %w", uid, err)
	}
	c.userInfo.Set(info)
	return nil
}

// SubmitProfile writes the profile form. On success the user counts as
// registered and the profile alert is shown; on failure the Error screen.
func (c *Controller) SubmitProfile(ctx context.Context, form models.ProfileUpdate) error {
	if err := c.checkTransition(models.ScreenAlertProfile); err != nil {
		return err
	}

	c.mu.Lock()
	form.SessionID = c.sid
	uid := c.uid
	c.mu.Unlock()

	if err := c.client.UpdateUser(ctx, uid, form); err != nil {
		return c.fail(ctx, "submit profile", err)
	}
	if err := c.store.SetRegistered(ctx, true); err != nil {
		c.log.Warn(ctx, "cannot persist registration flag", "error", err)
	}

	c.mu.Lock()
	c.registered = true
	c.mu.Unlock()
	c.userInfo.Set(userInfoFromForm(uid, form, c.userInfo.Get()))

	return c.transition(models.ScreenAlertProfile)
}

// EditProfile reopens the form. Until it is submitted again the user is not
// considered registered.
func (c *Controller) EditProfile(ctx context.Context) error {
	if err := c.checkTransition(models.ScreenProfile); err != nil {
		return err
	}
	if err := c.store.SetRegistered(ctx, false); err != nil {
		return c.fail(ctx, "edit profile", err)
	}
	c.mu.Lock()
	c.registered = false
	c.mu.Unlock()
	return c.transition(models.ScreenProfile)
}

func userInfoFromForm(uid int, f models.ProfileUpdate, prev *models.UserInfo) *models.UserInfo {
	info := &models.UserInfo{
		FirstName:       &f.FirstName,
		LastName:        &f.LastName,
		CardFullName:    &f.CardFullName,
		CardNumber:      &f.CardNumber,
		CardExpireMonth: &f.CardExpireMonth,
		CardExpireYear:  &f.CardExpireYear,
		CardCVV:         &f.CardCVV,
		UserID:          uid,
	}
	if prev != nil {
		info.LastOrderID = prev.LastOrderID
		info.OrderStatus = prev.OrderStatus
	}
	return info
}
