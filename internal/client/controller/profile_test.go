package controller

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/stretchr/testify/require"
)

func profileForm() models.ProfileUpdate {
	return models.ProfileUpdate{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		CardFullName:    "Ada Lovelace",
		CardNumber:      "1234123412341234",
		CardExpireMonth: 12,
		CardExpireYear:  2030,
		CardCVV:         "123",
	}
}

func TestSubmitProfile_Registers(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Start(ctx))
	require.NoError(t, e.ctrl.OpenProfile(ctx))
	require.Equal(t, models.ScreenProfile, e.ctrl.Screen().Get())

	require.NoError(t, e.ctrl.SubmitProfile(ctx, profileForm()))
	require.Equal(t, models.ScreenAlertProfile, e.ctrl.Screen().Get())

	sent := e.fc.lastUpdate
	require.Equal(t, "sess-1", sent.SessionID)
	require.Equal(t, "Ada", sent.FirstName)

	registered, err := e.store.IsRegistered(ctx)
	require.NoError(t, err)
	require.True(t, registered)
	require.True(t, e.ctrl.Identity().IsRegistered)
	require.Equal(t, "Lovelace", *e.ctrl.UserInfo().Get().LastName)

	require.NoError(t, e.ctrl.DismissAlert(ctx))
	require.Equal(t, models.ScreenHome, e.ctrl.Screen().Get())
}

func TestSubmitProfile_FailureEscalates(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Start(ctx))
	require.NoError(t, e.ctrl.OpenProfile(ctx))
	e.fc.set(func(f *fakeClient) { f.updateErr = &client.StatusError{Op: "user_update", Code: 422} })

	require.Error(t, e.ctrl.SubmitProfile(ctx, profileForm()))
	require.Equal(t, models.ScreenError, e.ctrl.Screen().Get())

	registered, err := e.store.IsRegistered(ctx)
	require.NoError(t, err)
	require.False(t, registered)
}

func TestSubmitProfile_OutsideProfile(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Start(ctx))

	require.ErrorIs(t, e.ctrl.SubmitProfile(ctx, profileForm()), ErrInvalidTransition)
	require.Equal(t, 0, e.fc.count(func(f *fakeClient) int { return f.updateCalls }))
}

func TestEditProfile_ClearsRegistration(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Start(ctx))
	require.NoError(t, e.ctrl.OpenProfile(ctx))
	require.NoError(t, e.ctrl.SubmitProfile(ctx, profileForm()))

	require.NoError(t, e.ctrl.EditProfile(ctx))
	require.Equal(t, models.ScreenProfile, e.ctrl.Screen().Get())
	registered, err := e.store.IsRegistered(ctx)
	require.NoError(t, err)
	require.False(t, registered)
}

func TestOpenProfile_FailureEscalates(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Start(ctx))
	e.fc.set(func(f *fakeClient) { f.userErr = client.ErrUnavailable })

	require.ErrorIs(t, e.ctrl.OpenProfile(ctx), client.ErrUnavailable)
	require.Equal(t, models.ScreenError, e.ctrl.Screen().Get())
}
