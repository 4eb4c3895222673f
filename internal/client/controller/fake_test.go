package controller

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/location"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/client/repositories/identity"
	"github.com/dmitrijs2005/gophfood/internal/client/repositories/images"
	"github.com/dmitrijs2005/gophfood/internal/client/services"
	"github.com/dmitrijs2005/gophfood/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeClient is a scripted backend. All fields are guarded by mu.
type fakeClient struct {
	mu sync.Mutex

	reg           *models.Registration
	registerErr   error
	registerCalls int

	user        *models.UserInfo
	userErr     error
	updateErr   error
	lastUpdate  models.ProfileUpdate
	updateCalls int

	menus    []models.MenuSummary
	listErr  error
	listHook func()

	details    map[int]*models.MenuDetail
	getMenuMid []int

	imgs     map[int]string
	imgErr   map[int]error
	imgCalls map[int]int

	buyOrder *models.Order
	buyErr   error
	buyCalls int
	lastBuy  models.OrderRequest

	order         *models.Order
	orderErr      error
	getOrderCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		reg:      &models.Registration{SessionID: "sess-1", UserID: 7},
		details:  map[int]*models.MenuDetail{},
		imgs:     map[int]string{},
		imgErr:   map[int]error{},
		imgCalls: map[int]int{},
	}
}

func (f *fakeClient) Register(context.Context) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	r := *f.reg
	return &r, nil
}

func (f *fakeClient) GetUser(_ context.Context, _ string, uid int) (*models.UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user != nil {
		u := *f.user
		return &u, nil
	}
	return &models.UserInfo{UserID: uid}, nil
}

func (f *fakeClient) UpdateUser(_ context.Context, _ int, upd models.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.lastUpdate = upd
	return f.updateErr
}

func (f *fakeClient) ListMenus(context.Context, string, models.Location) ([]models.MenuSummary, error) {
	f.mu.Lock()
	hook, menus, err := f.listHook, f.menus, f.listErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return append([]models.MenuSummary(nil), menus...), nil
}

func (f *fakeClient) GetMenu(_ context.Context, _ string, mid int, _ models.Location) (*models.MenuDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getMenuMid = append(f.getMenuMid, mid)
	d, ok := f.details[mid]
	if !ok {
		return nil, &client.StatusError{Op: "menu_get", Code: 404}
	}
	cp := *d
	return &cp, nil
}

func (f *fakeClient) GetMenuImage(_ context.Context, _ string, mid int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imgCalls[mid]++
	if err := f.imgErr[mid]; err != nil {
		return "", err
	}
	return f.imgs[mid], nil
}

func (f *fakeClient) BuyMenu(_ context.Context, _ int, req models.OrderRequest) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buyCalls++
	f.lastBuy = req
	if f.buyErr != nil {
		return nil, f.buyErr
	}
	o := *f.buyOrder
	return &o, nil
}

func (f *fakeClient) GetOrder(context.Context, string, int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getOrderCalls++
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	o := *f.order
	return &o, nil
}

func (f *fakeClient) set(fn func(f *fakeClient)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeClient) count(fn func(f *fakeClient) int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}

var _ client.Client = (*fakeClient)(nil)

type env struct {
	ctrl   *Controller
	fc     *fakeClient
	store  *identity.Store
	images images.Repository
	loc    *location.Provider
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "ctrl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fc := newFakeClient()
	store := identity.NewSQLiteStore(db)
	imgRepo := images.NewSQLiteRepository(db)
	loc := location.NewProvider(location.NewStatic(45.4642, 9.19))
	log := logging.Nop()

	ctrl := New(Deps{
		Client:       fc,
		Store:        store,
		Session:      services.NewSessionService(fc, store, log),
		Images:       services.NewImageService(fc, imgRepo, log, 2),
		Location:     loc,
		Logger:       log,
		PollInterval: 10 * time.Millisecond,
	})
	t.Cleanup(func() { <-ctrl.stopTracking() })

	return &env{ctrl: ctrl, fc: fc, store: store, images: imgRepo, loc: loc}
}

// withMenus scripts a backend with three menus and their details/images.
func (e *env) withMenus() {
	e.fc.set(func(f *fakeClient) {
		f.menus = []models.MenuSummary{
			{MenuID: 1, Name: "Pizza", ImageVersion: 1},
			{MenuID: 2, Name: "Sushi", ImageVersion: 1},
			{MenuID: 3, Name: "Ramen", ImageVersion: 2},
		}
		for _, m := range f.menus {
			f.details[m.MenuID] = &models.MenuDetail{MenuSummary: m, LongDescription: m.Name + " long"}
			f.imgs[m.MenuID] = "img-" + m.Name
		}
		f.details[42] = &models.MenuDetail{
			MenuSummary:     models.MenuSummary{MenuID: 42, Name: "Special", ImageVersion: 5},
			LongDescription: "special",
		}
		f.imgs[42] = "img-Special"
	})
}

// toMenuDetail drives a fresh controller from cold start to the detail of mid.
func (e *env) toMenuDetail(t *testing.T, mid int) {
	t.Helper()
	ctx := context.Background()
	e.withMenus()
	require.NoError(t, e.ctrl.Start(ctx))
	e.ctrl.SetLocationPermission(true)
	require.NoError(t, e.ctrl.RequestMenus(ctx))
	require.NoError(t, e.ctrl.SelectMenu(ctx, mid))
	require.Equal(t, models.ScreenMenuDetail, e.ctrl.Screen().Get())
}
