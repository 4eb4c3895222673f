package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

var errNotStubbed = errors.New("not stubbed")

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu sync.Mutex

	RegisterRet   *models.Registration
	RegisterErr   error
	RegisterCalls int

	// images by menu id; ImageErr entries take precedence
	Images     map[int]string
	ImageErr   map[int]error
	ImageCalls map[int]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		Images:     map[int]string{},
		ImageErr:   map[int]error{},
		ImageCalls: map[int]int{},
	}
}

func (f *fakeClient) Register(context.Context) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls++
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) GetMenuImage(_ context.Context, _ string, mid int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ImageCalls[mid]++
	if err := f.ImageErr[mid]; err != nil {
		return "", err
	}
	return f.Images[mid], nil
}

func (f *fakeClient) imageCalls(mid int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ImageCalls[mid]
}

func (f *fakeClient) GetUser(context.Context, string, int) (*models.UserInfo, error) {
	return nil, errNotStubbed
}

func (f *fakeClient) UpdateUser(context.Context, int, models.ProfileUpdate) error {
	return errNotStubbed
}

func (f *fakeClient) ListMenus(context.Context, string, models.Location) ([]models.MenuSummary, error) {
	return nil, errNotStubbed
}

func (f *fakeClient) GetMenu(context.Context, string, int, models.Location) (*models.MenuDetail, error) {
	return nil, errNotStubbed
}

func (f *fakeClient) BuyMenu(context.Context, int, models.OrderRequest) (*models.Order, error) {
	return nil, errNotStubbed
}

func (f *fakeClient) GetOrder(context.Context, string, int) (*models.Order, error) {
	return nil, errNotStubbed
}

var _ client.Client = (*fakeClient)(nil)
