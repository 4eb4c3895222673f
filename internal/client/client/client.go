package client

import (
	"context"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// Client is the backend API contract consumed by the controller.
type Client interface {
	// Register creates a new device session (POST /user).
	Register(ctx context.Context) (*models.Registration, error)
	// GetUser fetches the profile (GET /user/{uid}).
	GetUser(ctx context.Context, sid string, uid int) (*models.UserInfo, error)
	// UpdateUser writes the profile form (PUT /user/{uid}).
	UpdateUser(ctx context.Context, uid int, update models.ProfileUpdate) error
	// ListMenus lists menus deliverable to loc (GET /menu).
	ListMenus(ctx context.Context, sid string, loc models.Location) ([]models.MenuSummary, error)
	// GetMenu fetches one menu detail (GET /menu/{mid}).
	GetMenu(ctx context.Context, sid string, mid int, loc models.Location) (*models.MenuDetail, error)
	// GetMenuImage fetches the base64 image of a menu (GET /menu/{mid}/image).
	GetMenuImage(ctx context.Context, sid string, mid int) (string, error)
	// BuyMenu places an order (POST /menu/{mid}/buy).
	BuyMenu(ctx context.Context, mid int, req models.OrderRequest) (*models.Order, error)
	// GetOrder fetches an order (GET /order/{oid}).
	GetOrder(ctx context.Context, sid string, oid int) (*models.Order, error)
}
