// Package controller is the session and synchronization core of the client.
//
// A Controller owns every piece of transient state the presentation layer
// renders: the current screen, the menu list, the selected menu, the active
// order and the alert classification. The presentation layer observes that
// state through read-only observables and changes it only by calling
// Controller methods. Each method performs at most one screen transition.
//
// Persistent identity (session id, user id, active order id, last location,
// last screen) lives in an IdentityStore; images live in the image cache
// behind an ImageResolver. Both are passive collaborators.
package controller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/client/observable"
	"github.com/dmitrijs2005/gophfood/internal/logging"
)

var (
	ErrInvalidTransition = errors.New("invalid screen transition")
	ErrLocationUnknown   = errors.New("current location unknown")
	ErrNotReady          = errors.New("controller not initialized")
	ErrInvalidMenu       = errors.New("invalid menu id")
)

const DefaultPollInterval = 5 * time.Second

// IdentityStore persists the device identity.
type IdentityStore interface {
	SessionID(ctx context.Context) (string, error)
	UserID(ctx context.Context) (int, error)
	ActiveOrderID(ctx context.Context) (int, error)
	SetActiveOrderID(ctx context.Context, oid int) error
	LastViewedMenuID(ctx context.Context) (int, error)
	SetLastViewedMenuID(ctx context.Context, mid int) error
	LastLocation(ctx context.Context) (*models.Location, error)
	SetLastLocation(ctx context.Context, loc models.Location) error
	IsRegistered(ctx context.Context) (bool, error)
	SetRegistered(ctx context.Context, registered bool) error
	LastScreen(ctx context.Context) (models.Screen, bool, error)
	SetLastScreen(ctx context.Context, screen models.Screen) error
}

// Registrar establishes the device session exactly once.
type Registrar interface {
	EnsureRegistered(ctx context.Context) (models.Registration, bool, error)
}

// ImageResolver implements the versioned image cache protocol.
type ImageResolver interface {
	Resolve(ctx context.Context, sid string, mid, version int) (string, error)
	Prewarm(ctx context.Context, sid string, menus []models.MenuSummary) int
}

// LocationProvider is a permission-gated position source.
type LocationProvider interface {
	SetPermission(granted bool)
	Granted() bool
	Current(ctx context.Context) (models.Location, error)
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Client       client.Client
	Store        IdentityStore
	Session      Registrar
	Images       ImageResolver
	Location     LocationProvider
	Logger       logging.Logger
	PollInterval time.Duration
}

type Controller struct {
	client   client.Client
	store    IdentityStore
	session  Registrar
	images   ImageResolver
	location LocationProvider
	log      logging.Logger
	interval time.Duration

	// lifeMu serializes Initialize, Resume and Pause.
	lifeMu sync.Mutex

	// mu guards the in-memory identity and the screen transition.
	mu         sync.Mutex
	ready      bool
	sid        string
	uid        int
	oid        int
	registered bool
	lastLoc    *models.Location
	menuID     int

	syncGen  atomic.Uint64
	tracking *tracker

	screen      *observable.Value[models.Screen]
	readyVal    *observable.Value[bool]
	permission  *observable.Value[bool]
	locationVal *observable.Value[*models.Location]
	menus       *observable.Value[[]models.MenuSummary]
	menusReady  *observable.Value[bool]
	menuDetail  *observable.Value[*models.MenuDetail]
	menuImage   *observable.Value[string]
	order       *observable.Value[*models.Order]
	orderError  *observable.Value[models.OrderError]
	userInfo    *observable.Value[*models.UserInfo]
	lastError   *observable.Value[error]
}

func New(d Deps) *Controller {
	log := d.Logger
	if log == nil {
		log = logging.Nop()
	}
	interval := d.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	granted := d.Location.Granted()

	return &Controller{
		client:   d.Client,
		store:    d.Store,
		session:  d.Session,
		images:   d.Images,
		location: d.Location,
		log:      log.With("component", "controller"),
		interval: interval,

		uid:    models.NoUserID,
		oid:    models.NoOrderID,
		menuID: models.NoMenuID,

		screen:      observable.New(models.ScreenLoading),
		readyVal:    observable.New(false),
		permission:  observable.New(granted),
		locationVal: observable.New[*models.Location](nil),
		menus:       observable.New[[]models.MenuSummary](nil),
		menusReady:  observable.New(false),
		menuDetail:  observable.New[*models.MenuDetail](nil),
		menuImage:   observable.New(""),
		order:       observable.New[*models.Order](nil),
		orderError:  observable.New(models.OrderErrorNone),
		userInfo:    observable.New[*models.UserInfo](nil),
		lastError:   observable.New[error](nil),
	}
}

func (c *Controller) Screen() observable.Reader[models.Screen]          { return c.screen }
func (c *Controller) Ready() observable.Reader[bool]                    { return c.readyVal }
func (c *Controller) HasPermission() observable.Reader[bool]            { return c.permission }
func (c *Controller) Location() observable.Reader[*models.Location]     { return c.locationVal }
func (c *Controller) Menus() observable.Reader[[]models.MenuSummary]    { return c.menus }
func (c *Controller) MenusReady() observable.Reader[bool]               { return c.menusReady }
func (c *Controller) MenuDetail() observable.Reader[*models.MenuDetail] { return c.menuDetail }
func (c *Controller) MenuImage() observable.Reader[string]              { return c.menuImage }
func (c *Controller) Order() observable.Reader[*models.Order]           { return c.order }
func (c *Controller) OrderError() observable.Reader[models.OrderError]  { return c.orderError }
func (c *Controller) UserInfo() observable.Reader[*models.UserInfo]     { return c.userInfo }

// LastError is the failure that sent the controller to the Error screen.
func (c *Controller) LastError() observable.Reader[error] { return c.lastError }

// Identity returns a snapshot of the in-memory identity.
func (c *Controller) Identity() models.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := models.Identity{
		SessionID:     c.sid,
		UserID:        c.uid,
		ActiveOrderID: c.oid,
		IsRegistered:  c.registered,
		LastScreen:    c.screen.Get(),
	}
	if c.lastLoc != nil {
		loc := *c.lastLoc
		id.LastLocation = &loc
	}
	return id
}

func (c *Controller) isReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

func (c *Controller) sessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sid
}

func (c *Controller) currentLocation() *models.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastLoc == nil {
		return nil
	}
	loc := *c.lastLoc
	return &loc
}

func (c *Controller) setLocation(loc models.Location) {
	c.mu.Lock()
	c.lastLoc = &loc
	c.mu.Unlock()
	c.locationVal.Set(&loc)
}

// fail escalates an unclassified failure to the Error screen.
func (c *Controller) fail(ctx context.Context, op string, err error) error {
	c.log.Error(ctx, op+" failed", "error", err)
	c.lastError.Set(err)
	c.forceScreen(models.ScreenError)
	return err
}
