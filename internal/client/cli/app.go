package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/config"
	"github.com/dmitrijs2005/gophfood/internal/client/controller"
	"github.com/dmitrijs2005/gophfood/internal/client/location"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/client/repositories/identity"
	"github.com/dmitrijs2005/gophfood/internal/client/repositories/images"
	"github.com/dmitrijs2005/gophfood/internal/client/services"
	"github.com/dmitrijs2005/gophfood/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	ctrl   *controller.Controller
	images *services.ImageService
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and builds the controller graph
// described by c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	gw, err := client.NewHTTPClient(c.ServerBaseURL,
		client.WithRateLimit(c.RequestsPerSecond, c.RequestBurst),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := identity.NewSQLiteStore(db)
	imgs := services.NewImageService(gw, images.NewSQLiteRepository(db), log, c.PrewarmConcurrency)
	ctrl := controller.New(controller.Deps{
		Client:       gw,
		Store:        store,
		Session:      services.NewSessionService(gw, store, log),
		Images:       imgs,
		Location:     location.NewProvider(location.NewStatic(c.DefaultLat, c.DefaultLng)),
		Logger:       log,
		PollInterval: c.OrderPollInterval,
	})

	return &App{
		config: c,
		log:    log.With("component", "cli"),
		db:     db,
		ctrl:   ctrl,
		images: imgs,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the controller, then serves the REPL until exit, EOF or ctx
// cancellation. The controller is paused on the way out.
func (a *App) Run(ctx context.Context) error {
	printlnFn("Welcome to gophfood (type 'help' for commands)")

	if err := a.ctrl.Start(ctx); err != nil {
		a.log.Warn(ctx, "start failed", "error", err)
	}
	a.render(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchOrder(watchCtx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// the REPL may be blocked reading stdin; it dies with the process
	}

	a.ctrl.Pause(ctx)
	return nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// watchOrder prints order updates while the tracking screen is shown.
func (a *App) watchOrder(ctx context.Context) {
	var last string
	for o := range a.ctrl.Order().Watch(ctx) {
		if o == nil || a.ctrl.Screen().Get() != models.ScreenMyOrder {
			continue
		}
		line := formatOrder(o)
		if line != last {
			printlnFn(line)
			last = line
		}
	}
}

func (a *App) status() string {
	s := a.ctrl.Screen().Get().String()
	if id := a.ctrl.Identity(); id.IsRegistered {
		s += " registered"
	}
	return s
}

// report prints a command failure. Transitions to the Error screen are
// rendered separately, so only contract errors need a message here.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, controller.ErrInvalidTransition) {
		printlnFn("Not available here.")
	}
	return err
}
