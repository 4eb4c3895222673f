// Package identity persists the device session: session id, user id, active
// order id, last viewed menu, last known coordinates, registration flag and
// last screen. Values are stored as text in the metadata key/value table; the
// store applies the documented defaults for keys that were never written.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophfood/internal/dbx"
)

// Persistence keys.
const (
	KeySessionID        = "sessionId"
	KeyUserID           = "userId"
	KeyActiveOrderID    = "activeOrderId"
	KeyLastViewedMenuID = "lastViewedMenuId"
	KeyLastLat          = "lastLat"
	KeyLastLng          = "lastLng"
	KeyIsRegistered     = "isRegistered"
	KeyLastScreen       = "lastScreen"
)

// ErrCorrupt is returned when a persisted value cannot be decoded.
var ErrCorrupt = errors.New("corrupt identity value")

// Store is the typed view over the metadata repository.
type Store struct {
	kv metadata.Repository
	db *sql.DB
}

// NewStore wraps an arbitrary key/value repository. Multi-key writes are
// applied one key at a time.
func NewStore(kv metadata.Repository) *Store {
	return &Store{kv: kv}
}

// NewSQLiteStore builds a store over db; registration writes share one
// transaction.
func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{kv: metadata.NewSQLiteRepository(db), db: db}
}

func (s *Store) SessionID(ctx context.Context) (string, error) {
	v, err := s.kv.Get(ctx, KeySessionID)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetSessionID(ctx context.Context, sid string) error {
	return s.kv.Set(ctx, KeySessionID, []byte(sid))
}

func (s *Store) UserID(ctx context.Context) (int, error) {
	return s.getInt(ctx, KeyUserID, models.NoUserID)
}

func (s *Store) SetUserID(ctx context.Context, uid int) error {
	return s.setInt(ctx, KeyUserID, uid)
}

func (s *Store) ActiveOrderID(ctx context.Context) (int, error) {
	return s.getInt(ctx, KeyActiveOrderID, models.NoOrderID)
}

func (s *Store) SetActiveOrderID(ctx context.Context, oid int) error {
	return s.setInt(ctx, KeyActiveOrderID, oid)
}

func (s *Store) LastViewedMenuID(ctx context.Context) (int, error) {
	return s.getInt(ctx, KeyLastViewedMenuID, models.NoMenuID)
}

func (s *Store) SetLastViewedMenuID(ctx context.Context, mid int) error {
	return s.setInt(ctx, KeyLastViewedMenuID, mid)
}

// LastLocation returns the last saved coordinates, or nil if none were saved.
func (s *Store) LastLocation(ctx context.Context) (*models.Location, error) {
	lat, okLat, err := s.getFloat(ctx, KeyLastLat)
	if err != nil {
		return nil, err
	}
	lng, okLng, err := s.getFloat(ctx, KeyLastLng)
	if err != nil {
		return nil, err
	}
	if !okLat || !okLng {
		return nil, nil
	}
	return &models.Location{Lat: lat, Lng: lng}, nil
}

func (s *Store) SetLastLocation(ctx context.Context, loc models.Location) error {
	if err := s.kv.Set(ctx, KeyLastLat, []byte(strconv.FormatFloat(loc.Lat, 'f', -1, 64))); err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyLastLng, []byte(strconv.FormatFloat(loc.Lng, 'f', -1, 64)))
}

func (s *Store) IsRegistered(ctx context.Context) (bool, error) {
	v, err := s.kv.Get(ctx, KeyIsRegistered)
	if err != nil || v == nil {
		return false, err
	}
	b, err := strconv.ParseBool(string(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrCorrupt, KeyIsRegistered, v)
	}
	return b, nil
}

func (s *Store) SetRegistered(ctx context.Context, registered bool) error {
	return s.kv.Set(ctx, KeyIsRegistered, []byte(strconv.FormatBool(registered)))
}

// LastScreen returns the screen saved on the last pause. ok is false if no
// screen was ever saved, in which case screen is Home.
func (s *Store) LastScreen(ctx context.Context) (screen models.Screen, ok bool, err error) {
	v, err := s.kv.Get(ctx, KeyLastScreen)
	if err != nil {
		return models.ScreenHome, false, err
	}
	if v == nil {
		return models.ScreenHome, false, nil
	}
	screen, err = models.ParseScreen(string(v))
	if err != nil {
		return models.ScreenHome, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return screen, true, nil
}

func (s *Store) SetLastScreen(ctx context.Context, screen models.Screen) error {
	return s.kv.Set(ctx, KeyLastScreen, []byte(screen.String()))
}

// SaveRegistration persists the session id and user id issued by the
// backend. With an SQLite store both keys are written in one transaction.
func (s *Store) SaveRegistration(ctx context.Context, reg models.Registration) error {
	write := func(ctx context.Context, kv metadata.Repository) error {
		if err := kv.Set(ctx, KeySessionID, []byte(reg.SessionID)); err != nil {
			return err
		}
		return kv.Set(ctx, KeyUserID, []byte(strconv.Itoa(reg.UserID)))
	}

	if s.db == nil {
		return write(ctx, s.kv)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return write(ctx, metadata.NewSQLiteRepository(tx))
	})
}

// Load reads the whole identity, applying defaults for unset keys.
func (s *Store) Load(ctx context.Context) (models.Identity, error) {
	id := models.NewIdentity()
	var err error

	if id.SessionID, err = s.SessionID(ctx); err != nil {
		return id, err
	}
	if id.UserID, err = s.UserID(ctx); err != nil {
		return id, err
	}
	if id.ActiveOrderID, err = s.ActiveOrderID(ctx); err != nil {
		return id, err
	}
	if id.LastLocation, err = s.LastLocation(ctx); err != nil {
		return id, err
	}
	if id.IsRegistered, err = s.IsRegistered(ctx); err != nil {
		return id, err
	}
	if id.LastScreen, _, err = s.LastScreen(ctx); err != nil {
		return id, err
	}
	return id, nil
}

func (s *Store) getInt(ctx context.Context, key string, def int) (int, error) {
	v, err := s.kv.Get(ctx, key)
	if err != nil {
		return def, err
	}
	if v == nil {
		return def, nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrCorrupt, key, v)
	}
	return n, nil
}

func (s *Store) setInt(ctx context.Context, key string, n int) error {
	return s.kv.Set(ctx, key, []byte(strconv.Itoa(n)))
}

func (s *Store) getFloat(ctx context.Context, key string) (float64, bool, error) {
	v, err := s.kv.Get(ctx, key)
	if err != nil || v == nil {
		return 0, false, err
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrCorrupt, key, v)
	}
	return f, true, nil
}
