// Package location provides the device position behind a permission gate.
package location

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

var ErrPermissionDenied = errors.New("location permission denied")

// Source yields a single position fix.
type Source interface {
	Current(ctx context.Context) (models.Location, error)
}

// Static always reports the same coordinates. The terminal client uses it
// in place of a GPS receiver.
type Static struct {
	Loc models.Location
}

func NewStatic(lat, lng float64) *Static {
	return &Static{Loc: models.Location{Lat: lat, Lng: lng}}
}

func (s *Static) Current(ctx context.Context) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	return s.Loc, nil
}

// Provider wraps a Source and refuses to read it until permission has been
// granted.
type Provider struct {
	mu      sync.RWMutex
	granted bool
	src     Source
}

func NewProvider(src Source) *Provider {
	return &Provider{src: src}
}

// SetPermission records the outcome of the permission prompt.
func (p *Provider) SetPermission(granted bool) {
	p.mu.Lock()
	p.granted = granted
	p.mu.Unlock()
}

func (p *Provider) Granted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.granted
}

// Current returns one fix from the source, or ErrPermissionDenied.
func (p *Provider) Current(ctx context.Context) (models.Location, error) {
	if !p.Granted() {
		return models.Location{}, ErrPermissionDenied
	}
	return p.src.Current(ctx)
}
