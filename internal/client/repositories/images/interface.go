package images

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// ErrNotFound is returned when no image is cached for a menu id.
var ErrNotFound = errors.New("image not cached")

// Repository describes the image cache operations used by the image service.
type Repository interface {
	// Upsert inserts the image or replaces the cached row for its MenuID.
	Upsert(ctx context.Context, img *models.ImageVersion) error

	// GetVersion returns the cached version for mid. ok is false when
	// nothing is cached.
	GetVersion(ctx context.Context, mid int) (version int, ok bool, err error)

	// Get returns the cached row for mid or ErrNotFound.
	Get(ctx context.Context, mid int) (*models.ImageVersion, error)

	// ListVersions returns every cached (mid, version) pair without payloads.
	ListVersions(ctx context.Context) ([]models.ImageVersion, error)
}
