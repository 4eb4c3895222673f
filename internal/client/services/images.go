package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/metrics"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/client/repositories/images"
	"github.com/dmitrijs2005/gophfood/internal/logging"
	"golang.org/x/sync/errgroup"
)

const defaultPrewarmConcurrency = 4

// ImageService keeps the local image cache in step with the backend's
// per-menu image version.
type ImageService struct {
	client      client.Client
	repo        images.Repository
	log         logging.Logger
	concurrency int
}

// NewImageService builds the service. concurrency bounds the number of
// parallel downloads during Prewarm; values below 1 use the default.
func NewImageService(c client.Client, repo images.Repository, log logging.Logger, concurrency int) *ImageService {
	if concurrency < 1 {
		concurrency = defaultPrewarmConcurrency
	}
	return &ImageService{
		client:      c,
		repo:        repo,
		log:         log.With("component", "images"),
		concurrency: concurrency,
	}
}

// Resolve returns the image for mid at the given server version. A cached
// payload with a matching version is returned without touching the network.
// Otherwise the payload is downloaded and replaces the cached row.
//
// Cache read and write failures degrade to a download and are only logged;
// only a failed download is returned as an error.
func (s *ImageService) Resolve(ctx context.Context, sid string, mid, version int) (string, error) {
	cached, ok, err := s.repo.GetVersion(ctx, mid)
	if err != nil {
		s.log.Warn(ctx, "image cache read failed", "mid", mid, "error", err)
		ok = false
	}

	if ok && cached == version {
		img, err := s.repo.Get(ctx, mid)
		if err == nil {
			metrics.ImageCacheHit()
			return img.Payload, nil
		}
		s.log.Warn(ctx, "image cache read failed", "mid", mid, "error", err)
	}

	metrics.ImageCacheMiss()
	payload, err := s.client.GetMenuImage(ctx, sid, mid)
	if err != nil {
		return "", fmt.Errorf("fetch image %d: %w", mid, err)
	}

	if err := s.repo.Upsert(ctx, &models.ImageVersion{MenuID: mid, Version: version, Payload: payload}); err != nil {
		s.log.Warn(ctx, "image cache write failed", "mid", mid, "version", version, "error", err)
	}
	return payload, nil
}

// Prewarm resolves the image of every menu in the list. A failure for one
// menu is logged and does not stop the others. It returns the number of
// menus whose image was resolved.
func (s *ImageService) Prewarm(ctx context.Context, sid string, menus []models.MenuSummary) int {
	var (
		g  errgroup.Group
		ok atomic.Int64
	)
	g.SetLimit(s.concurrency)

	for _, m := range menus {
		m := m
		g.Go(func() error {
			if _, err := s.Resolve(ctx, sid, m.MenuID, m.ImageVersion); err != nil {
				s.log.Warn(ctx, "prewarm: image skipped", "mid", m.MenuID, "error", err)
				return nil
			}
			ok.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return int(ok.Load())
}

// Cached lists the cached (mid, version) pairs, ordered by menu id.
func (s *ImageService) Cached(ctx context.Context) ([]models.ImageVersion, error) {
	return s.repo.ListVersions(ctx)
}
