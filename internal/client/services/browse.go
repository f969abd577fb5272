// Package services contains application services for the Matcha client.
// They sit between the command layer and the gateway: caching, retry
// policy, and cache invalidation live here, never in the gateway itself.
package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/matcha/internal/client/api"
	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// browseMaxRetries bounds how often a listing fetch is repeated after a
// network failure. Backend verdicts (4xx/5xx) are never retried.
const browseMaxRetries = 2

// BrowseAPI is the slice of the gateway the browse service needs.
type BrowseAPI interface {
	Browse(ctx context.Context, q api.BrowseQuery) ([]models.PublicProfile, error)
}

// BrowseService defines the profile-listing operations for the CLI.
//
// Contract:
//   - List: fetch profiles matching a query, serving repeats from a
//     short-lived cache and retrying transient network failures.
//   - Invalidate: drop every cached listing (e.g. after a profile edit).
//
// All methods must honor context cancellation/timeouts.
type BrowseService interface {
	List(ctx context.Context, q api.BrowseQuery) ([]models.PublicProfile, error)
	Invalidate()
}

type browseService struct {
	api   BrowseAPI
	cache *gocache.Cache
}

// NewBrowseService constructs a BrowseService whose cache entries live
// for ttl.
func NewBrowseService(a BrowseAPI, ttl time.Duration) BrowseService {
	return &browseService{
		api:   a,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *browseService) List(ctx context.Context, q api.BrowseQuery) ([]models.PublicProfile, error) {
	key := q.CacheKey()
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.PublicProfile), nil
	}

	var profiles []models.PublicProfile
	backoff := retry.WithMaxRetries(browseMaxRetries, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := s.api.Browse(ctx, q)
		if err != nil {
			if api.IsNetworkError(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		profiles = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, profiles, gocache.DefaultExpiration)
	return profiles, nil
}

func (s *browseService) Invalidate() {
	s.cache.Flush()
}
