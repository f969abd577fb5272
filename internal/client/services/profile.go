package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// ProfileAPI is the slice of the gateway the profile service needs.
type ProfileAPI interface {
	Profile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, values models.ProfileFormValues) (*models.Profile, error)
}

// ProfileService defines profile read/write operations for the CLI.
//
// Contract:
//   - Get: fetch a profile by id, serving repeats from a short-lived cache.
//   - Update: save the caller's own profile and drop every stale cache
//     entry, including cached browse listings.
//
// All methods must honor context cancellation/timeouts.
type ProfileService interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, values models.ProfileFormValues) (*models.Profile, error)
}

type profileService struct {
	api    ProfileAPI
	cache  *gocache.Cache
	browse BrowseService
}

// NewProfileService constructs a ProfileService. browse may be nil when
// no listing cache needs invalidating on updates.
func NewProfileService(a ProfileAPI, ttl time.Duration, browse BrowseService) ProfileService {
	return &profileService{
		api:    a,
		cache:  gocache.New(ttl, 2*ttl),
		browse: browse,
	}
}

func (s *profileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	if v, ok := s.cache.Get(id); ok {
		return v.(*models.Profile), nil
	}

	p, err := s.api.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(id, p, gocache.DefaultExpiration)
	return p, nil
}

func (s *profileService) Update(ctx context.Context, values models.ProfileFormValues) (*models.Profile, error) {
	p, err := s.api.UpdateProfile(ctx, values)
	if err != nil {
		return nil, err
	}

	// An edit changes what listings and cached profiles would show.
	s.cache.Flush()
	if s.browse != nil {
		s.browse.Invalidate()
	}
	return p, nil
}
