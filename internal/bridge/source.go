package bridge

import (
	"context"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/logging"
)

// SnapshotStore persists the last fetched light snapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Lights, error)
	Store(ctx context.Context, lights domain.Lights) error
}

// Source serves live and cached light snapshots.
type Source struct {
	fetcher LightFetcher
	store   SnapshotStore
	logger  logging.Logger
}

// NewSource creates a Source. store may be nil, in which case every read is live.
func NewSource(fetcher LightFetcher, store SnapshotStore, logger logging.Logger) *Source {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Source{fetcher: fetcher, store: store, logger: logger.With("component", "bridge")}
}

// LiveLights fetches from the bridge and writes the result through to the store.
func (s *Source) LiveLights(ctx context.Context) (domain.Lights, error) {
	lights, err := s.fetcher.Lights(ctx)
	if err != nil {
		s.logger.Warn("live fetch failed", "error", err)
		return nil, err
	}
	s.logger.Debug("live fetch", "lights", lights.IDs())

	if s.store != nil && len(lights) > 0 {
		if err := s.store.Store(ctx, lights); err != nil {
			s.logger.Warn("cache write failed", "error", err)
		}
	}
	return lights, nil
}

// CachedLights reads the stored snapshot, falling back to a live fetch when
// the store is empty or unreadable.
func (s *Source) CachedLights(ctx context.Context) (domain.Lights, error) {
	if s.store != nil {
		lights, err := s.store.Load(ctx)
		switch {
		case err != nil:
			s.logger.Warn("cache read failed", "error", err)
		case len(lights) > 0:
			return lights, nil
		}
	}
	return s.LiveLights(ctx)
}
