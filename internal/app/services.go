// Package app wires the bridge, the light cache and the preset store into the
// use cases run by the CLI.
package app

import (
	"fmt"

	"github.com/cristianoliveira/alfred-hue/internal/bridge"
	"github.com/cristianoliveira/alfred-hue/internal/cache"
	"github.com/cristianoliveira/alfred-hue/internal/colorspace"
	"github.com/cristianoliveira/alfred-hue/internal/config"
	"github.com/cristianoliveira/alfred-hue/internal/logging"
	"github.com/cristianoliveira/alfred-hue/internal/presets"
	"github.com/cristianoliveira/alfred-hue/internal/query"
)

// Services holds the collaborators built from configuration.
type Services struct {
	Cache       *cache.LightCache
	Source      *bridge.Source
	Presets     *presets.Store
	Interpreter *query.Interpreter
}

// NewServicesFromConfig builds Services from the loaded configuration. A cache
// that cannot be opened is logged and skipped: every light read then goes to
// the bridge.
func NewServicesFromConfig() (*Services, error) {
	logger := logging.GetGlobal()

	client := bridge.NewClient(
		config.Get("bridge_host", ""),
		config.Get("bridge_username", ""),
		bridge.WithTimeout(config.GetDuration("bridge_timeout", bridge.DefaultTimeout)),
	)

	s := &Services{Presets: presets.NewStore(config.Get("presets_dir", ""))}

	var store bridge.SnapshotStore
	lc, err := cache.Open(config.Get("cache_path", ""))
	if err != nil {
		logger.Warn("light cache unavailable", "error", err)
	} else {
		s.Cache = lc
		store = lc
	}
	s.Source = bridge.NewSource(client, store, logger)

	s.Interpreter, err = query.New(s.Source, colorspace.NewConverter(), s.Presets,
		query.WithIconDir(config.Get("icons_dir", query.DefaultIconDir)),
		query.WithLogger(logger),
	)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("app: %w", err)
	}
	return s, nil
}

// Close releases the light cache.
func (s *Services) Close() error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Close()
}
