package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/alfred-hue/internal/app"
	"github.com/cristianoliveira/alfred-hue/internal/bridge"
	"github.com/cristianoliveira/alfred-hue/internal/cache"
	"github.com/cristianoliveira/alfred-hue/internal/colors"
	"github.com/cristianoliveira/alfred-hue/internal/colorspace"
	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/presets"
	"github.com/cristianoliveira/alfred-hue/internal/query"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var bridgeLights = domain.Lights{
	{ID: "1", Name: "Desk", State: domain.LightState{On: true, Hue: 32768, Bri: 128, XY: [2]float64{0.3127, 0.329}, Reachable: true}},
	{ID: "2", Name: "Hallway", State: domain.LightState{Bri: 254, Reachable: true}},
}

// testServices wires real collaborators around a mocked bridge in a temp dir.
func testServices(t *testing.T, fetcher *bridge.MockFetcher) (servicesFactory, *cache.LightCache) {
	t.Helper()
	dir := t.TempDir()

	presetsDir := filepath.Join(dir, "presets")
	require.NoError(t, os.MkdirAll(filepath.Join(presetsDir, "evening"), 0o755))

	dbPath := filepath.Join(dir, "lights.db")
	factory := func() (*app.Services, error) {
		lc, err := cache.Open(dbPath)
		if err != nil {
			return nil, err
		}
		src := bridge.NewSource(fetcher, lc, nil)
		store := presets.NewStore(presetsDir)
		in, err := query.New(src, colorspace.NewConverter(), store)
		if err != nil {
			return nil, err
		}
		return &app.Services{Cache: lc, Source: src, Presets: store, Interpreter: in}, nil
	}

	inspect, err := cache.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inspect.Close() })
	return factory, inspect
}

func liveFetcher(lights domain.Lights, err error) *bridge.MockFetcher {
	f := new(bridge.MockFetcher)
	f.On("Lights", mock.Anything).Return(lights, err)
	return f
}

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := colors.SetOutput(&buf)
	t.Cleanup(func() { colors.SetOutput(prev) })
	return &buf
}

func seedCache(t *testing.T, lc *cache.LightCache, lights domain.Lights) {
	t.Helper()
	require.NoError(t, lc.Store(context.Background(), lights))
}
