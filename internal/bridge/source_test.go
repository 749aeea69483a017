package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	liveLights   = domain.Lights{{ID: "1", Name: "Desk", State: domain.LightState{On: true}}}
	cachedLights = domain.Lights{{ID: "1", Name: "Desk (cached)"}}
)

func TestLiveLightsWritesThrough(t *testing.T) {
	fetcher := new(MockFetcher)
	store := new(MockStore)
	fetcher.On("Lights", mock.Anything).Return(liveLights, nil)
	store.On("Store", mock.Anything, liveLights).Return(nil)

	lights, err := NewSource(fetcher, store, nil).LiveLights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, liveLights, lights)
	store.AssertCalled(t, "Store", mock.Anything, liveLights)
}

func TestLiveLightsFailureSkipsStore(t *testing.T) {
	fetcher := new(MockFetcher)
	store := new(MockStore)
	fetcher.On("Lights", mock.Anything).Return(nil, ErrUnreachable)

	lights, err := NewSource(fetcher, store, nil).LiveLights(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
	assert.Empty(t, lights)
	store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestLiveLightsIgnoresStoreError(t *testing.T) {
	fetcher := new(MockFetcher)
	store := new(MockStore)
	fetcher.On("Lights", mock.Anything).Return(liveLights, nil)
	store.On("Store", mock.Anything, liveLights).Return(errors.New("disk full"))

	lights, err := NewSource(fetcher, store, nil).LiveLights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, liveLights, lights)
}

func TestCachedLightsPrefersStore(t *testing.T) {
	fetcher := new(MockFetcher)
	store := new(MockStore)
	store.On("Load", mock.Anything).Return(cachedLights, nil)

	lights, err := NewSource(fetcher, store, nil).CachedLights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cachedLights, lights)
	fetcher.AssertNotCalled(t, "Lights", mock.Anything)
}

func TestCachedLightsFallsBackToLive(t *testing.T) {
	tests := []struct {
		name    string
		loaded  domain.Lights
		loadErr error
	}{
		{"empty cache", nil, nil},
		{"unreadable cache", nil, errors.New("corrupt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			store := new(MockStore)
			store.On("Load", mock.Anything).Return(tt.loaded, tt.loadErr)
			store.On("Store", mock.Anything, liveLights).Return(nil)
			fetcher.On("Lights", mock.Anything).Return(liveLights, nil)

			lights, err := NewSource(fetcher, store, nil).CachedLights(context.Background())
			require.NoError(t, err)
			assert.Equal(t, liveLights, lights)
		})
	}
}

func TestSourceWithoutStore(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Lights", mock.Anything).Return(liveLights, nil)

	lights, err := NewSource(fetcher, nil, nil).CachedLights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, liveLights, lights)
	fetcher.AssertNumberOfCalls(t, "Lights", 1)
}

type recordingLogger struct {
	logging.Logger
	debug [][]any
}

func (r *recordingLogger) Debug(msg string, args ...any) {
	r.debug = append(r.debug, append([]any{msg}, args...))
}
func (r *recordingLogger) With(args ...any) logging.Logger { return r }

func TestLiveLightsLogsFetchedIDs(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Lights", mock.Anything).Return(domain.Lights{{ID: "1"}, {ID: "10"}}, nil)
	logger := &recordingLogger{Logger: logging.Nop()}

	_, err := NewSource(fetcher, nil, logger).LiveLights(context.Background())
	require.NoError(t, err)
	require.Len(t, logger.debug, 1)
	assert.Equal(t, []any{"live fetch", "lights", []string{"1", "10"}}, logger.debug[0])
}
