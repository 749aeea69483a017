package bridge

import (
	"context"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockFetcher is a testify mock of LightFetcher.
//
//	fetcher := new(MockFetcher)
//	fetcher.On("Lights", mock.Anything).Return(domain.Lights{{ID: "1"}}, nil)
type MockFetcher struct {
	mock.Mock
}

// Lights returns the configured snapshot.
func (m *MockFetcher) Lights(ctx context.Context) (domain.Lights, error) {
	args := m.Called(ctx)
	lights, _ := args.Get(0).(domain.Lights)
	return lights, args.Error(1)
}

// MockStore is a testify mock of SnapshotStore.
type MockStore struct {
	mock.Mock
}

// Load returns the configured snapshot.
func (m *MockStore) Load(ctx context.Context) (domain.Lights, error) {
	args := m.Called(ctx)
	lights, _ := args.Get(0).(domain.Lights)
	return lights, args.Error(1)
}

// Store records the stored snapshot.
func (m *MockStore) Store(ctx context.Context, lights domain.Lights) error {
	return m.Called(ctx, lights).Error(0)
}
