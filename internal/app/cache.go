package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cristianoliveira/alfred-hue/internal/bridge"
	"github.com/cristianoliveira/alfred-hue/internal/colors"
	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/format"
	"github.com/cristianoliveira/alfred-hue/internal/search"
)

// ErrNoCache is returned by cache commands when the light cache could not be opened.
var ErrNoCache = errors.New("light cache unavailable")

// RefreshClient fetches a live snapshot, storing it as a side effect.
type RefreshClient interface {
	LiveLights(ctx context.Context) (domain.Lights, error)
}

// RefreshUseCase refreshes the cached light snapshot from the bridge.
type RefreshUseCase struct {
	client RefreshClient
}

// NewRefreshUseCase creates a new refresh use-case.
func NewRefreshUseCase(client RefreshClient) *RefreshUseCase {
	if client == nil {
		panic("NewRefreshUseCase: client dependency cannot be nil")
	}
	return &RefreshUseCase{client: client}
}

// Execute fetches the lights and reports how many were cached.
func (u *RefreshUseCase) Execute(ctx context.Context) (int, error) {
	lights, err := u.client.LiveLights(ctx)
	if err != nil {
		if bridge.IsConfigError(err) {
			return 0, fmt.Errorf("refresh: %w (set bridge_host and bridge_username)", err)
		}
		return 0, fmt.Errorf("refresh: %w", err)
	}
	if len(lights) == 0 {
		return 0, fmt.Errorf("refresh: bridge reported no lights")
	}
	colors.Success(fmt.Sprintf("cached %d lights", len(lights)))
	return len(lights), nil
}

// SnapshotReader reads the cached light snapshot.
type SnapshotReader interface {
	Load(ctx context.Context) (domain.Lights, error)
	UpdatedAt(ctx context.Context) (time.Time, error)
}

// ShowInput represents cache show inputs.
type ShowInput struct {
	// Prefix limits the listing to lights whose name starts with it.
	Prefix string
}

// ShowUseCase prints the cached light snapshot.
type ShowUseCase struct {
	reader  SnapshotReader
	out     io.Writer
	matcher search.Provider
	now     func() time.Time
}

// NewShowUseCase creates a new show use-case. reader may be nil when no cache is open.
func NewShowUseCase(reader SnapshotReader, out io.Writer) *ShowUseCase {
	return &ShowUseCase{
		reader:  reader,
		out:     out,
		matcher: search.NewPrefixProvider(search.WithCaseInsensitive(true)),
		now:     time.Now,
	}
}

// Execute writes the matching cached lights and the snapshot age.
func (u *ShowUseCase) Execute(ctx context.Context, input ShowInput) error {
	if u.reader == nil {
		return ErrNoCache
	}
	lights, err := u.reader.Load(ctx)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	if len(lights) == 0 {
		colors.Info("light cache is empty; run 'alfred-hue cache refresh'")
		return nil
	}

	matched := lights
	if input.Prefix != "" {
		matched = make(domain.Lights, 0, len(lights))
		for _, l := range lights {
			if u.matcher.Match(l.Name, input.Prefix) {
				matched = append(matched, l)
			}
		}
	}
	if len(matched) == 0 {
		colors.Info(fmt.Sprintf("no cached light name starts with %q", input.Prefix))
		return nil
	}

	if err := format.FormatLights(matched, u.out); err != nil {
		return fmt.Errorf("show: %w", err)
	}

	updated, err := u.reader.UpdatedAt(ctx)
	if err == nil && !updated.IsZero() {
		age := u.now().Sub(updated).Truncate(time.Second)
		fmt.Fprintf(u.out, "\nupdated %s ago (%s)\n", age, updated.Format(time.RFC3339))
	}
	return nil
}

// SnapshotClearer drops the cached light snapshot.
type SnapshotClearer interface {
	Clear(ctx context.Context) error
}

// ClearUseCase empties the light cache.
type ClearUseCase struct {
	clearer SnapshotClearer
}

// NewClearUseCase creates a new clear use-case. clearer may be nil when no cache is open.
func NewClearUseCase(clearer SnapshotClearer) *ClearUseCase {
	return &ClearUseCase{clearer: clearer}
}

// Execute clears the cache.
func (u *ClearUseCase) Execute(ctx context.Context) error {
	if u.clearer == nil {
		return ErrNoCache
	}
	if err := u.clearer.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	colors.Success("light cache cleared")
	return nil
}
