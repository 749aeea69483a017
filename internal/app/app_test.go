package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cristianoliveira/alfred-hue/internal/bridge"
	"github.com/cristianoliveira/alfred-hue/internal/colors"
	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureColors(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := colors.SetOutput(&buf)
	t.Cleanup(func() { colors.SetOutput(prev) })
	return &buf
}

type fakeQueryClient struct{ raw string }

func (f *fakeQueryClient) Interpret(ctx context.Context, raw string) []query.Item {
	f.raw = raw
	return []query.Item{{Title: "Presets", Autocomplete: "presets", Icon: "icon.png"}}
}

func TestQueryUseCase(t *testing.T) {
	client := &fakeQueryClient{}
	var out bytes.Buffer

	err := NewQueryUseCase(client, &out).Execute(context.Background(), QueryInput{
		Words:  []string{"presets", "late", "night"},
		Format: "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "presets late night", client.raw)
	assert.JSONEq(t, `{"items":[{"title":"Presets","subtitle":"","valid":false,"autocomplete":"presets","icon":{"path":"icon.png"}}]}`, out.String())
}

func TestQueryUseCaseNilClientPanics(t *testing.T) {
	assert.Panics(t, func() { NewQueryUseCase(nil, &bytes.Buffer{}) })
}

type fakeRefresher struct {
	lights domain.Lights
	err    error
}

func (f fakeRefresher) LiveLights(context.Context) (domain.Lights, error) { return f.lights, f.err }

func TestRefreshUseCase(t *testing.T) {
	tests := []struct {
		name    string
		client  fakeRefresher
		want    int
		wantErr string
	}{
		{name: "ok", client: fakeRefresher{lights: domain.Lights{{ID: "1"}, {ID: "2"}}}, want: 2},
		{name: "empty", client: fakeRefresher{}, wantErr: "no lights"},
		{name: "not configured", client: fakeRefresher{err: bridge.ErrNotConfigured}, wantErr: "bridge_host"},
		{name: "unreachable", client: fakeRefresher{err: bridge.ErrUnreachable}, wantErr: "refresh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := captureColors(t)
			n, err := NewRefreshUseCase(tt.client).Execute(context.Background())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Contains(t, stderr.String(), "cached 2 lights")
		})
	}
}

type fakeSnapshot struct {
	lights  domain.Lights
	updated time.Time
	loadErr error
	cleared bool
}

func (f *fakeSnapshot) Load(context.Context) (domain.Lights, error)   { return f.lights, f.loadErr }
func (f *fakeSnapshot) UpdatedAt(context.Context) (time.Time, error) { return f.updated, nil }
func (f *fakeSnapshot) Clear(context.Context) error                  { f.cleared = true; return nil }

func TestShowUseCase(t *testing.T) {
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	snap := &fakeSnapshot{
		lights: domain.Lights{
			{ID: "1", Name: "Desk", State: domain.LightState{On: true, Reachable: true}},
			{ID: "2", Name: "Dining", State: domain.LightState{Reachable: true}},
			{ID: "3", Name: "Hallway", State: domain.LightState{Reachable: true}},
		},
		updated: updated,
	}

	tests := []struct {
		name    string
		prefix  string
		want    []string
		notWant []string
	}{
		{name: "all", want: []string{"Desk", "Dining", "Hallway"}},
		{name: "prefix", prefix: "d", want: []string{"Desk", "Dining"}, notWant: []string{"Hallway"}},
		{name: "case insensitive", prefix: "HALL", want: []string{"Hallway"}, notWant: []string{"Desk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			uc := NewShowUseCase(snap, &out)
			uc.now = func() time.Time { return updated.Add(90 * time.Second) }

			require.NoError(t, uc.Execute(context.Background(), ShowInput{Prefix: tt.prefix}))
			for _, s := range tt.want {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out.String(), s)
			}
			assert.Contains(t, out.String(), "updated 1m30s ago")
		})
	}
}

func TestShowUseCaseNoMatch(t *testing.T) {
	stderr := captureColors(t)
	var out bytes.Buffer
	snap := &fakeSnapshot{lights: domain.Lights{{ID: "1", Name: "Desk"}}}

	require.NoError(t, NewShowUseCase(snap, &out).Execute(context.Background(), ShowInput{Prefix: "zz"}))
	assert.Empty(t, out.String())
	assert.Contains(t, stderr.String(), `no cached light name starts with "zz"`)
}

func TestShowUseCaseEmptyAndErrors(t *testing.T) {
	stderr := captureColors(t)
	var out bytes.Buffer

	require.NoError(t, NewShowUseCase(&fakeSnapshot{}, &out).Execute(context.Background(), ShowInput{}))
	assert.Contains(t, stderr.String(), "light cache is empty")

	err := NewShowUseCase(&fakeSnapshot{loadErr: errors.New("boom")}, &out).Execute(context.Background(), ShowInput{})
	assert.ErrorContains(t, err, "boom")

	err = NewShowUseCase(nil, &out).Execute(context.Background(), ShowInput{})
	assert.ErrorIs(t, err, ErrNoCache)
}

func TestClearUseCase(t *testing.T) {
	captureColors(t)
	snap := &fakeSnapshot{}
	require.NoError(t, NewClearUseCase(snap).Execute(context.Background()))
	assert.True(t, snap.cleared)

	assert.ErrorIs(t, NewClearUseCase(nil).Execute(context.Background()), ErrNoCache)
}
