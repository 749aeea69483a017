// Package query turns a free-form, colon-delimited launcher query into the
// ordered list of items the launcher displays.
//
// Grammar:
//
//	""                          index view
//	lights:<text>               index view narrowed by <text>
//	lights:<id>:<text>          light action menu narrowed by <text>
//	lights:<id>:<func>:<value>  function sub-form (color, bri, effect, reminder, rename)
//	presets [<text>]            preset list narrowed by <text>
//
// <id> is a bridge light id or "all".
package query

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/logging"
	"github.com/cristianoliveira/alfred-hue/internal/ports"
)

// DefaultIconDir is where light, preset and help icons live, relative to the workflow.
const DefaultIconDir = "icons"

// Interpreter maps raw queries to result items. Each call builds its own
// result list; an Interpreter holds no per-query state.
type Interpreter struct {
	lights    ports.LightSource
	colors    ports.ColorConverter
	presets   ports.PresetLister
	icons     iconSet
	logger    logging.Logger
	templates templates
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithIconDir sets the icon directory.
func WithIconDir(dir string) Option {
	return func(in *Interpreter) {
		if dir != "" {
			in.icons = iconSet{dir: dir}
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.logger = l
		}
	}
}

// New creates an Interpreter and loads its templates.
func New(lights ports.LightSource, colors ports.ColorConverter, presets ports.PresetLister, opts ...Option) (*Interpreter, error) {
	if lights == nil || colors == nil || presets == nil {
		return nil, fmt.Errorf("query: light source, color converter and preset lister are required")
	}
	ts, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	in := &Interpreter{
		lights:    lights,
		colors:    colors,
		presets:   presets,
		icons:     iconSet{dir: DefaultIconDir},
		logger:    logging.Nop(),
		templates: ts,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.logger = in.logger.With("component", "query")
	return in, nil
}

// Interpret returns the items for raw. The result is never empty: when nothing
// matches, a single informational item is returned.
func (in *Interpreter) Interpret(ctx context.Context, raw string) []Item {
	cmd := Parse(raw)
	in.logger.Debug("interpret", "raw", raw, "scope", cmd.Scope.String())

	var items []Item
	switch cmd.Scope {
	case ScopeLights:
		items = in.Light(cmd.LightID, in.cachedLight(ctx, cmd.LightID), cmd.Sub)
	case ScopePresets:
		items = in.Presets(cmd.Partial)
	default:
		items = in.index(ctx, cmd)
	}

	if len(items) == 0 {
		rs := newResultSet(in.templates.index, in.icons, DefaultIcon)
		rs.add("no_match")
		items = rs.results()
	}
	return items
}

// cachedLight looks a light up in the cached snapshot; nil means unknown.
func (in *Interpreter) cachedLight(ctx context.Context, id string) *domain.Light {
	lights, err := in.lights.CachedLights(ctx)
	if err != nil {
		in.logger.Warn("cached lights unavailable", "error", err)
	}
	if l, ok := lights.Get(id); ok {
		return &l
	}
	return nil
}
