package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplateSet(t *testing.T) {
	tests := []struct {
		scope Scope
		names []string
	}{
		{scope: ScopeIndex, names: []string{"help", "bridge_failed", "all_lights", "presets", "no_match"}},
		{scope: ScopeLights, names: []string{"all_off", "all_on", "light_off", "light_on", "set_color",
			"color_picker", "set_effect", "effect_none", "color_loop", "set_brightness", "set_reminder",
			"reminder", "light_rename"}},
		{scope: ScopePresets, names: []string{"preset", "no_presets"}},
	}
	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			ts, err := LoadTemplateSet(tt.scope)
			require.NoError(t, err)
			for _, name := range tt.names {
				_, ok := ts.Lookup(name)
				assert.True(t, ok, "missing template %q", name)
			}
		})
	}
}

func TestParseTemplateSet(t *testing.T) {
	ts, err := ParseTemplateSet([]byte("x:\n  title: X\n  valid: true\n  icon: x.png\n"))
	require.NoError(t, err)
	assert.Equal(t, Template{Title: "X", Valid: true, Icon: "x.png"}, ts["x"])

	_, err = ParseTemplateSet([]byte("x:\n  subtitle: no title\n"))
	assert.ErrorContains(t, err, `"x" has no title`)

	_, err = ParseTemplateSet([]byte("x: [1, 2"))
	assert.Error(t, err)
}

func TestResultSetAdd(t *testing.T) {
	ts := TemplateSet{"t": {Title: "T", Subtitle: "S", Icon: "t.png"}}
	rs := newResultSet(ts, iconSet{dir: "icons"}, "fallback.png")

	it := rs.add("t", withSubtitle(""), withValid(true), withArg("go"))
	assert.Equal(t, Item{Title: "T", Valid: true, Arg: "go", Icon: "icons/t.png"}, it)

	it = rs.add("unknown", withTitle("U"))
	assert.Equal(t, "fallback.png", it.Icon)
	assert.Len(t, rs.results(), 2)
}
