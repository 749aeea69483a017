package query

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// Template holds the default field values of a named item.
type Template struct {
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	Valid        bool   `yaml:"valid"`
	Arg          string `yaml:"arg"`
	Autocomplete string `yaml:"autocomplete"`
	// Icon is a file name relative to the icon directory.
	Icon string `yaml:"icon"`
}

// TemplateSet maps template names to templates for one scope.
type TemplateSet map[string]Template

// Lookup returns the named template.
func (ts TemplateSet) Lookup(name string) (Template, bool) {
	t, ok := ts[name]
	return t, ok
}

type templates struct {
	index   TemplateSet
	lights  TemplateSet
	presets TemplateSet
}

func loadTemplates() (templates, error) {
	var t templates
	var err error
	if t.index, err = LoadTemplateSet(ScopeIndex); err != nil {
		return templates{}, err
	}
	if t.lights, err = LoadTemplateSet(ScopeLights); err != nil {
		return templates{}, err
	}
	if t.presets, err = LoadTemplateSet(ScopePresets); err != nil {
		return templates{}, err
	}
	return t, nil
}

// LoadTemplateSet parses the embedded templates of a scope.
func LoadTemplateSet(scope Scope) (TemplateSet, error) {
	path := "templates/" + scope.String() + ".yaml"
	data, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("templates: read %s: %w", path, err)
	}
	return ParseTemplateSet(data)
}

// ParseTemplateSet parses a YAML mapping of template name to fields.
// Every template needs a title.
func ParseTemplateSet(data []byte) (TemplateSet, error) {
	var ts TemplateSet
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("templates: parse: %w", err)
	}
	for name, t := range ts {
		if t.Title == "" {
			return nil, fmt.Errorf("templates: %q has no title", name)
		}
	}
	return ts, nil
}
