package query

import "path"

// DefaultIcon is the workflow icon used when nothing more specific applies.
const DefaultIcon = "icon.png"

// iconSet resolves icon file names inside the icon directory.
type iconSet struct {
	dir string
}

func (s iconSet) resolve(name string) string { return path.Join(s.dir, name) }
func (s iconSet) light(id string) string     { return s.resolve(id + ".png") }
func (s iconSet) off() string                { return s.resolve("off.png") }
func (s iconSet) preset() string             { return s.resolve("preset.png") }

// resultSet accumulates the items of one interpreter call, in display order.
type resultSet struct {
	templates   TemplateSet
	icons       iconSet
	defaultIcon string
	items       []Item
	partial     string
}

func newResultSet(ts TemplateSet, icons iconSet, defaultIcon string) *resultSet {
	return &resultSet{templates: ts, icons: icons, defaultIcon: defaultIcon}
}

// add builds an item from the named template (if any) with opts applied on
// top, falls back to the default icon, and appends it.
func (r *resultSet) add(name string, opts ...itemOption) Item {
	var it Item
	if t, ok := r.templates.Lookup(name); ok {
		it = Item{
			Title:        t.Title,
			Subtitle:     t.Subtitle,
			Valid:        t.Valid,
			Arg:          t.Arg,
			Autocomplete: t.Autocomplete,
		}
		if t.Icon != "" {
			it.Icon = r.icons.resolve(t.Icon)
		}
	}
	for _, opt := range opts {
		opt(&it)
	}
	if it.Icon == "" {
		it.Icon = r.defaultIcon
	}
	r.items = append(r.items, it)
	return it
}

// narrow sets the text typed so far at this menu level.
func (r *resultSet) narrow(partial string) {
	r.partial = partial
}

// results applies the autocomplete filter and returns the items.
func (r *resultSet) results() []Item {
	return Filter(r.items, r.partial)
}
