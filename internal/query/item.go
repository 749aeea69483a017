package query

// Item is one selectable row returned to the launcher.
type Item struct {
	Title    string
	Subtitle string
	// Valid marks the item as an executable action rather than a menu to drill into.
	Valid bool
	// Arg is the command string executed when a valid item is selected.
	Arg string
	// Autocomplete is used for typeahead filtering and drill-down; it is never displayed.
	Autocomplete string
	Icon         string
}

// itemOption overrides one field of an item built from a template.
type itemOption func(*Item)

func withTitle(s string) itemOption        { return func(it *Item) { it.Title = s } }
func withSubtitle(s string) itemOption     { return func(it *Item) { it.Subtitle = s } }
func withValid(v bool) itemOption          { return func(it *Item) { it.Valid = v } }
func withArg(s string) itemOption          { return func(it *Item) { it.Arg = s } }
func withAutocomplete(s string) itemOption { return func(it *Item) { it.Autocomplete = s } }
func withIcon(s string) itemOption         { return func(it *Item) { it.Icon = s } }
