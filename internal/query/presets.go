package query

// Presets lists saved presets narrowed by partial, or a notice when there are none.
func (in *Interpreter) Presets(partial string) []Item {
	rs := newResultSet(in.templates.presets, in.icons, in.icons.preset())
	rs.narrow(partial)

	names, err := in.presets.PresetNames()
	if err != nil {
		in.logger.Warn("presets unavailable", "error", err)
	}
	for _, name := range names {
		rs.add("preset",
			withTitle(name),
			withAutocomplete(name),
			withArg(ScopePresets.String()+":load:"+name))
	}
	if len(names) == 0 {
		rs.add("no_presets")
	}
	return rs.results()
}
