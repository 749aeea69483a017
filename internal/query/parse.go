package query

import "strings"

// Scope is the top-level command category of a query.
type Scope int

const (
	ScopeIndex Scope = iota
	ScopeLights
	ScopePresets
)

func (s Scope) String() string {
	switch s {
	case ScopeLights:
		return "lights"
	case ScopePresets:
		return "presets"
	default:
		return "index"
	}
}

// Light functions understood after lights:<id>:.
const (
	FuncColor    = "color"
	FuncBri      = "bri"
	FuncEffect   = "effect"
	FuncReminder = "reminder"
	FuncRename   = "rename"
)

const segmentSep = ":"

// Command is a parsed raw query.
type Command struct {
	Scope Scope
	// LightID is set for ScopeLights.
	LightID string
	// Sub is the light sub-query: everything after lights:<id>:.
	Sub string
	// Partial narrows the index or presets view.
	Partial string
}

// LightQuery is a parsed light sub-query.
type LightQuery struct {
	// Function is empty for the action menu.
	Function string
	Value    string
	// Partial narrows the action menu.
	Partial string
}

// Menu reports whether the query selects the action menu.
func (q LightQuery) Menu() bool {
	return q.Function == ""
}

// cursor walks the segments of a separated string.
type cursor struct {
	segs []string
	sep  string
	pos  int
}

func newCursor(s, sep string) *cursor {
	return &cursor{segs: strings.Split(s, sep), sep: sep}
}

// remaining counts the segments not consumed yet.
func (c *cursor) remaining() int {
	return len(c.segs) - c.pos
}

// next consumes one segment; it yields "" once the input is exhausted.
func (c *cursor) next() string {
	if c.pos >= len(c.segs) {
		return ""
	}
	s := c.segs[c.pos]
	c.pos++
	return s
}

// rest consumes and re-joins all remaining segments.
func (c *cursor) rest() string {
	if c.pos >= len(c.segs) {
		return ""
	}
	s := strings.Join(c.segs[c.pos:], c.sep)
	c.pos = len(c.segs)
	return s
}

// Parse classifies a raw query. It never fails: anything unrecognized is the
// index view.
func Parse(raw string) Command {
	switch {
	case strings.HasPrefix(raw, ScopeLights.String()):
		return parseLights(raw)
	case strings.HasPrefix(raw, ScopePresets.String()):
		return parsePresets(raw)
	default:
		return Command{Scope: ScopeIndex}
	}
}

// parseLights handles lights:<id>:<sub>. With fewer than three segments the
// query stays on the index and lights:<text> narrows it.
func parseLights(raw string) Command {
	c := newCursor(raw, segmentSep)
	if c.remaining() < 3 {
		cmd := Command{Scope: ScopeIndex}
		if strings.HasPrefix(raw, ScopeLights.String()+segmentSep) {
			c.next()
			cmd.Partial = c.next()
		}
		return cmd
	}
	c.next()
	id := c.next()
	return Command{Scope: ScopeLights, LightID: id, Sub: c.rest()}
}

// parsePresets handles "presets <text>"; the words after the first are the partial query.
func parsePresets(raw string) Command {
	c := newCursor(raw, " ")
	c.next()
	return Command{Scope: ScopePresets, Partial: c.rest()}
}

// ParseLightQuery splits a light sub-query into function and value. A single
// segment is the action menu narrowed by that segment; segments after the
// value are ignored.
func ParseLightQuery(sub string) LightQuery {
	c := newCursor(sub, segmentSep)
	head := c.next()
	if c.remaining() == 0 {
		return LightQuery{Partial: head}
	}
	return LightQuery{Function: head, Value: c.next()}
}

// lightCommand builds lights:<id>:<parts...>.
func lightCommand(id string, parts ...string) string {
	return strings.Join(append([]string{ScopeLights.String(), id}, parts...), segmentSep)
}
