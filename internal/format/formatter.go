// Package format renders interpreter results for the launcher or a terminal.
package format

import (
	"io"

	"github.com/cristianoliveira/alfred-hue/internal/query"
)

// Formatter writes a result list.
type Formatter interface {
	FormatItems(items []query.Item, w io.Writer) error
}

// FormatterType names an output format.
type FormatterType string

const (
	// FormatterTypeJSON is the Alfred script filter JSON format.
	FormatterTypeJSON FormatterType = "json"

	// FormatterTypeXML is the legacy Alfred script filter XML format.
	FormatterTypeXML FormatterType = "xml"

	// FormatterTypeText is a human-readable listing for terminals.
	FormatterTypeText FormatterType = "text"
)

// NewFormatter creates a formatter of the given type. Unknown types fall back to JSON.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeXML:
		return NewXMLFormatter()
	case FormatterTypeText:
		return NewTextFormatter()
	default:
		return NewJSONFormatter()
	}
}
