package format

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/cristianoliveira/alfred-hue/internal/query"
)

type alfredIcon struct {
	Path string `json:"path"`
}

type alfredItem struct {
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	Valid        bool       `json:"valid"`
	Arg          string     `json:"arg,omitempty"`
	Autocomplete string     `json:"autocomplete,omitempty"`
	Icon         alfredIcon `json:"icon"`
}

type alfredResponse struct {
	Items []alfredItem `json:"items"`
}

// JSONFormatter writes the Alfred script filter JSON document.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatItems implements Formatter.
func (f *JSONFormatter) FormatItems(items []query.Item, w io.Writer) error {
	resp := alfredResponse{Items: make([]alfredItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, alfredItem{
			Title:        it.Title,
			Subtitle:     it.Subtitle,
			Valid:        it.Valid,
			Arg:          it.Arg,
			Autocomplete: it.Autocomplete,
			Icon:         alfredIcon{Path: it.Icon},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("format json: %w", err)
	}
	return nil
}

type xmlItem struct {
	XMLName      xml.Name `xml:"item"`
	Valid        string   `xml:"valid,attr"`
	Arg          string   `xml:"arg,attr,omitempty"`
	Autocomplete string   `xml:"autocomplete,attr,omitempty"`
	Title        string   `xml:"title"`
	Subtitle     string   `xml:"subtitle"`
	Icon         string   `xml:"icon"`
}

type xmlItems struct {
	XMLName xml.Name  `xml:"items"`
	Items   []xmlItem `xml:"item"`
}

// XMLFormatter writes the legacy Alfred script filter XML document.
type XMLFormatter struct{}

// NewXMLFormatter creates a new XMLFormatter.
func NewXMLFormatter() *XMLFormatter {
	return &XMLFormatter{}
}

// FormatItems implements Formatter.
func (f *XMLFormatter) FormatItems(items []query.Item, w io.Writer) error {
	doc := xmlItems{Items: make([]xmlItem, 0, len(items))}
	for _, it := range items {
		valid := "no"
		if it.Valid {
			valid = "yes"
		}
		doc.Items = append(doc.Items, xmlItem{
			Valid:        valid,
			Arg:          it.Arg,
			Autocomplete: it.Autocomplete,
			Title:        it.Title,
			Subtitle:     it.Subtitle,
			Icon:         it.Icon,
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("format xml: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("format xml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("format xml: %w", err)
	}
	return nil
}
