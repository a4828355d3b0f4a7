// Package render turns API collections into declarative table views.
//
// Renderers are pure: they take a complete collection and return a fresh
// Table describing every row. Nothing is merged with a previous render and
// nothing is drawn here; adapters in internal/ui turn a Table into terminal
// text. Two policies hold for every renderer:
//
//   - an empty collection yields exactly one placeholder row whose single
//     cell spans all columns
//   - a missing field is shown as a literal fallback (FallbackNA,
//     FallbackUnknown, FallbackNoDetails), never omitted
package render

import (
	"strconv"

	"github.com/sentinel-lite/sentinel/internal/api"
)

// Fallback strings for absent values.
const (
	FallbackNA        = "N/A"
	FallbackUnknown   = "Unknown"
	FallbackNoDetails = "No details"
)

// Tone is the semantic emphasis of a cell. Adapters decide what it looks like.
type Tone int

const (
	ToneDefault Tone = iota
	ToneMuted
	ToneInfo
	ToneSuccess
	ToneWarning
	ToneDanger
	ToneCritical
)

// String returns the tone name, mainly for test output.
func (t Tone) String() string {
	switch t {
	case ToneDefault:
		return "default"
	case ToneMuted:
		return "muted"
	case ToneInfo:
		return "info"
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	case ToneDanger:
		return "danger"
	case ToneCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Column is a table column with a preferred width in cells.
type Column struct {
	Title string
	Width int
}

// Cell is one table cell. Span is the number of columns it covers (1 when
// unset).
type Cell struct {
	Text string
	Span int
	Tone Tone
}

// Row is one table row. Key is the record identifier the row was built from
// and Label its human name; placeholder rows have neither. State carries the
// record's actionable state as a wire value (a rule's "enabled"/"disabled", an alert's status) so actions
// on the row don't need the record itself.
type Row struct {
	Key         api.ID
	Label       string
	State       string
	Cells       []Cell
	Placeholder bool
}

// Table is a complete replacement view for one section's container.
type Table struct {
	Title   string
	Columns []Column
	Rows    []Row
}

// IsPlaceholder reports whether the table holds only the empty-collection row.
func (t Table) IsPlaceholder() bool {
	return len(t.Rows) == 1 && t.Rows[0].Placeholder
}

// RecordCount is the number of rows backed by a record.
func (t Table) RecordCount() int {
	n := 0
	for _, r := range t.Rows {
		if !r.Placeholder {
			n++
		}
	}
	return n
}

// Texts returns the plain cell texts of row i, for tests and plain output.
func (t Table) Texts(i int) []string {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	out := make([]string, len(t.Rows[i].Cells))
	for j, c := range t.Rows[i].Cells {
		out[j] = c.Text
	}
	return out
}

// placeholder builds the single spanning row shown for empty collections.
func placeholder(columns []Column, text string) Row {
	return Row{
		Placeholder: true,
		Cells: []Cell{{
			Text: text,
			Span: len(columns),
			Tone: ToneMuted,
		}},
	}
}

func cell(text string) Cell {
	return Cell{Text: text, Span: 1}
}

func toned(text string, tone Tone) Cell {
	return Cell{Text: text, Span: 1, Tone: tone}
}

// orFallback returns s, or fallback when s is empty.
func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ptrOrFallback dereferences p, or returns fallback when it's nil or empty.
func ptrOrFallback(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return orFallback(*p, fallback)
}

// timeOrFallback formats t, or returns FallbackNA when the API sent null.
func timeOrFallback(t api.Timestamp) string {
	if !t.Valid() {
		return FallbackNA
	}
	return orFallback(t.String(), FallbackNA)
}

func idOrFallback(id api.ID, fallback string) string {
	return orFallback(id.String(), fallback)
}

// SeverityTone maps a severity label to a tone.
func SeverityTone(severity string) Tone {
	switch severity {
	case "low":
		return ToneInfo
	case "medium":
		return ToneWarning
	case "high":
		return ToneDanger
	case "critical":
		return ToneCritical
	default:
		return ToneMuted
	}
}

func severityCell(severity string) Cell {
	return toned(orFallback(severity, FallbackUnknown), SeverityTone(severity))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
