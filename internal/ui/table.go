package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sentinel-lite/sentinel/internal/render"
	"github.com/sentinel-lite/sentinel/internal/util"
)

// columnGap separates adjacent columns.
const columnGap = "  "

// minColumnWidth is the narrowest a column is squeezed to when fitting.
const minColumnWidth = 4

// TableStyle provides consistent styling for tables across the CLI and TUI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Reverse(true),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableOption adjusts how RenderTable draws.
type TableOption func(*tableOptions)

type tableOptions struct {
	style    TableStyle
	selected int
	maxWidth int
}

// WithSelected highlights row i. Negative values select nothing.
func WithSelected(i int) TableOption {
	return func(o *tableOptions) { o.selected = i }
}

// WithMaxWidth squeezes the widest columns until the table fits in w cells.
func WithMaxWidth(w int) TableOption {
	return func(o *tableOptions) { o.maxWidth = w }
}

// WithStyle overrides DefaultTableStyle.
func WithStyle(s TableStyle) TableOption {
	return func(o *tableOptions) { o.style = s }
}

// RenderTable draws t with lipgloss: a bold header, a divider, then one line
// per row. Cells are truncated to their column width, colored by tone, and
// spanning cells cover the combined width of their columns.
func RenderTable(t render.Table, opts ...TableOption) string {
	o := tableOptions{style: DefaultTableStyle(), selected: -1}
	for _, opt := range opts {
		opt(&o)
	}

	widths := columnWidths(t.Columns)
	if o.maxWidth > 0 {
		widths = fitWidths(widths, o.maxWidth)
	}

	var b strings.Builder

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = o.style.Header.Render(util.PadRight(util.Truncate(c.Title, widths[i]), widths[i]))
	}
	b.WriteString(strings.Join(headers, columnGap))
	b.WriteString("\n")
	b.WriteString(o.style.Border.Render(strings.Repeat("─", totalWidth(widths))))
	b.WriteString("\n")

	for i, row := range t.Rows {
		line := renderRow(row, widths, func(c render.Cell) lipgloss.Style {
			if c.Tone == render.ToneDefault {
				return o.style.Cell
			}
			return ToneStyle(c.Tone)
		})
		if i == o.selected && !row.Placeholder {
			line = o.style.Selected.Render(renderRow(row, widths, func(render.Cell) lipgloss.Style {
				return lipgloss.NewStyle()
			}))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPlainTable draws t without styling or truncation, for pipes and
// redirected output. Columns are as wide as their widest cell.
func RenderPlainTable(t render.Table) string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = util.Width(c.Title)
	}
	for _, row := range t.Rows {
		col := 0
		for _, c := range row.Cells {
			span := cellSpan(c)
			if span == 1 && col < len(widths) {
				if w := util.Width(c.Text); w > widths[col] {
					widths[col] = w
				}
			}
			col += span
		}
	}

	var b strings.Builder
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = util.PadRight(strings.ToUpper(c.Title), widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(headers, columnGap), " "))
	b.WriteString("\n")

	for _, row := range t.Rows {
		parts := make([]string, 0, len(row.Cells))
		col := 0
		for _, c := range row.Cells {
			span := cellSpan(c)
			parts = append(parts, util.PadRight(c.Text, spanWidth(widths, col, span)))
			col += span
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, columnGap), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(row render.Row, widths []int, styleFor func(render.Cell) lipgloss.Style) string {
	parts := make([]string, 0, len(row.Cells))
	col := 0
	for _, c := range row.Cells {
		if col >= len(widths) {
			break
		}
		span := cellSpan(c)
		w := spanWidth(widths, col, span)
		text := util.PadRight(util.Truncate(c.Text, w), w)
		parts = append(parts, styleFor(c).Render(text))
		col += span
	}
	return strings.Join(parts, columnGap)
}

func cellSpan(c render.Cell) int {
	if c.Span < 1 {
		return 1
	}
	return c.Span
}

// spanWidth is the width of span columns starting at col, gaps included.
func spanWidth(widths []int, col, span int) int {
	w := 0
	n := 0
	for i := col; i < col+span && i < len(widths); i++ {
		w += widths[i]
		n++
	}
	if n > 1 {
		w += (n - 1) * len(columnGap)
	}
	return w
}

func columnWidths(cols []render.Column) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := c.Width
		if tw := util.Width(c.Title); w < tw {
			w = tw
		}
		widths[i] = w
	}
	return widths
}

func totalWidth(widths []int) int {
	return spanWidth(widths, 0, len(widths))
}

// fitWidths narrows the widest column one cell at a time until the table fits
// in max or every column is at minColumnWidth.
func fitWidths(widths []int, max int) []int {
	out := make([]int, len(widths))
	copy(out, widths)
	for totalWidth(out) > max {
		widest := -1
		for i, w := range out {
			if w > minColumnWidth && (widest < 0 || w > out[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		out[widest]--
	}
	return out
}
