package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/render"
	"github.com/sentinel-lite/sentinel/internal/util"
)

func asciiProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDefaultTableStyle(t *testing.T) {
	style := DefaultTableStyle()
	assert.NotPanics(t, func() {
		_ = style.Header.Render("test")
		_ = style.Cell.Render("test")
		_ = style.Selected.Render("test")
		_ = style.Border.Render("test")
	})
}

func TestRenderTable_Records(t *testing.T) {
	asciiProfile(t)

	table := render.Hosts([]api.Host{
		{ID: api.NewID("1"), Hostname: "web-01", Platform: "linux"},
		{ID: api.NewID("2"), Hostname: "db-01", Platform: "linux"},
	})
	out := RenderTable(table)

	got := lines(out)
	require.Len(t, got, 4, "header, divider and two rows")
	assert.Contains(t, got[0], "Hostname")
	assert.Contains(t, got[0], "Last Seen")
	assert.Contains(t, got[1], "─")
	assert.Contains(t, got[2], "web-01")
	assert.Contains(t, got[3], "db-01")
	assert.Contains(t, got[3], render.FallbackNA)
}

func TestRenderTable_PlaceholderSpansAllColumns(t *testing.T) {
	asciiProfile(t)

	out := RenderTable(render.Hosts(nil))
	got := lines(out)
	require.Len(t, got, 3)

	row := got[2]
	assert.Equal(t, render.EmptyHosts, strings.TrimSpace(row))
	assert.Equal(t, util.Width(got[1]), util.Width(row), "placeholder covers the full table width")
}

func TestRenderTable_TruncatesToColumnWidth(t *testing.T) {
	asciiProfile(t)

	table := render.Table{
		Columns: []render.Column{{Title: "Name", Width: 6}, {Title: "X", Width: 1}},
		Rows:    []render.Row{{Cells: []render.Cell{{Text: "a-very-long-name", Span: 1}, {Text: "y", Span: 1}}}},
	}
	got := lines(RenderTable(table))
	assert.Equal(t, "a-ver…  y", got[2])
}

func TestRenderTable_MaxWidth(t *testing.T) {
	asciiProfile(t)

	table := render.Events(nil)
	out := RenderTable(table, WithMaxWidth(60))
	for _, l := range lines(out) {
		assert.LessOrEqual(t, util.Width(l), 60)
	}
}

func TestRenderTable_SelectedRow(t *testing.T) {
	asciiProfile(t)

	table := render.Rules([]api.Rule{{ID: api.NewID("1"), Name: "a"}, {ID: api.NewID("2"), Name: "b"}})
	assert.NotPanics(t, func() {
		out := RenderTable(table, WithSelected(1))
		assert.Contains(t, out, "b")
	})
}

func TestRenderPlainTable(t *testing.T) {
	table := render.Rules([]api.Rule{
		{ID: api.NewID("1"), Name: "ssh brute force", Enabled: true, Definition: api.RuleDefinition{Type: "process", Pattern: "sshd"}},
	})
	got := lines(RenderPlainTable(table))
	require.Len(t, got, 2)
	assert.Equal(t, "ID  NAME             TYPE     PATTERN  STATUS", got[0])
	assert.Equal(t, "1   ssh brute force  process  sshd     Enabled", got[1])
	assert.NotContains(t, got[1], "\x1b[", "plain output carries no escape codes")
}

func TestRenderPlainTable_Placeholder(t *testing.T) {
	got := lines(RenderPlainTable(render.Alerts(nil)))
	require.Len(t, got, 2)
	assert.Equal(t, render.EmptyAlerts, got[1])
}

func TestFitWidths(t *testing.T) {
	assert.Equal(t, []int{10, 10}, fitWidths([]int{10, 10}, 40))
	assert.Equal(t, []int{6, 6}, fitWidths([]int{10, 6}, 14))
	assert.Equal(t, []int{4, 4}, fitWidths([]int{10, 10}, 3), "stops at the minimum width")
}

func TestSpanWidth(t *testing.T) {
	widths := []int{5, 3, 8}
	assert.Equal(t, 5, spanWidth(widths, 0, 1))
	assert.Equal(t, 5+3+8+2*len(columnGap), spanWidth(widths, 0, 3))
	assert.Equal(t, 8, spanWidth(widths, 2, 5), "span is clipped at the last column")
}
