package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const categoryColGap = 2

// categoryColumn is one column of the category table.
type categoryColumn struct {
	title string
	align lipgloss.Position
	cell  func(i int, c domain.Category) string
}

// categoryColumns lists the table columns. KEY is the digit that jumps to
// the category's filter in the TUI, so it follows domain.Categories order.
var categoryColumns = []categoryColumn{
	{"KEY", lipgloss.Right, func(i int, _ domain.Category) string { return Dim(strconv.Itoa(i)) }},
	{"NAME", lipgloss.Left, func(_ int, c domain.Category) string { return CategoryBadge(c) }},
	{"ALIAS", lipgloss.Left, func(_ int, c domain.Category) string { return Bold(c.Alias()) }},
	{"COLOR", lipgloss.Left, func(_ int, c domain.Category) string { return Dim(string(domain.CategoryStyle(c))) }},
	{"", lipgloss.Left, func(_ int, c domain.Category) string {
		if c.Assignable() {
			return ""
		}
		return Dim("(filter only)")
	}},
}

// renderCategoryTable lays out one row per category. Badge cells carry
// padding and escape codes and names are double-width, so column widths
// are measured in terminal cells.
func renderCategoryTable(cats []domain.Category) string {
	cells := make([][]string, len(cats))
	widths := make([]int, len(categoryColumns))
	for j, col := range categoryColumns {
		widths[j] = lipgloss.Width(col.title)
	}
	for i, c := range cats {
		cells[i] = make([]string, len(categoryColumns))
		for j, col := range categoryColumns {
			cells[i][j] = col.cell(i, c)
			widths[j] = max(widths[j], lipgloss.Width(cells[i][j]))
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		var line strings.Builder
		for j, cell := range row {
			if j > 0 {
				line.WriteString(strings.Repeat(" ", categoryColGap))
			}
			line.WriteString(lipgloss.PlaceHorizontal(widths[j], categoryColumns[j].align, cell))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	header := make([]string, len(categoryColumns))
	rule := make([]string, len(categoryColumns))
	for j, col := range categoryColumns {
		if col.title != "" {
			header[j] = StyleHeader.Render(col.title)
			rule[j] = StyleDim.Render(strings.Repeat("─", widths[j]))
		}
	}
	writeRow(header)
	writeRow(rule)
	for _, row := range cells {
		writeRow(row)
	}
	return b.String()
}
