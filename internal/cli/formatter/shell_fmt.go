package formatter

import (
	"fmt"
	"strings"
)

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and command rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatCommandHelp renders the command reference shared by the command
// bar and script mode.
func FormatCommandHelp() string {
	categories := []helpCategory{
		{
			title: "Tasks",
			commands: [][]string{
				{"add <category> <text>", "Add a task (category name or alias)"},
				{"toggle <id>", "Mark a task done / not done"},
				{"delete <id>", "Remove a task"},
			},
		},
		{
			title: "View",
			commands: [][]string{
				{"filter <category>", "Show one category (all to reset)"},
				{"list", "Print the visible tasks"},
				{"categories", "Show the category set"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"help", "Show this command reference"},
				{"quit", "Quit todocat"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Aliases: all, work, private, shopping, other. Ids may be written 3 or #3."))

	return RenderBox("Commands", b.String())
}
