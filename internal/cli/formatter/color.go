package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorIndigo = lipgloss.Color("#7c6fe4")
	ColorGray   = lipgloss.Color("#a89984")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorBg     = lipgloss.Color("#282828")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleDone renders the text of completed tasks.
	StyleDone = lipgloss.NewStyle().Foreground(ColorDim).Strikethrough(true).Italic(true)
)

// badgeColors maps category style tokens to badge colors.
var badgeColors = map[domain.StyleToken]lipgloss.Color{
	domain.StyleRed:    ColorRed,
	domain.StyleGreen:  ColorGreen,
	domain.StylePurple: ColorPurple,
	domain.StyleGray:   ColorGray,
}

// TokenStyle returns the badge style for a style token. Unknown tokens,
// including domain.StyleDefault, use the indigo badge.
func TokenStyle(tok domain.StyleToken) lipgloss.Style {
	c, ok := badgeColors[tok]
	if !ok {
		c = ColorIndigo
	}
	return lipgloss.NewStyle().Foreground(ColorBg).Background(c).Bold(true).Padding(0, 1)
}

// CategoryBadge renders a category as a colored badge.
func CategoryBadge(c domain.Category) string {
	return TokenStyle(domain.CategoryStyle(c)).Render(string(c))
}

// CategoryLabel renders a category name in its badge color, without the
// background. Used where a badge would be too heavy (status bar, prompts).
func CategoryLabel(c domain.Category) string {
	col, ok := badgeColors[domain.CategoryStyle(c)]
	if !ok {
		col = ColorIndigo
	}
	return lipgloss.NewStyle().Foreground(col).Bold(true).Render(string(c))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
