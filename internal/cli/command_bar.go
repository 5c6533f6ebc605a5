package cli

import (
	"strings"

	"github.com/alexanderramin/todocat/internal/cli/formatter"
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
// History lives only for the session.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input: ti,
		state: state,
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(c.promptPrefixPlain()) - 1
}

// Update handles key messages when the command bar is focused. Commands
// run synchronously here, on the event loop.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.run(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) run(input string) tea.Cmd {
	cmd, err := parseCommand(input)
	if err != nil {
		return outputCmd(formatter.ErrorLine(err))
	}
	res := executeCommand(c.state.App.Tasks, cmd)
	if res.quit {
		return func() tea.Msg { return quitMsg{} }
	}
	return outputCmd(res.output)
}

// View renders the command bar.
func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

func (c *commandBar) promptPrefix() string {
	return formatter.StylePurple.Render("todocat") + " " + formatter.Dim("❯") + " "
}

// promptPrefixPlain returns the unstyled prompt for width calculations.
func (c *commandBar) promptPrefixPlain() string {
	return "todocat > "
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	if line == "" {
		return
	}
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

// historyDown steps toward the newest entry, then to a blank line. A line
// typed without browsing history is left alone.
func (c *commandBar) historyDown() {
	if c.historyIdx >= len(c.history) {
		return
	}
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions offers completions for the whole line typed so far.
// textinput matches suggestions against the full value, so each candidate
// carries the already-typed prefix.
func (c *commandBar) updateSuggestions() {
	c.input.SetSuggestions(lineSuggestions(c.input.Value()))
}

func lineSuggestions(text string) []string {
	if text == "" {
		return nil
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		return filterSuggestions(commandNames(), parts[0])
	}

	verb := strings.ToLower(parts[0])
	if verb != verbAdd && verb != verbFilter {
		return nil
	}
	if len(parts) > 2 || (len(parts) == 2 && trailingSpace) {
		return nil
	}

	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}

	var names []string
	for _, cat := range domain.Categories() {
		if verb == verbAdd && !cat.Assignable() {
			continue
		}
		names = append(names, string(cat), cat.Alias())
	}

	var out []string
	for _, name := range filterSuggestions(names, prefix) {
		out = append(out, parts[0]+" "+name)
	}
	return out
}

// filterSuggestions returns candidates with the given prefix (case-insensitive).
func filterSuggestions(candidates []string, prefix string) []string {
	lower := strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
		}
	}
	return out
}
