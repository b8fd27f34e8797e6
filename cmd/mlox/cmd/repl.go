package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mlxlog "github.com/msto63/mLox/foundation/core/log"
	"github.com/msto63/mLox/foundation/lox"
	"github.com/msto63/mLox/pkg/core/version"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive expression session",
	Long: `Starts an interactive session. Every line is scanned and parsed and
the syntax tree or the diagnostics are shown.

Commands:
  :help    - Toggle help
  :tokens  - Toggle the token stream
  :clear   - Clear history
  :quit    - Exit`,
	RunE: runREPLCommand,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPLCommand(cmd *cobra.Command, args []string) error {
	opts, err := lox.OptionsFromConfig(app.cfg)
	if err != nil {
		printError(app.errOut, "failed to create engine", err)
		return err
	}
	// log output would corrupt the alternate screen
	opts.Logger = mlxlog.Discard()

	engine, err := lox.NewEngine(opts)
	if err != nil {
		printError(app.errOut, "failed to create engine", err)
		return err
	}

	m := newREPLModel(engine, app.styles)
	m.showTokens = app.cfg.Output.ShowTokens

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		printError(app.errOut, "REPL failed", err)
		return err
	}
	return nil
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	engine      *lox.Engine
	styles      styles
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showTokens  bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlT key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous expression"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next expression"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "parse"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle tokens"),
	),
}

func newREPLModel(engine *lox.Engine, st styles) replModel {
	ti := textinput.New()
	ti.Placeholder = "type an expression..."
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 60
	ti.PromptStyle = st.prompt
	ti.Prompt = "lox> "

	return replModel{
		textInput:  ti,
		engine:     engine,
		styles:     st,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.showTokens = !m.showTokens
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":tokens", ":t":
		m.showTokens = !m.showTokens
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

// evaluate parses input and returns the rendered tree or the diagnostics
func (m replModel) evaluate(input string) (string, bool) {
	result, err := m.engine.Run(context.Background(), input)
	if err != nil {
		return err.Error(), true
	}

	if !m.showTokens {
		return result.String(), false
	}

	tokens, err := renderTokens(result.Tokens, "sexpr")
	if err != nil {
		return err.Error(), true
	}
	return strings.TrimRight(tokens, "\n") + "\n" + result.String(), false
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return m.styles.muted.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := m.styles.header.Render("mLox REPL")
	b.WriteString(header + " " + m.styles.muted.Render("v"+version.CLI) + "\n")
	b.WriteString(m.styles.muted.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 9
	}
	availableHeight := max(m.height-reservedLines, 1)

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for _, entry := range m.history[historyStart:] {
		if entry.input != "" {
			b.WriteString(m.styles.muted.Render("  › ") + entry.input + "\n")
		}
		for _, line := range strings.Split(entry.output, "\n") {
			if entry.isErr {
				b.WriteString("  " + m.styles.diagnostic.Render("✗ "+line) + "\n")
			} else {
				b.WriteString("  " + m.styles.result.Render("→ "+line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := m.styles.helpKey.Render(":help") + m.styles.helpDesc.Render(" help  ") +
		m.styles.helpKey.Render("ctrl+t") + m.styles.helpDesc.Render(" tokens  ") +
		m.styles.helpKey.Render("ctrl+l") + m.styles.helpDesc.Render(" clear  ") +
		m.styles.helpKey.Render("ctrl+c") + m.styles.helpDesc.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func (m replModel) renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate expression history"},
		{"Enter", "Parse expression"},
		{":help", "Toggle this help"},
		{":tokens", "Toggle token stream"},
		{":clear", "Clear history"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, m.styles.header.Render("Help"))
	for _, h := range help {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			m.styles.helpKey.Render(fmt.Sprintf("%-8s", h.key)),
			m.styles.helpDesc.Render(h.desc)))
	}

	return m.styles.border.Render(strings.Join(lines, "\n"))
}
