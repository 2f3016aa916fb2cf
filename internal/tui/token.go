package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tokenModel is the screen shown when no API token is saved yet. It asks
// for the raindrop.io test token and can open the integrations settings
// page in the browser.
type tokenModel struct {
	input  textinput.Model
	errMsg string

	token      string
	quitByUser bool
}

func newTokenModel() tokenModel {
	input := textinput.New()
	input.Placeholder = "paste your raindrop.io API test token"
	input.Width = 60
	input.Focus()

	return tokenModel{input: input}
}

func (m tokenModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "ctrl+q", "esc":
		m.quitByUser = true
		return m, tea.Quit
	case "f2":
		if err := openInBrowser(raindropSettingsURL); err != nil {
			m.errMsg = err.Error()
		}
		return m, nil
	case "enter":
		token := strings.TrimSpace(m.input.Value())
		if token == "" {
			m.errMsg = "the token cannot be empty"
			return m, nil
		}
		m.token = token
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tokenModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("braindrop"))
	b.WriteString("\n\n")
	b.WriteString("To talk to raindrop.io the client needs your API test token.\n")
	b.WriteString("You can create one under Settings → Integrations → For Developers.\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("enter save · f2 open settings page · esc quit"))

	return appStyle.Render(b.String())
}
