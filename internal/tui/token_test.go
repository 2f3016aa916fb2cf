package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyMsg builds the tea.KeyMsg a terminal would produce for the given
// key name.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+q":
		return tea.KeyMsg{Type: tea.KeyCtrlQ}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	case "f4":
		return tea.KeyMsg{Type: tea.KeyF4}
	case "f5":
		return tea.KeyMsg{Type: tea.KeyF5}
	case "f12":
		return tea.KeyMsg{Type: tea.KeyF12}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(t *testing.T, model tea.Model, text string) tea.Model {
	t.Helper()
	for _, r := range text {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func TestTokenModel_RejectsEmptyToken(t *testing.T) {
	model, cmd := newTokenModel().Update(keyMsg("enter"))

	result, ok := model.(tokenModel)
	require.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, "the token cannot be empty", result.errMsg)
	assert.Empty(t, result.token)
}

func TestTokenModel_AcceptsToken(t *testing.T) {
	model := typeText(t, newTokenModel(), "  secret-token  ")
	model, cmd := model.Update(keyMsg("enter"))

	// Whitespace typed around the token is not part of it.
	result, ok := model.(tokenModel)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, "secret-token", result.token)
	assert.False(t, result.quitByUser)
}

func TestTokenModel_EscQuits(t *testing.T) {
	model, cmd := newTokenModel().Update(keyMsg("esc"))

	result, ok := model.(tokenModel)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.True(t, result.quitByUser)
}

func TestTokenModel_F2OpensSettingsPage(t *testing.T) {
	var opened string
	orig := openInBrowser
	openInBrowser = func(url string) error {
		opened = url
		return nil
	}
	defer func() { openInBrowser = orig }()

	_, cmd := newTokenModel().Update(tea.KeyMsg{Type: tea.KeyF2})

	assert.Nil(t, cmd)
	assert.Equal(t, raindropSettingsURL, opened)
}
