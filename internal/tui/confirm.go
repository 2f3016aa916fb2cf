package tui

// confirmAction names what a confirm dialog will do when accepted.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmLogout
)

// confirmModel is the yes/no dialog state. It has no Update of its own;
// the main model routes keys while a dialog is up.
type confirmModel struct {
	question string
	action   confirmAction
}

func confirmDialog(question string, action confirmAction) confirmModel {
	return confirmModel{question: question, action: action}
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(
		m.question + "\n\n" + helpStyle.Render("y/enter confirm · n/esc cancel"),
	)
}
