package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "master password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email           │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Master password │ [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
