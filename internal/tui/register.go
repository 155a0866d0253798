package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
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

	repeat := textinput.New()
	repeat.Placeholder = "repeat master password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{email, password, repeat}}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Email           │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Master password │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Repeat password │ [" + m.inputs[2].View() + "]\n")

	b.WriteString("\nThe master password never leaves this device.\n")
	b.WriteString("If you lose it, your vault cannot be recovered.\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
