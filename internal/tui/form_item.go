package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nstepura/go-secure-vault/models"
)

type formItemModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	original   models.VaultItem
	submitting bool
}

func newFormItemModel(item *models.VaultItem) formItemModel {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "title"
	inputs[1].Placeholder = "username"
	inputs[2].Placeholder = "password"
	inputs[3].Placeholder = "url (optional)"
	inputs[4].Placeholder = "notes (optional)"
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[0].Focus()

	m := formItemModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.original = *item
	m.inputs[0].SetValue(item.Title)
	m.inputs[1].SetValue(item.Username)
	m.inputs[2].SetValue(item.Password)
	m.inputs[3].SetValue(item.URL)
	m.inputs[4].SetValue(item.Notes)
	return m
}

func (m formItemModel) toItem() models.VaultItem {
	item := m.original
	item.Title = strings.TrimSpace(m.inputs[0].Value())
	item.Username = m.inputs[1].Value()
	item.Password = m.inputs[2].Value()
	item.URL = strings.TrimSpace(m.inputs[3].Value())
	item.Notes = m.inputs[4].Value()
	return item
}

func (m formItemModel) View() string {
	title := "NEW ENTRY"
	if m.editing {
		title = "EDIT: " + m.original.Title
	}

	var b strings.Builder
	b.WriteString("Title     : [" + m.inputs[0].View() + "]\n")
	b.WriteString("Username  : [" + m.inputs[1].View() + "]\n")
	b.WriteString("Password  : [" + m.inputs[2].View() + "]\n")
	b.WriteString("URL       : [" + m.inputs[3].View() + "]\n")
	b.WriteString("Notes     : [" + m.inputs[4].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate password │ enter: save │ esc: cancel",
	)
}
