package tui

import (
	"strings"

	"github.com/nstepura/go-secure-vault/models"
)

type detailModel struct {
	item   models.VaultItem
	reveal bool
	status string
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString("Title     : " + m.item.Title + "\n")
	b.WriteString("Username  : " + m.item.Username + "\n")
	b.WriteString("Password  : " + maskSecret(m.item.Password, m.reveal) + "  [space: reveal]\n")
	b.WriteString("URL       : " + valueOrDash(m.item.URL) + "\n")
	b.WriteString("Notes     : " + valueOrDash(m.item.Notes) + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"ENTRY: "+m.item.Title,
		strings.TrimRight(b.String(), "\n"),
		"c: copy password │ u: copy username │ e: edit │ d: delete │ space: reveal │ esc: back",
	)
}
