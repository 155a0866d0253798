package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/nstepura/go-secure-vault/models"
)

type listModel struct {
	items   []models.VaultItem
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.VaultItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.VaultItem{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) View() string {
	out := ""

	if m.loading {
		out += m.spinner.View() + " Loading vault...\n"
		return renderPage("VAULT", strings.TrimRight(out, "\n"), "")
	}

	if len(m.items) == 0 {
		out += "The vault is empty\n"
	} else {
		out += "Title                    │ Username                 │ URL\n"
		out += "─────────────────────────┼──────────────────────────┼────────────────\n"
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf(
				"%s%-23s │ %-24s │ %s\n",
				cursor,
				fitText(item.Title, 23),
				fitText(item.Username, 24),
				valueOrDash(fitText(item.URL, 16)),
			)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage(
		"VAULT",
		strings.TrimRight(out, "\n"),
		"n: new │ enter: open │ e: edit │ d: delete │ ↑/↓: navigate │ ctrl+l: log out",
	)
}
