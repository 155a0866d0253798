package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	out := ""
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}

	return renderPage("go-secure-vault", out, "↑/↓: navigate │ enter: select │ q: quit")
}
