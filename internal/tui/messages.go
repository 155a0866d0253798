package tui

import (
	"github.com/nstepura/go-secure-vault/models"
)

type authDoneMsg struct {
	err error
}

type listLoadedMsg struct {
	items []models.VaultItem
	err   error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clipboardTickMsg struct{}
