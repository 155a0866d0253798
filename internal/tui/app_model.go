// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepura/go-secure-vault/internal/clipboard"
	"github.com/nstepura/go-secure-vault/internal/service"
	"github.com/nstepura/go-secure-vault/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	guard         *clipboard.Guard
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	form     formItemModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	// ticking guards against starting a second countdown chain while one
	// is already driving the status line.
	ticking bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, guard *clipboard.Guard) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		guard:         guard,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			m.guard.Clear()
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteItem(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.items = msg.items
		if m.list.idx >= len(m.list.items) {
			m.list.idx = len(m.list.items) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case itemSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshClipboardStatus()
		if m.ticking {
			return m, nil
		}
		m.ticking = true
		return m, cmdClipboardTick()
	case clipboardTickMsg:
		m.refreshClipboardStatus()
		if !m.ticking {
			return m, nil
		}
		return m, cmdClipboardTick()
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

func (m *appModel) refreshClipboardStatus() {
	snap := m.guard.Snapshot()
	if !snap.Active {
		m.ticking = false
		m.list.status = ""
		m.detail.status = ""
		return
	}
	status := countdownStatus(snap.RemainingSeconds)
	m.list.status = status
	m.detail.status = status
}

// logoutToWelcome drops the session key, the bearer token and any secret
// still sitting on the clipboard, then returns to the welcome screen.
func (m *appModel) logoutToWelcome() {
	m.services.AuthService.Logout()
	m.guard.Clear()
	m.ticking = false
	m.welcome = newWelcomeModel()
	m.login = newLoginModel()
	m.register = newRegisterModel()
	m.list = newListModel()
	m.detail = detailModel{}
	m.form = formItemModel{}
	m.currentScreen = screenWelcome
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.currentScreen = screenLogin
		} else {
			m.register = newRegisterModel()
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		m.guard.Clear()
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.inputs, m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.inputs, m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and master password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.MasterCredential{Email: email, MasterPassword: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.inputs, m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.inputs, m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and master password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(models.MasterCredential{Email: email, MasterPassword: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.items)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{item: item, status: m.list.status}
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.newItem):
			m.form = newFormItemModel(nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.edit):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.form = newFormItemModel(&item)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.delete):
			item, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = item.Title
			m.pendingDelete = item.ID
		case key.Matches(msg, keys.logout):
			m.logoutToWelcome()
		case key.Matches(msg, keys.quit):
			m.guard.Clear()
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newFormItemModel(&item)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.item.Title
		m.pendingDelete = m.detail.item.ID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.item.Password == "" {
			return m, nil
		}
		return m, m.cmdCopyToClipboard(m.detail.item.Password)
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.item.Username == "" {
			return m, nil
		}
		return m, m.cmdCopyToClipboard(m.detail.item.Username)
	case key.Matches(keyMsg, keys.logout):
		m.logoutToWelcome()
		return m, nil
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.inputs, m.form.focus = focusNext(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.inputs, m.form.focus = focusPrev(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			password, err := m.services.Generator.Generate(models.DefaultPasswordPolicy())
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.form.inputs[2].SetValue(password)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			item := m.form.toItem()
			if item.Title == "" || item.Username == "" || item.Password == "" {
				m.showErrorf("Title, username and password are required")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveItem(item, m.form.editing)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(cred models.MasterCredential) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		err := auth.Login(ctx, cred)
		return authDoneMsg{err: err}
	}
}

func (m appModel) cmdRegisterAndLogin(cred models.MasterCredential) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if err := auth.Register(ctx, cred); err != nil {
			return authDoneMsg{err: err}
		}
		err := auth.Login(ctx, cred)
		return authDoneMsg{err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	return func() tea.Msg {
		items, err := vault.List(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSaveItem(item models.VaultItem, editing bool) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	return func() tea.Msg {
		var err error
		if editing {
			_, err = vault.Update(ctx, item)
		} else {
			_, err = vault.Create(ctx, item)
		}
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteItem(itemID string) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	return func() tea.Msg {
		err := vault.Delete(ctx, itemID)
		return itemDeletedMsg{err: err}
	}
}

func (m appModel) cmdCopyToClipboard(secret string) tea.Cmd {
	guard := m.guard
	return func() tea.Msg {
		err := guard.Copy(secret)
		return copiedMsg{err: err}
	}
}

func cmdClipboardTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clipboardTickMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}

func focusPrev(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}
