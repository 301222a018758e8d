package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"focustask/internal/app"
	"focustask/internal/auth"
)

const (
	authTimeout     = 30 * time.Second
	genericAuthFail = "Something went wrong, try again"
)

type sessionRestoredMsg struct {
	user auth.User
	ok   bool
	err  error
}

type authResultMsg struct {
	user  auth.User
	err   error
	guest bool
	kind  formKind
}

type loggedOutMsg struct {
	err error
}

func restoreSession(s *auth.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		err := s.Restore(ctx)
		u, ok := s.User()
		return sessionRestoredMsg{user: u, ok: ok, err: err}
	}
}

func signIn(s *auth.Session, kind formKind, f auth.Form) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		var u auth.User
		var err error
		if kind == formRegister {
			u, err = s.Register(ctx, f)
		} else {
			u, err = s.Login(ctx, f.Email, f.Password)
		}
		return authResultMsg{user: u, err: err, kind: kind}
	}
}

func continueAsGuest(s *auth.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		u, err := s.ContinueAsGuest(ctx)
		return authResultMsg{user: u, err: err, guest: true}
	}
}

func logout(s *auth.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		return loggedOutMsg{err: s.Logout(ctx)}
	}
}

func authForm(kind formKind, email, password string) *formState {
	f := &formState{kind: kind, fields: []field{
		{label: "Email", value: email},
		{label: "Password", value: password, secret: true},
	}}
	if kind == formRegister {
		f.fields = append(f.fields,
			field{label: "Confirm", secret: true},
			field{label: "Full name"},
		)
	}
	return f
}

func (m Model) onRestored(msg sessionRestoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("session restore failed", zap.Error(msg.err))
	}
	if msg.ok {
		m.status = fmt.Sprintf("Welcome back, %s", msg.user.Email)
		return m.enterApp(), nil
	}
	return m.showAuth(formLogin, "", "")
}

func (m Model) showAuth(kind formKind, email, password string) (Model, tea.Cmd) {
	m.screen = screenAuth
	m.busy = false
	return m.openForm(authForm(kind, email, password))
}

// enterApp moves to the home screen once a user is known.
func (m Model) enterApp() Model {
	m.screen = screenHome
	m.mode = modeList
	m.form = nil
	m.busy = false
	m.cursor = 0
	if m.cfg.SeedOnStart && !m.state.Seeded {
		m, _ = m.dispatch(app.Seed{})
	}
	return m
}

func (m Model) updateAuth(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch key {
	case m.cfg.Keys.Guest:
		m.busy = true
		m.status = "Continuing as guest…"
		return m, tea.Batch(m.spinner.Tick, continueAsGuest(m.session))
	case m.cfg.Keys.SwitchMode:
		m.storeField()
		next := formRegister
		if m.form.kind == formRegister {
			next = formLogin
		}
		return m.showAuth(next, m.form.value(fieldEmail), m.form.value(fieldPassword))
	}
	return m.updateForm(key, msg)
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	f := auth.Form{
		Email:           strings.TrimSpace(m.form.value(fieldEmail)),
		Password:        m.form.value(fieldPassword),
		ConfirmPassword: m.form.value(fieldConfirm),
		FullName:        m.form.value(fieldFullName),
	}
	validate := auth.ValidateLogin
	if m.form.kind == formRegister {
		validate = auth.ValidateRegister
	}
	if err := validate(f); err != nil {
		m.status = errorStyle.Render("Error: " + err.Error())
		return m, nil
	}
	m.busy = true
	m.status = "Signing in…"
	return m, tea.Batch(m.spinner.Tick, signIn(m.session, m.form.kind, f))
}

func (m Model) onAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.log.Warn("sign in failed", zap.Bool("guest", msg.guest), zap.Error(msg.err))
		switch {
		case msg.guest:
			m.status = errorStyle.Render("Could not continue as guest")
		case msg.kind == formRegister:
			m.status = errorStyle.Render("Registration failed: " + auth.Message(msg.err, genericAuthFail))
		default:
			m.status = errorStyle.Render("Login failed: " + auth.Message(msg.err, genericAuthFail))
		}
		return m, nil
	}
	m.status = fmt.Sprintf("Signed in as %s", msg.user.Email)
	return m.enterApp(), nil
}

func (m Model) onLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.log.Error("logout failed", zap.Error(msg.err))
		m.status = errorStyle.Render(fmt.Sprintf("Logout failed: %v", msg.err))
		return m, nil
	}
	next, cmd := m.showAuth(formLogin, "", "")
	next.status = "Signed out"
	return next, cmd
}

func (m Model) viewAuth() string {
	var b strings.Builder
	heading := "Welcome back"
	if m.form != nil && m.form.kind == formRegister {
		heading = "Create a new account"
	}
	b.WriteString(subtitleStyle.Render(heading))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(cardStyle.Render(strings.TrimRight(m.form.render(m.input.View()), "\n")))
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString(m.spinner.View() + " ")
	}
	b.WriteString(m.status)
	b.WriteString("\n")
	k := m.cfg.Keys
	b.WriteString(dimStyle.Render(fmt.Sprintf("enter next/submit • tab move • %s sign in/sign up • %s continue as guest • ctrl+c quit",
		k.SwitchMode, k.Guest)))
	return b.String()
}
