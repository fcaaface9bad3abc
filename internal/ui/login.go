package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sellerpulse/pulse/internal/model"
)

// LoginFunc authenticates against the backend
type LoginFunc func(ctx context.Context, email, password string) (*model.User, error)

// LoggedInMsg is emitted when a login attempt succeeds, so the
// containing application can navigate away from the login page.
type LoggedInMsg struct {
	User *model.User
}

// loginResultMsg carries the outcome of one login attempt
type loginResultMsg struct {
	gen  int
	user *model.User
	err  error
}

// LoginModel is the sign-in page. It is also where the application lands
// when the backend reports the stored session expired.
type LoginModel struct {
	styles Styles
	login  LoginFunc

	email    textinput.Model
	password textinput.Model
	focused  int

	gen     int
	busy    bool
	errText string
	notice  string
}

// NewLoginModel creates the sign-in page
func NewLoginModel(login LoginFunc, styles Styles) LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return LoginModel{
		styles:   styles,
		login:    login,
		email:    email,
		password: password,
	}
}

// Init initializes the model
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetNotice shows a one-line banner above the form, used for the
// session-expired message
func (m *LoginModel) SetNotice(text string) {
	m.notice = text
}

func (m *LoginModel) submit() tea.Cmd {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.errText = "email and password are required"
		return nil
	}

	m.gen++
	m.busy = true
	m.errText = ""

	gen := m.gen
	login := m.login

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		user, err := login(ctx, email, password)
		return loginResultMsg{gen: gen, user: user, err: err}
	}
}

// Update handles messages
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focused = 1 - m.focused
			if m.focused == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil
		case "enter":
			if m.focused == 0 {
				m.focused = 1
				m.email.Blur()
				m.password.Focus()
				return m, nil
			}
			cmd := m.submit()
			return m, cmd
		}

	case loginResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.password.SetValue("")
			return m, nil
		}
		m.notice = ""
		user := msg.user
		return m, func() tea.Msg { return LoggedInMsg{User: user} }
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// View renders the page
func (m LoginModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" Sign in ") + "\n\n")
	if m.notice != "" {
		sb.WriteString(m.styles.Warning.Render(m.notice) + "\n\n")
	}
	sb.WriteString(m.email.View() + "\n")
	sb.WriteString(m.password.View() + "\n\n")

	switch {
	case m.busy:
		sb.WriteString(m.styles.Muted.Render("Signing in..."))
	case m.errText != "":
		sb.WriteString(m.styles.Error.Render(m.errText))
	default:
		sb.WriteString(m.styles.Muted.Render("tab: switch field  enter: sign in"))
	}

	return sb.String()
}
