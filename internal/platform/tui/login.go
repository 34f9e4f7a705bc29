package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neilkapoor/asteroid-belt/internal/auth"
)

const (
	fieldUsername = 0
	fieldPassword = 1
	fieldConfirm  = 2
)

var (
	loginTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	loginErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	loginHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LoginModel is the Bubble Tea model for the login/register screen. Tab
// toggles between logging in to an existing account and registering a new
// one; register mode adds a password confirmation field. Both paths end with
// an authenticated username.
type LoginModel struct {
	inputs      [3]textinput.Model
	focused     int
	manager     *auth.Manager
	registering bool // register mode instead of login
	errMsg      string
	username    string // set once authenticated
	width       int
	quitting    bool
}

// NewLoginModel creates the login screen backed by the given credentials
// manager.
func NewLoginModel(manager *auth.Manager) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 32
	user.Width = 24
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.Width = 24
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 64
	confirm.Width = 24
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return LoginModel{
		inputs:  [3]textinput.Model{user, pass, confirm},
		manager: manager,
	}
}

// lastField is the bottom-most visible input for the current mode.
func (m LoginModel) lastField() int {
	if m.registering {
		return fieldConfirm
	}
	return fieldPassword
}

// Init initializes the login model.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login screen.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			m.registering = !m.registering
			m.errMsg = ""
			if m.focused > m.lastField() {
				return m.focusField(m.lastField())
			}
			return m, nil

		case "up", "shift+tab":
			if m.focused > fieldUsername {
				return m.focusField(m.focused - 1)
			}
			return m, nil

		case "down":
			if m.focused < m.lastField() {
				return m.focusField(m.focused + 1)
			}
			return m, nil

		case "enter":
			if m.focused < m.lastField() {
				return m.focusField(m.focused + 1)
			}
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// focusField moves keyboard focus to the given input.
func (m LoginModel) focusField(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m, m.inputs[m.focused].Focus()
}

// submit validates or registers the entered credentials.
func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	if username == "" {
		m.errMsg = "username required"
		return m, nil
	}

	if m.registering {
		if password != m.inputs[fieldConfirm].Value() {
			m.errMsg = "passwords do not match"
			return m, nil
		}
		err := m.manager.Register(username, password)
		switch {
		case errors.Is(err, auth.ErrUserExists):
			m.errMsg = "username already taken"
			return m, nil
		case err != nil:
			m.errMsg = err.Error()
			return m, nil
		}
		m.username = username
		return m, tea.Quit
	}

	if !m.manager.Validate(username, password) {
		m.errMsg = "invalid username or password"
		return m, nil
	}
	m.username = username
	return m, tea.Quit
}

// View renders the login screen.
func (m LoginModel) View() string {
	if m.quitting || m.username != "" {
		return ""
	}

	var b strings.Builder

	title := "LOGIN"
	if m.registering {
		title = "REGISTER"
	}
	b.WriteString("\n")
	b.WriteString(centerText(loginTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.inputs[fieldUsername].View(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.inputs[fieldPassword].View(), m.width))
	b.WriteString("\n")
	if m.registering {
		b.WriteString(centerText(m.inputs[fieldConfirm].View(), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(centerText(loginErrStyle.Render(m.errMsg), m.width))
		b.WriteString("\n")
	}

	hint := "Enter: Submit  |  Tab: Switch to Register  |  Esc: Quit"
	if m.registering {
		hint = "Enter: Submit  |  Tab: Switch to Login  |  Esc: Quit"
	}
	b.WriteString(centerText(loginHintStyle.Render(hint), m.width))
	b.WriteString("\n")

	return b.String()
}

// Username returns the authenticated username, empty if none.
func (m LoginModel) Username() string {
	return m.username
}

// IsQuitting returns true if user aborted the login.
func (m LoginModel) IsQuitting() bool {
	return m.quitting
}

// RunLogin runs the login screen and returns the authenticated username.
// An empty username with nil error means the user aborted.
func RunLogin(manager *auth.Manager) (string, error) {
	model := NewLoginModel(manager)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(LoginModel)
	if !ok {
		return "", nil
	}
	return m.Username(), nil
}
