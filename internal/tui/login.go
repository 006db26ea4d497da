package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucas178/cupcake-shop/internal/nav"
)

type loginState struct {
	user   textinput.Model
	pass   textinput.Model
	focus  int
	errMsg string
}

func newLoginState() loginState {
	user := textinput.New()
	user.Placeholder = "usuário"
	user.CharLimit = 64
	user.Width = 24
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "senha"
	pass.CharLimit = 64
	pass.Width = 24
	pass.EchoMode = textinput.EchoPassword

	return loginState{user: user, pass: pass}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.login = newLoginState()
		m.app.Nav.Go(nav.ScreenHome)
		return m, nil
	case "tab", "shift+tab":
		m.login.focus = 1 - m.login.focus
		if m.login.focus == 0 {
			m.login.pass.Blur()
			return m, m.login.user.Focus()
		}
		m.login.user.Blur()
		return m, m.login.pass.Focus()
	case "enter":
		if m.login.focus == 0 {
			m.login.focus = 1
			m.login.user.Blur()
			return m, m.login.pass.Focus()
		}
		if m.app.Login(m.login.user.Value(), m.login.pass.Value()) {
			m.login = newLoginState()
			return m, nil
		}
		m.login.errMsg = "Usuário ou senha inválidos."
		return m, nil
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.user, cmd = m.login.user.Update(msg)
	} else {
		m.login.pass, cmd = m.login.pass.Update(msg)
	}
	return m, cmd
}

func (m Model) viewLogin() string {
	lines := []string{
		header("Login Administrativo"),
		"",
		labelStyle.Render("Usuário"),
		m.login.user.View(),
		labelStyle.Render("Senha"),
		m.login.pass.View(),
	}
	if m.login.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.login.errMsg))
	}
	lines = append(lines, help("tab alternar campo", "enter entrar", "esc voltar"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
