package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucas178/cupcake-shop/internal/nav"
)

// pressGap is the longest pause between key-repeat events that still counts
// as a single continuous hold of the logo key.
const pressGap = 400 * time.Millisecond

type homeState struct {
	cursor     int
	firstPress time.Time
	lastPress  time.Time
	now        func() time.Time
}

func newHomeState() homeState { return homeState{now: time.Now} }

var homeMenu = []struct {
	label  string
	target nav.Screen
}{
	{"PERFIL", nav.ScreenProfile},
	{"SABORES", nav.ScreenFlavors},
	{"MEUS PEDIDOS", nav.ScreenOrders},
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() != "a" {
		m.home.firstPress = time.Time{}
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case "down", "j":
		if m.home.cursor < len(homeMenu)-1 {
			m.home.cursor++
		}
	case "enter":
		m.app.Nav.Go(homeMenu[m.home.cursor].target)
	case "a":
		// The home-logo long press. Terminals have no key-release events,
		// so the hold is reconstructed from key-repeat timing.
		now := m.home.now()
		if m.home.firstPress.IsZero() || now.Sub(m.home.lastPress) > pressGap {
			m.home.firstPress = now
		}
		m.home.lastPress = now
		if m.app.Nav.LongPress(now.Sub(m.home.firstPress)) {
			m.home.firstPress = time.Time{}
		}
	}
	return m, nil
}

func (m Model) viewHome() string {
	logo := titleStyle.Render("🧁  CUPCAKE SHOP")

	lines := make([]string, 0, len(homeMenu))
	for i, item := range homeMenu {
		prefix := "  "
		label := item.label
		if i == m.home.cursor {
			prefix = "> "
			label = selectedStyle.Render(label)
		}
		lines = append(lines, prefix+label)
	}

	menu := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Left,
		logo,
		"",
		menu,
		help("↑/↓ navegar", "enter abrir", "q sair"),
	)
}
