// Package tui is the terminal front end of the storefront: a single
// bubbletea program whose screens mirror the navigator's screen set. All
// state mutations go through the application controller.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucas178/cupcake-shop/internal/app"
	"github.com/lucas178/cupcake-shop/internal/nav"
)

// Model is the root bubbletea model. It embeds the per-screen state and
// dispatches updates and rendering on the navigator's active screen.
type Model struct {
	app    *app.App
	width  int
	height int
	status string

	home     homeState
	profile  profileState
	flavors  flavorsState
	checkout checkoutState
	login    loginState
	admin    adminState
}

// New creates the root model over the application controller.
func New(a *app.App) Model {
	return Model{
		app:      a,
		home:     newHomeState(),
		flavors:  newFlavorsState(),
		checkout: newCheckoutState(),
		login:    newLoginState(),
		admin:    newAdminState(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.status = ""
	}

	switch m.app.Nav.Current() {
	case nav.ScreenHome:
		return m.updateHome(msg)
	case nav.ScreenProfile:
		return m.updateProfile(msg)
	case nav.ScreenFlavors:
		return m.updateFlavors(msg)
	case nav.ScreenOrders:
		return m.updateOrders(msg)
	case nav.ScreenCheckout:
		return m.updateCheckout(msg)
	case nav.ScreenOrderSuccess:
		return m.updateSuccess(msg)
	case nav.ScreenAdminLogin:
		return m.updateLogin(msg)
	case nav.ScreenAdmin:
		return m.updateAdmin(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var body string
	switch m.app.Nav.Current() {
	case nav.ScreenHome:
		body = m.viewHome()
	case nav.ScreenProfile:
		body = m.viewProfile()
	case nav.ScreenFlavors:
		body = m.viewFlavors()
	case nav.ScreenOrders:
		body = m.viewOrders()
	case nav.ScreenCheckout:
		body = m.viewCheckout()
	case nav.ScreenOrderSuccess:
		body = m.viewSuccess()
	case nav.ScreenAdminLogin:
		body = m.viewLogin()
	case nav.ScreenAdmin:
		body = m.viewAdmin()
	}

	parts := []string{body}
	if m.status != "" {
		parts = append(parts, okStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// header renders the screen title bar.
func header(title string) string {
	return headerStyle.Render(strings.ToUpper(title))
}

// help renders the footer key hints.
func help(hints ...string) string {
	return helpStyle.Render(strings.Join(hints, "  ·  "))
}
