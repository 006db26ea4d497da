package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucas178/cupcake-shop/internal/nav"
	"github.com/lucas178/cupcake-shop/pkg/money"
)

type flavorsState struct {
	cursor     int
	showDetail bool
}

func newFlavorsState() flavorsState { return flavorsState{} }

func (m Model) updateFlavors(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.app.Catalog.List()
	if m.flavors.cursor >= len(items) && len(items) > 0 {
		m.flavors.cursor = len(items) - 1
	}

	switch key.String() {
	case "esc":
		m.flavors.showDetail = false
		m.app.Nav.Go(nav.ScreenHome)
	case "up", "k":
		if m.flavors.cursor > 0 {
			m.flavors.cursor--
		}
	case "down", "j":
		if m.flavors.cursor < len(items)-1 {
			m.flavors.cursor++
		}
	case "enter", "i":
		m.flavors.showDetail = !m.flavors.showDetail
	case "+", "right":
		if len(items) > 0 {
			it := items[m.flavors.cursor]
			m.app.UpdateCart(it, m.app.Cart.Quantity(it.ID)+1)
		}
	case "-", "left":
		if len(items) > 0 {
			it := items[m.flavors.cursor]
			if q := m.app.Cart.Quantity(it.ID); q > 0 {
				m.app.UpdateCart(it, q-1)
			}
		}
	case "c":
		m.app.Nav.Go(nav.ScreenCheckout)
	}
	return m, nil
}

func (m Model) viewFlavors() string {
	items := m.app.Catalog.List()

	var rows []string
	for i, it := range items {
		qty := m.app.Cart.Quantity(it.ID)
		marker := "  "
		name := it.Name
		if i == m.flavors.cursor {
			marker = "> "
			name = selectedStyle.Render(name)
		}
		qtyCell := faintStyle.Render(fmt.Sprintf("[- %d +]", qty))
		if qty > 0 {
			qtyCell = okStyle.Render(fmt.Sprintf("[- %d +]", qty))
		}
		rows = append(rows, fmt.Sprintf("%s%-40s %10s  %s",
			marker, name, money.Format(it.Price), qtyCell))

		if i == m.flavors.cursor && m.flavors.showDetail {
			rows = append(rows, faintStyle.Render("    "+fmt.Sprintf("%dg", it.Weight)+
				" · "+strings.Join(it.Ingredients, ", ")))
			for _, r := range it.Reviews {
				rows = append(rows, faintStyle.Render(fmt.Sprintf("    %s %s — %s",
					stars(r.Rating), r.User, r.Comment)))
			}
		}
	}
	if len(rows) == 0 {
		rows = append(rows, faintStyle.Render("Nenhum sabor cadastrado."))
	}

	summary := fmt.Sprintf("Carrinho: %d item(ns) · %s",
		m.app.Cart.TotalItems(), money.Format(m.app.Cart.Subtotal()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header("Sabores"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		priceStyle.Render(summary),
		help("+/- quantidade", "enter detalhes", "c fechar pedido", "esc voltar"),
	)
}

func stars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
