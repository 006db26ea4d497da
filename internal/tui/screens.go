package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucas178/cupcake-shop/internal/domain/order"
	"github.com/lucas178/cupcake-shop/internal/nav"
	"github.com/lucas178/cupcake-shop/pkg/money"
)

// --- Profile ---

type profileState struct {
	noticeAcked bool
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		m.app.Nav.Go(nav.ScreenHome)
	case "enter":
		m.profile.noticeAcked = true
	}
	return m, nil
}

func (m Model) viewProfile() string {
	avatar := boxStyle.Render("  CS  ")

	lines := []string{
		header("Meu Perfil"),
		"",
		avatar,
		"",
		labelStyle.Render("Cliente da Cupcake Shop"),
	}
	if !m.profile.noticeAcked {
		lines = append(lines, "",
			errorStyle.Render("Câmera indisponível neste dispositivo."),
			faintStyle.Render("A foto de perfil precisa de acesso à câmera."),
			help("enter ok"))
	}
	lines = append(lines, help("esc voltar"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- Orders (history) ---

func (m Model) updateOrders(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "esc" {
		m.app.Nav.Go(nav.ScreenHome)
	}
	return m, nil
}

func (m Model) viewOrders() string {
	orders := m.app.Ledger.List()

	lines := []string{header("Meus Pedidos"), ""}
	if len(orders) == 0 {
		lines = append(lines, faintStyle.Render("Nenhum pedido encontrado."))
	}
	for _, o := range orders {
		lines = append(lines, renderOrder(o))
	}
	lines = append(lines, help("esc voltar"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOrder(o order.Order) string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	rows := []string{
		sectionStyle.Render(fmt.Sprintf("Pedido #%s", id)) + "  " +
			faintStyle.Render(o.Date.Format("02/01/2006 15:04")) + "  " +
			priceStyle.Render(money.Format(o.Total)),
	}
	for _, l := range o.Items {
		rows = append(rows, fmt.Sprintf("  %dx %-35s %s",
			l.Quantity, l.Item.Name, money.Format(l.LineTotal())))
	}
	rows = append(rows, faintStyle.Render("  Pago com: "+o.PaymentMethod))
	if o.Change != nil && o.Change.NeedsChange {
		rows = append(rows, faintStyle.Render("  Troco para: "+money.Format(o.Change.For)))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// --- Order success ---

func (m Model) updateSuccess(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "esc":
		m.app.Nav.Go(nav.ScreenHome)
	}
	return m, nil
}

func (m Model) viewSuccess() string {
	lines := []string{
		header("Pedido Confirmado"),
		"",
		okStyle.Render("✔ Pedido realizado com sucesso!"),
		"",
	}
	if o := m.app.Ledger.Latest(); o != nil {
		lines = append(lines, renderOrder(*o))
	}
	lines = append(lines, help("enter voltar ao início"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
