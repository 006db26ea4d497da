package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucas178/cupcake-shop/internal/domain/catalog"
	"github.com/lucas178/cupcake-shop/pkg/money"
)

// Admin form fields, in tab order. formFocusList means the item list has
// focus instead of the form.
const (
	admName = iota
	admPrice
	admWeight
	admImage
	admIngredients
	admFieldCount

	formFocusList = -1
)

type adminState struct {
	tab    int // 0 = cupcakes, 1 = pedidos
	cursor int

	formFocus   int
	name        textinput.Model
	price       textinput.Model
	weight      textinput.Model
	image       textinput.Model
	ingredients textarea.Model
	editingID   int64
	errMsg      string
}

func newAdminState() adminState {
	mk := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.Width = width
		return in
	}

	ta := textarea.New()
	ta.Placeholder = "Ingredientes (um por linha)"
	ta.SetWidth(40)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false

	return adminState{
		formFocus:   formFocusList,
		name:        mk("Nome do Cupcake", 36),
		price:       mk("Preço (Ex: 8.50)", 16),
		weight:      mk("Peso (g) Ex: 100", 16),
		image:       mk("URL da Imagem", 36),
		ingredients: ta,
	}
}

func (as *adminState) resetForm() {
	as.name.SetValue("")
	as.price.SetValue("")
	as.weight.SetValue("")
	as.image.SetValue("")
	as.ingredients.SetValue("")
	as.editingID = 0
	as.errMsg = ""
}

func (as *adminState) blurAll() {
	as.name.Blur()
	as.price.Blur()
	as.weight.Blur()
	as.image.Blur()
	as.ingredients.Blur()
}

func (as *adminState) focusField(field int) tea.Cmd {
	as.blurAll()
	as.formFocus = field
	switch field {
	case admName:
		return as.name.Focus()
	case admPrice:
		return as.price.Focus()
	case admWeight:
		return as.weight.Focus()
	case admImage:
		return as.image.Focus()
	case admIngredients:
		return as.ingredients.Focus()
	}
	return nil
}

func (m Model) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	as := &m.admin

	if as.formFocus == formFocusList {
		return m.updateAdminList(key)
	}
	return m.updateAdminForm(key)
}

func (m Model) updateAdminList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	as := &m.admin
	items := m.app.Catalog.List()
	if as.cursor >= len(items) && len(items) > 0 {
		as.cursor = len(items) - 1
	}

	switch key.String() {
	case "esc", "l":
		m.admin = newAdminState()
		m.app.Logout()
	case "tab":
		as.tab = 1 - as.tab
	case "up", "k":
		if as.cursor > 0 {
			as.cursor--
		}
	case "down", "j":
		limit := len(items)
		if as.tab == 1 {
			limit = m.app.Ledger.Len()
		}
		if as.cursor < limit-1 {
			as.cursor++
		}
	case "n":
		if as.tab == 0 {
			as.resetForm()
			return m, as.focusField(admName)
		}
	case "e", "enter":
		if as.tab == 0 && len(items) > 0 {
			it := items[as.cursor]
			as.editingID = it.ID
			as.name.SetValue(it.Name)
			as.price.SetValue(it.Price.String())
			as.weight.SetValue(fmt.Sprintf("%d", it.Weight))
			as.image.SetValue(it.Image)
			as.ingredients.SetValue(strings.Join(it.Ingredients, "\n"))
			as.errMsg = ""
			return m, as.focusField(admName)
		}
	case "d":
		if as.tab == 0 && len(items) > 0 {
			if err := m.app.DeleteItem(items[as.cursor].ID); err != nil {
				as.errMsg = err.Error()
			}
		}
	}
	return m, nil
}

func (m Model) updateAdminForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	as := &m.admin

	switch key.String() {
	case "esc":
		as.blurAll()
		as.formFocus = formFocusList
		return m, nil
	case "tab":
		return m, as.focusField((as.formFocus + 1) % admFieldCount)
	case "shift+tab":
		return m, as.focusField((as.formFocus + admFieldCount - 1) % admFieldCount)
	case "ctrl+s":
		return m.submitAdminForm()
	case "enter":
		// Enter advances on single-line fields; inside the ingredients
		// textarea it inserts the newline that separates ingredients.
		if as.formFocus != admIngredients {
			return m, as.focusField(as.formFocus + 1)
		}
	}

	var cmd tea.Cmd
	switch as.formFocus {
	case admName:
		as.name, cmd = as.name.Update(key)
	case admPrice:
		as.price, cmd = as.price.Update(key)
	case admWeight:
		as.weight, cmd = as.weight.Update(key)
	case admImage:
		as.image, cmd = as.image.Update(key)
	case admIngredients:
		as.ingredients, cmd = as.ingredients.Update(key)
	}
	return m, cmd
}

func (m Model) submitAdminForm() (tea.Model, tea.Cmd) {
	as := &m.admin
	form := catalog.Form{
		Name:        as.name.Value(),
		Price:       as.price.Value(),
		Weight:      as.weight.Value(),
		Image:       as.image.Value(),
		Ingredients: as.ingredients.Value(),
	}

	var err error
	if as.editingID != 0 {
		err = m.app.UpdateItem(as.editingID, form)
	} else {
		_, err = m.app.AddItem(form)
	}
	if err != nil {
		as.errMsg = err.Error()
		return m, nil
	}

	as.resetForm()
	as.blurAll()
	as.formFocus = formFocusList
	return m, nil
}

func (m Model) viewAdmin() string {
	as := &m.admin

	tabs := []string{"Cupcakes", "Pedidos"}
	var tabRow []string
	for i, t := range tabs {
		if i == as.tab {
			tabRow = append(tabRow, selectedStyle.Render("["+t+"]"))
		} else {
			tabRow = append(tabRow, faintStyle.Render(" "+t+" "))
		}
	}

	parts := []string{
		header("Painel Administrativo"),
		strings.Join(tabRow, " "),
		"",
	}

	if as.tab == 0 {
		parts = append(parts, m.viewAdminCatalog())
	} else {
		parts = append(parts, m.viewAdminOrders())
	}

	if as.errMsg != "" {
		parts = append(parts, errorStyle.Render(as.errMsg))
	}
	if as.formFocus == formFocusList {
		parts = append(parts, help("tab alternar aba", "n novo", "e editar", "d excluir", "l sair"))
	} else {
		parts = append(parts, help("tab próximo campo", "ctrl+s salvar", "esc cancelar"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewAdminCatalog() string {
	as := &m.admin

	formTitle := "Adicionar Novo Cupcake"
	if as.editingID != 0 {
		formTitle = "Editar Cupcake"
	}
	form := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render(formTitle),
		as.name.View(),
		as.price.View(),
		as.weight.View(),
		as.image.View(),
		as.ingredients.View(),
	))

	var rows []string
	for i, it := range m.app.Catalog.List() {
		marker := "  "
		name := it.Name
		if as.formFocus == formFocusList && i == as.cursor {
			marker = "> "
			name = selectedStyle.Render(name)
		}
		rows = append(rows, fmt.Sprintf("%s%-40s %10s  %s",
			marker, name, money.Format(it.Price), faintStyle.Render(fmt.Sprintf("%dg", it.Weight))))
	}
	if len(rows) == 0 {
		rows = append(rows, faintStyle.Render("Nenhum cupcake cadastrado."))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		form,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m Model) viewAdminOrders() string {
	orders := m.app.Ledger.List()
	if len(orders) == 0 {
		return faintStyle.Render("Nenhum pedido registrado.")
	}

	var parts []string
	for _, o := range orders {
		block := lipgloss.JoinVertical(lipgloss.Left,
			renderOrder(o),
			faintStyle.Render(fmt.Sprintf("  %s · %s · %s",
				o.Customer.Name, o.Customer.Email, o.Customer.Phone)),
			faintStyle.Render(fmt.Sprintf("  %s, %s — %s/%s · CEP %s",
				o.Address.Street, o.Address.Number, o.Address.City, o.Address.State, o.Address.Zip)),
		)
		parts = append(parts, block)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
