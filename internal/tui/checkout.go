package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/lucas178/cupcake-shop/internal/app"
	"github.com/lucas178/cupcake-shop/internal/domain/checkout"
	"github.com/lucas178/cupcake-shop/internal/domain/coupon"
	"github.com/lucas178/cupcake-shop/internal/domain/order"
	"github.com/lucas178/cupcake-shop/internal/nav"
	"github.com/lucas178/cupcake-shop/pkg/money"
)

// Focusable checkout controls, in tab order.
const (
	ctlCustName = iota
	ctlCustEmail
	ctlCustPhone
	ctlAddrStreet
	ctlAddrNumber
	ctlAddrZip
	ctlAddrCity
	ctlAddrState
	ctlMethod
	ctlCardName
	ctlCardNumber
	ctlCardExpiry
	ctlCardCVV
	ctlNeedsChange
	ctlChangeFor
	ctlCoupon
	ctlApplyCoupon
	ctlCancel
	ctlFinalize
	ctlCount
)

// Collapsible form sections, indexed by secXxx.
const (
	secCustomer = iota
	secAddress
	secPayment
	secCount
)

type checkoutState struct {
	inputs [ctlCount]textinput.Model
	focus  int
	open   [secCount]bool

	method      checkout.Method
	needsChange *bool

	sectionErr [secCount]string
	detailErr  string

	appliedCode string
	appliedRate decimal.Decimal
	couponErr   string
	couponOK    bool

	confirmCancel bool
}

var paymentMethods = []checkout.Method{
	checkout.MethodCard,
	checkout.MethodPix,
	checkout.MethodCash,
}

func newCheckoutState() checkoutState {
	cs := checkoutState{appliedRate: decimal.Zero}
	cs.open[secCustomer] = true

	mk := func(ctl int, placeholder string, limit, width int) {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = width
		cs.inputs[ctl] = in
	}
	mk(ctlCustName, "Ex: Maria da Silva", 80, 32)
	mk(ctlCustEmail, "Ex: maria@email.com", 80, 32)
	mk(ctlCustPhone, "(11) 98765-4321", 15, 18)
	mk(ctlAddrStreet, "Ex: Rua das Flores", 80, 32)
	mk(ctlAddrNumber, "123", 10, 8)
	mk(ctlAddrZip, "12345-678", 10, 12)
	mk(ctlAddrCity, "São Paulo", 60, 24)
	mk(ctlAddrState, "SP", 20, 8)
	mk(ctlCardName, "Ex: Maria S. Silva", 60, 28)
	mk(ctlCardNumber, "0000 0000 0000 0000", 19, 22)
	mk(ctlCardExpiry, "MM/AA", 5, 8)
	mk(ctlCardCVV, "123", 4, 6)
	mk(ctlChangeFor, "Ex: 50.00", 12, 12)
	mk(ctlCoupon, "Ex: PROMO10", 24, 16)

	cs.inputs[ctlCustName].Focus()
	return cs
}

func isTextControl(ctl int) bool {
	switch ctl {
	case ctlMethod, ctlNeedsChange, ctlApplyCoupon, ctlCancel, ctlFinalize:
		return false
	}
	return true
}

func sectionOf(ctl int) int {
	switch {
	case ctl <= ctlCustPhone:
		return secCustomer
	case ctl <= ctlAddrState:
		return secAddress
	case ctl <= ctlChangeFor:
		return secPayment
	default:
		return -1
	}
}

// visible reports whether a control is currently part of the form, given the
// selected payment method and the change answer.
func (cs *checkoutState) visible(ctl int) bool {
	switch ctl {
	case ctlCardName, ctlCardNumber, ctlCardExpiry, ctlCardCVV:
		return cs.method == checkout.MethodCard
	case ctlNeedsChange:
		return cs.method == checkout.MethodCash
	case ctlChangeFor:
		return cs.method == checkout.MethodCash &&
			cs.needsChange != nil && *cs.needsChange
	}
	return true
}

func (cs *checkoutState) moveFocus(delta int) {
	if isTextControl(cs.focus) {
		cs.inputs[cs.focus].Blur()
	}
	for {
		cs.focus = (cs.focus + delta + ctlCount) % ctlCount
		if cs.visible(cs.focus) {
			break
		}
	}
	if sec := sectionOf(cs.focus); sec >= 0 {
		cs.open[sec] = true
	}
	if isTextControl(cs.focus) {
		cs.inputs[cs.focus].Focus()
	}
}

func (cs *checkoutState) focusControl(ctl int) {
	if isTextControl(cs.focus) {
		cs.inputs[cs.focus].Blur()
	}
	cs.focus = ctl
	if sec := sectionOf(ctl); sec >= 0 {
		cs.open[sec] = true
	}
	if isTextControl(ctl) {
		cs.inputs[ctl].Focus()
	}
}

func (cs *checkoutState) selectMethod(method checkout.Method) {
	cs.method = method
	cs.needsChange = nil
	cs.inputs[ctlChangeFor].SetValue("")
	cs.sectionErr[secPayment] = ""
	cs.detailErr = ""
}

func (m Model) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Empty cart: no form, only the redirect prompt.
	if m.app.Cart.Empty() {
		switch key.String() {
		case "enter", "v", "esc":
			m.app.Nav.Go(nav.ScreenFlavors)
		}
		return m, nil
	}

	cs := &m.checkout

	if cs.confirmCancel {
		switch key.String() {
		case "y", "s", "enter":
			m.checkout = newCheckoutState()
			m.app.Nav.Go(nav.ScreenFlavors)
		case "n", "esc":
			cs.confirmCancel = false
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		cs.confirmCancel = true
		return m, nil
	case "tab", "down":
		cs.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		cs.moveFocus(-1)
		return m, nil
	case "ctrl+o":
		if sec := sectionOf(cs.focus); sec >= 0 {
			cs.open[sec] = !cs.open[sec]
		}
		return m, nil
	case "enter":
		return m.checkoutEnter()
	}

	switch cs.focus {
	case ctlMethod:
		switch key.String() {
		case "left", "right", " ":
			cs.selectMethod(nextMethod(cs.method, key.String() != "left"))
		case "c":
			if cs.method == checkout.MethodPix {
				if err := clipboard.WriteAll(m.app.PixKey()); err != nil {
					m.status = "Não foi possível copiar a chave Pix."
				} else {
					m.status = "Chave Pix copiada!"
				}
			}
		case "1":
			cs.selectMethod(checkout.MethodCard)
		case "2":
			cs.selectMethod(checkout.MethodPix)
		case "3":
			cs.selectMethod(checkout.MethodCash)
		}
		return m, nil
	case ctlNeedsChange:
		switch key.String() {
		case "s", "right":
			yes := true
			cs.needsChange = &yes
			cs.detailErr = ""
		case "n", "left":
			no := false
			cs.needsChange = &no
			cs.inputs[ctlChangeFor].SetValue("")
			cs.detailErr = ""
		}
		return m, nil
	case ctlApplyCoupon, ctlCancel, ctlFinalize:
		return m, nil
	}

	// Text input editing.
	var cmd tea.Cmd
	before := cs.inputs[cs.focus].Value()
	cs.inputs[cs.focus], cmd = cs.inputs[cs.focus].Update(msg)
	after := cs.inputs[cs.focus].Value()
	if after != before {
		cs.fieldChanged(cs.focus)
	}
	return m, cmd
}

// fieldChanged applies input masks and clears stale inline errors after an
// edit.
func (cs *checkoutState) fieldChanged(ctl int) {
	applyMask := func(mask func(string) string) {
		masked := mask(cs.inputs[ctl].Value())
		if masked != cs.inputs[ctl].Value() {
			cs.inputs[ctl].SetValue(masked)
			cs.inputs[ctl].CursorEnd()
		}
	}

	switch ctl {
	case ctlCustPhone:
		applyMask(checkout.MaskPhone)
	case ctlCardNumber:
		applyMask(checkout.MaskCardNumber)
	case ctlCardExpiry:
		applyMask(checkout.MaskExpiry)
	case ctlCardCVV:
		applyMask(checkout.MaskCVV)
	case ctlCoupon:
		// Editing the code drops any previously applied discount.
		cs.appliedRate = decimal.Zero
		cs.appliedCode = ""
		cs.couponOK = false
		cs.couponErr = ""
	}

	switch sectionOf(ctl) {
	case secCustomer:
		cs.sectionErr[secCustomer] = ""
	case secAddress:
		cs.sectionErr[secAddress] = ""
	case secPayment:
		cs.detailErr = ""
	}
}

func (m Model) checkoutEnter() (tea.Model, tea.Cmd) {
	cs := &m.checkout

	switch cs.focus {
	case ctlMethod:
		if cs.method == checkout.MethodNone {
			cs.selectMethod(paymentMethods[0])
		}
		cs.moveFocus(1)
	case ctlNeedsChange:
		cs.moveFocus(1)
	case ctlApplyCoupon, ctlCoupon:
		cs.applyCoupon(m.app)
	case ctlCancel:
		cs.confirmCancel = true
	case ctlFinalize:
		return m.finalizeOrder()
	default:
		cs.moveFocus(1)
	}
	return m, nil
}

func (cs *checkoutState) applyCoupon(a *app.App) {
	code := cs.inputs[ctlCoupon].Value()

	rule, err := a.ApplyCoupon(code)
	if err != nil {
		cs.appliedRate = decimal.Zero
		cs.appliedCode = ""
		cs.couponOK = false
		if errors.Is(err, coupon.ErrInvalidCoupon) {
			cs.couponErr = "Cupom de desconto inválido."
		} else {
			cs.couponErr = err.Error()
		}
		return
	}
	cs.appliedRate = rule.Rate
	cs.appliedCode = rule.Code
	cs.couponOK = true
	cs.couponErr = ""
}

func (m Model) finalizeOrder() (tea.Model, tea.Cmd) {
	cs := &m.checkout
	v := func(ctl int) string { return cs.inputs[ctl].Value() }

	form := checkout.Form{
		Customer: checkout.Customer{
			Name:  v(ctlCustName),
			Email: v(ctlCustEmail),
			Phone: v(ctlCustPhone),
		},
		Address: checkout.Address{
			Street: v(ctlAddrStreet),
			Number: v(ctlAddrNumber),
			City:   v(ctlAddrCity),
			State:  v(ctlAddrState),
			Zip:    v(ctlAddrZip),
		},
		Method:      cs.method,
		Card:        checkout.CardDetails{Number: v(ctlCardNumber), Name: v(ctlCardName), Expiry: v(ctlCardExpiry), CVV: v(ctlCardCVV)},
		NeedsChange: cs.needsChange,
		ChangeFor:   v(ctlChangeFor),
	}

	_, err := m.app.PlaceOrder(order.PlaceRequest{
		Form:         form,
		CouponCode:   cs.appliedCode,
		DiscountRate: cs.appliedRate,
	})
	if err == nil {
		m.checkout = newCheckoutState()
		return m, nil
	}

	var serr *checkout.SectionError
	if errors.As(err, &serr) {
		switch serr.Section {
		case checkout.SectionCustomer:
			cs.sectionErr[secCustomer] = serr.Message
			cs.open[secCustomer] = true
			cs.focusControl(ctlCustName)
		case checkout.SectionAddress:
			cs.sectionErr[secAddress] = serr.Message
			cs.open[secAddress] = true
			cs.focusControl(ctlAddrStreet)
		case checkout.SectionPayment:
			cs.sectionErr[secPayment] = serr.Message
			cs.open[secPayment] = true
			cs.focusControl(ctlMethod)
		case checkout.SectionPaymentDetails:
			cs.detailErr = serr.Message
			cs.open[secPayment] = true
			cs.focusControl(ctlMethod)
		}
		return m, nil
	}

	m.status = err.Error()
	return m, nil
}

func nextMethod(cur checkout.Method, forward bool) checkout.Method {
	idx := -1
	for i, pm := range paymentMethods {
		if pm == cur {
			idx = i
			break
		}
	}
	if forward {
		return paymentMethods[(idx+1+len(paymentMethods))%len(paymentMethods)]
	}
	return paymentMethods[(idx-1+len(paymentMethods))%len(paymentMethods)]
}

// --- rendering ---

func (m Model) viewCheckout() string {
	if m.app.Cart.Empty() {
		return lipgloss.JoinVertical(lipgloss.Left,
			header("Pedido"),
			"",
			faintStyle.Render("Seu carrinho está vazio."),
			help("enter ver sabores"),
		)
	}

	cs := &m.checkout
	totals := m.app.Totals(cs.appliedRate)

	parts := []string{header("Pedido"), ""}
	parts = append(parts, m.viewCartSummary(totals))
	parts = append(parts, m.viewCustomerSection())
	parts = append(parts, m.viewAddressSection())
	parts = append(parts, m.viewPaymentSection())
	parts = append(parts, m.viewCouponSection())
	parts = append(parts, m.viewCheckoutButtons())
	parts = append(parts, help("tab/↑↓ navegar", "ctrl+o abrir/fechar seção", "esc cancelar"))

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if cs.confirmCancel {
		modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			sectionStyle.Render("Confirmar Cancelamento"),
			"Tem certeza que deseja cancelar este pedido?",
			help("s sim", "n não"),
		))
		return lipgloss.JoinVertical(lipgloss.Left, body, "", modal)
	}
	return body
}

func (m Model) viewCartSummary(totals checkout.Totals) string {
	cs := &m.checkout

	var rows []string
	for _, e := range m.app.Cart.Entries() {
		rows = append(rows, fmt.Sprintf("%dx %-35s %s",
			e.Quantity, e.Item.Name, money.Format(e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))))
	}
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("%-22s %s", "Subtotal", money.Format(totals.Subtotal)))
	if cs.appliedRate.IsPositive() {
		rows = append(rows, okStyle.Render(fmt.Sprintf("%-22s -%s",
			"Desconto ("+money.Percent(cs.appliedRate)+")", money.Format(totals.Discount))))
	}
	rows = append(rows, fmt.Sprintf("%-22s %s", "Taxa de Entrega", money.Format(m.app.Orders.DeliveryFee())))
	rows = append(rows, priceStyle.Render(fmt.Sprintf("%-22s %s", "TOTAL", money.Format(totals.Total))))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func sectionHeader(title string, open, complete bool) string {
	arrow := "▸"
	if open {
		arrow = "▾"
	}
	line := arrow + " " + sectionStyle.Render(title)
	if complete && !open {
		line += " " + okStyle.Render("✔")
	}
	return line
}

func (m Model) fieldRow(label string, ctl int) string {
	cs := &m.checkout
	l := labelStyle.Render(label)
	if cs.focus == ctl {
		l = selectedStyle.Render(label)
	}
	return l + " " + cs.inputs[ctl].View()
}

func (m Model) viewCustomerSection() string {
	cs := &m.checkout
	complete := cs.inputs[ctlCustName].Value() != "" &&
		cs.inputs[ctlCustEmail].Value() != "" &&
		cs.inputs[ctlCustPhone].Value() != ""

	rows := []string{sectionHeader("DADOS DO CLIENTE", cs.open[secCustomer], complete)}
	if cs.open[secCustomer] {
		rows = append(rows,
			m.fieldRow("Nome Completo      ", ctlCustName),
			m.fieldRow("E-mail             ", ctlCustEmail),
			m.fieldRow("Telefone de Contato", ctlCustPhone),
		)
		if msg := cs.sectionErr[secCustomer]; msg != "" {
			rows = append(rows, errorStyle.Render(msg))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewAddressSection() string {
	cs := &m.checkout
	complete := cs.inputs[ctlAddrStreet].Value() != "" &&
		cs.inputs[ctlAddrNumber].Value() != "" &&
		cs.inputs[ctlAddrCity].Value() != "" &&
		cs.inputs[ctlAddrState].Value() != "" &&
		cs.inputs[ctlAddrZip].Value() != ""

	rows := []string{sectionHeader("ENDEREÇO DE ENTREGA", cs.open[secAddress], complete)}
	if cs.open[secAddress] {
		rows = append(rows,
			m.fieldRow("Rua   ", ctlAddrStreet),
			m.fieldRow("Número", ctlAddrNumber),
			m.fieldRow("CEP   ", ctlAddrZip),
			m.fieldRow("Cidade", ctlAddrCity),
			m.fieldRow("Estado", ctlAddrState),
		)
		if msg := cs.sectionErr[secAddress]; msg != "" {
			rows = append(rows, errorStyle.Render(msg))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewPaymentSection() string {
	cs := &m.checkout
	rows := []string{sectionHeader("FORMA DE PAGAMENTO", cs.open[secPayment], cs.method != checkout.MethodNone)}
	if !cs.open[secPayment] {
		return rows[0]
	}

	var opts []string
	for i, pm := range paymentMethods {
		label := fmt.Sprintf("%d. %s", i+1, pm)
		if pm == cs.method {
			label = selectedStyle.Render("● " + label)
		} else {
			label = faintStyle.Render("○ " + label)
		}
		opts = append(opts, label)
	}
	methodLine := lipgloss.JoinHorizontal(lipgloss.Top, opts[0]+"   ", opts[1]+"   ", opts[2])
	if cs.focus == ctlMethod {
		methodLine = "> " + methodLine
	} else {
		methodLine = "  " + methodLine
	}
	rows = append(rows, methodLine)

	switch cs.method {
	case checkout.MethodCard:
		rows = append(rows,
			m.fieldRow("Nome no Cartão   ", ctlCardName),
			m.fieldRow("Número do Cartão ", ctlCardNumber),
			m.fieldRow("Validade (MM/AA) ", ctlCardExpiry),
			m.fieldRow("CVV              ", ctlCardCVV),
		)
	case checkout.MethodPix:
		rows = append(rows,
			labelStyle.Render("Pague com Pix usando a chave abaixo:"),
			boxStyle.Render(m.app.PixKey()),
			faintStyle.Render("c copiar chave"),
		)
	case checkout.MethodCash:
		answer := "—"
		if cs.needsChange != nil {
			if *cs.needsChange {
				answer = "Sim"
			} else {
				answer = "Não"
			}
		}
		changeRow := labelStyle.Render("Precisa de troco?") + " " + answer
		if cs.focus == ctlNeedsChange {
			changeRow = selectedStyle.Render("Precisa de troco?") + " [" + answer + "]"
		}
		rows = append(rows, changeRow)
		if cs.visible(ctlChangeFor) {
			rows = append(rows, m.fieldRow("Troco para quanto?", ctlChangeFor))
		}
	}

	if msg := cs.sectionErr[secPayment]; msg != "" {
		rows = append(rows, errorStyle.Render(msg))
	}
	if cs.detailErr != "" {
		rows = append(rows, errorStyle.Render(cs.detailErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCouponSection() string {
	cs := &m.checkout
	apply := "[ Aplicar ]"
	if cs.focus == ctlApplyCoupon {
		apply = selectedStyle.Render(apply)
	}
	rows := []string{
		sectionStyle.Render("CUPOM DE DESCONTO"),
		m.fieldRow("Código", ctlCoupon) + " " + apply,
	}
	if cs.couponErr != "" {
		rows = append(rows, errorStyle.Render(cs.couponErr))
	}
	if cs.couponOK {
		rows = append(rows, okStyle.Render(
			"Cupom de "+money.Percent(cs.appliedRate)+" aplicado com sucesso!"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCheckoutButtons() string {
	cs := &m.checkout
	cancel := "[ CANCELAR ]"
	finalize := "[ FINALIZAR PEDIDO ]"
	if cs.focus == ctlCancel {
		cancel = selectedStyle.Render(cancel)
	}
	if cs.focus == ctlFinalize {
		finalize = selectedStyle.Render(finalize)
	}
	return cancel + "  " + finalize
}
