package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucas178/cupcake-shop/internal/app"
	"github.com/lucas178/cupcake-shop/internal/domain/checkout"
	"github.com/lucas178/cupcake-shop/internal/nav"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	a, err := app.New(&app.Config{
		DeliveryFee: "5.00",
		PromoCode:   "PROMO10",
		PromoRate:   "0.10",
		AdminUser:   "admin",
		AdminPass:   "admin123",
		PixKey:      "a1b2c3d4-e5f6-7890-g1h2-i3j4k5l6m7n8",
		LongPress:   1500 * time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)
	return New(a)
}

// checkoutModel returns a model on the checkout screen with one item in
// the cart.
func checkoutModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m.app.UpdateCart(m.app.Catalog.List()[0], 2)
	m.app.Nav.Go(nav.ScreenFlavors)
	m.app.Nav.Go(nav.ScreenCheckout)
	return m
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func pressRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestCheckout_AddressFailureReopensSection(t *testing.T) {
	m := checkoutModel(t)

	cs := &m.checkout
	cs.inputs[ctlCustName].SetValue("Maria Silva")
	cs.inputs[ctlCustEmail].SetValue("maria@example.com")
	cs.inputs[ctlCustPhone].SetValue("(11) 98765-4321")
	cs.method = checkout.MethodPix
	cs.open[secAddress] = false
	cs.focusControl(ctlFinalize)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cs = &m.checkout
	assert.True(t, cs.open[secAddress])
	assert.Equal(t, "Por favor, preencha todos os campos do endereço.", cs.sectionErr[secAddress])
	assert.Equal(t, ctlAddrStreet, cs.focus)
	assert.Equal(t, 0, m.app.Ledger.Len())
	assert.Equal(t, nav.ScreenCheckout, m.app.Nav.Current())
}

func TestCheckout_DetailFailureOpensPaymentSection(t *testing.T) {
	m := checkoutModel(t)

	cs := &m.checkout
	cs.inputs[ctlCustName].SetValue("Maria Silva")
	cs.inputs[ctlCustEmail].SetValue("maria@example.com")
	cs.inputs[ctlCustPhone].SetValue("(11) 98765-4321")
	cs.inputs[ctlAddrStreet].SetValue("Rua das Flores")
	cs.inputs[ctlAddrNumber].SetValue("123")
	cs.inputs[ctlAddrZip].SetValue("01234-567")
	cs.inputs[ctlAddrCity].SetValue("São Paulo")
	cs.inputs[ctlAddrState].SetValue("SP")
	cs.method = checkout.MethodCard
	cs.open[secPayment] = false
	cs.focusControl(ctlFinalize)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cs = &m.checkout
	assert.True(t, cs.open[secPayment])
	assert.Equal(t, "Preencha todos os dados do cartão.", cs.detailErr)
	assert.Equal(t, 0, m.app.Ledger.Len())
}

func TestCheckout_SuccessfulFinalize(t *testing.T) {
	m := checkoutModel(t)

	cs := &m.checkout
	cs.inputs[ctlCustName].SetValue("Maria Silva")
	cs.inputs[ctlCustEmail].SetValue("maria@example.com")
	cs.inputs[ctlCustPhone].SetValue("(11) 98765-4321")
	cs.inputs[ctlAddrStreet].SetValue("Rua das Flores")
	cs.inputs[ctlAddrNumber].SetValue("123")
	cs.inputs[ctlAddrZip].SetValue("01234-567")
	cs.inputs[ctlAddrCity].SetValue("São Paulo")
	cs.inputs[ctlAddrState].SetValue("SP")
	cs.method = checkout.MethodPix
	cs.focusControl(ctlFinalize)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.ScreenOrderSuccess, m.app.Nav.Current())
	assert.Equal(t, 1, m.app.Ledger.Len())
	assert.True(t, m.app.Cart.Empty())
	// The form resets for the next order.
	assert.Empty(t, m.checkout.inputs[ctlCustName].Value())
}

func TestCheckout_PhoneMaskAppliesWhileTyping(t *testing.T) {
	m := checkoutModel(t)
	m.checkout.focusControl(ctlCustPhone)

	m = pressRunes(t, m, "119")
	assert.Equal(t, "(11) 9", m.checkout.inputs[ctlCustPhone].Value())

	m = pressRunes(t, m, "87654321")
	assert.Equal(t, "(11) 98765-4321", m.checkout.inputs[ctlCustPhone].Value())
}

func TestCheckout_ExpiryMaskAppliesWhileTyping(t *testing.T) {
	m := checkoutModel(t)
	m.checkout.method = checkout.MethodCard
	m.checkout.focusControl(ctlCardExpiry)

	m = pressRunes(t, m, "1226")
	assert.Equal(t, "12/26", m.checkout.inputs[ctlCardExpiry].Value())
}

func TestCheckout_EditingCouponDropsDiscount(t *testing.T) {
	m := checkoutModel(t)
	m.checkout.focusControl(ctlCoupon)

	m = pressRunes(t, m, "promo10")
	m.checkout.applyCoupon(m.app)
	require.True(t, m.checkout.couponOK)

	m = pressRunes(t, m, "x")
	assert.False(t, m.checkout.couponOK)
	assert.True(t, m.checkout.appliedRate.IsZero())
	assert.Empty(t, m.checkout.appliedCode)
}

func TestCheckout_EmptyCartShowsRedirectPrompt(t *testing.T) {
	m := newTestModel(t)
	m.app.Nav.Go(nav.ScreenFlavors)
	m.app.Nav.Go(nav.ScreenCheckout)

	assert.Contains(t, m.View(), "Seu carrinho está vazio.")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, nav.ScreenFlavors, m.app.Nav.Current())
}

func TestHome_LongPressOpensAdminLogin(t *testing.T) {
	m := newTestModel(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	m.home.now = func() time.Time { return now }

	// Six key repeats 300ms apart add up to a 1.5s hold.
	for i := 0; i < 6; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
		now = now.Add(300 * time.Millisecond)
	}
	assert.Equal(t, nav.ScreenAdminLogin, m.app.Nav.Current())
}

func TestHome_LongPressGapResetsHold(t *testing.T) {
	m := newTestModel(t)

	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	offsets := []time.Duration{
		0,
		300 * time.Millisecond,
		// A pause longer than the repeat gap means the key was released.
		1800 * time.Millisecond,
		2100 * time.Millisecond,
	}
	i := 0
	m.home.now = func() time.Time {
		now := base.Add(offsets[i])
		i++
		return now
	}

	for range offsets {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	}
	assert.Equal(t, nav.ScreenHome, m.app.Nav.Current())
}

func TestLogin_WrongCredentialsShowError(t *testing.T) {
	m := newTestModel(t)
	m.app.Nav.Go(nav.ScreenAdminLogin)

	m = pressRunes(t, m, "admin")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressRunes(t, m, "errada")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Usuário ou senha inválidos.", m.login.errMsg)
	assert.Equal(t, nav.ScreenAdminLogin, m.app.Nav.Current())
}

func TestLogin_SuccessOpensAdmin(t *testing.T) {
	m := newTestModel(t)
	m.app.Nav.Go(nav.ScreenAdminLogin)

	m = pressRunes(t, m, "admin")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressRunes(t, m, "admin123")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.ScreenAdmin, m.app.Nav.Current())
}
