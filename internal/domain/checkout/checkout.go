// Package checkout validates the multi-section checkout form and computes
// order totals. Validation is an ordered pipeline: the first failing
// section wins and is reported back so the UI can re-open it.
package checkout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Method identifies a payment method. The value doubles as the label
// recorded on the finalized order.
type Method string

const (
	MethodNone Method = ""
	MethodCard Method = "Cartão de Crédito"
	MethodPix  Method = "Pix"
	MethodCash Method = "Dinheiro na Entrega"
)

// Section identifies one of the collapsible checkout form sections.
type Section int

const (
	SectionCustomer Section = iota
	SectionAddress
	SectionPayment
	SectionPaymentDetails
)

func (s Section) String() string {
	switch s {
	case SectionCustomer:
		return "customer"
	case SectionAddress:
		return "address"
	case SectionPayment:
		return "payment"
	case SectionPaymentDetails:
		return "payment details"
	default:
		return "unknown"
	}
}

// SectionError reports the first failing section together with the inline
// message to show next to it. All checkout failures are local and
// recoverable; the user corrects the form and resubmits.
type SectionError struct {
	Section Section
	Message string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Section, e.Message)
}

// Customer holds the contact details collected at checkout.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Address holds the delivery address. All fields are required.
type Address struct {
	Street string
	Number string
	City   string
	State  string
	Zip    string
}

// CardDetails holds the credit card sub-fields, already masked for display.
type CardDetails struct {
	Number string
	Name   string
	Expiry string // MM/YY
	CVV    string
}

// Form is the complete checkout form state.
type Form struct {
	Customer Customer
	Address  Address
	Method   Method
	Card     CardDetails
	// NeedsChange is nil until the cash-on-delivery question is answered.
	NeedsChange *bool
	ChangeFor   string
}

// ChangeAmount parses the cash-change amount of the form. ok is false when
// the method is not cash on delivery, no change was requested, or the
// amount does not parse. Validate guarantees a parseable amount on forms
// it accepted, so callers building an order read it from here.
func (f Form) ChangeAmount() (amount decimal.Decimal, ok bool) {
	if f.Method != MethodCash || f.NeedsChange == nil || !*f.NeedsChange {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(f.ChangeFor))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

var expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)

// Validate runs the ordered validation pipeline against the form. The
// total is the full order total (with delivery fee), needed for the
// cash-change rule. now anchors the card expiry comparison. A nil return
// means the form can be finalized.
func Validate(f Form, total decimal.Decimal, now time.Time) *SectionError {
	if f.Customer.Name == "" || f.Customer.Email == "" ||
		!strings.Contains(f.Customer.Email, "@") || f.Customer.Phone == "" {
		return &SectionError{
			Section: SectionCustomer,
			Message: "Por favor, preencha seu nome, e-mail e telefone válidos.",
		}
	}

	a := f.Address
	if a.Street == "" || a.Number == "" || a.City == "" || a.State == "" || a.Zip == "" {
		return &SectionError{
			Section: SectionAddress,
			Message: "Por favor, preencha todos os campos do endereço.",
		}
	}

	if f.Method == MethodNone {
		return &SectionError{
			Section: SectionPayment,
			Message: "Por favor, selecione uma forma de pagamento.",
		}
	}

	switch f.Method {
	case MethodCard:
		return validateCard(f.Card, now)
	case MethodCash:
		return validateCash(f, total)
	}
	return nil
}

func validateCard(c CardDetails, now time.Time) *SectionError {
	fail := func(msg string) *SectionError {
		return &SectionError{Section: SectionPaymentDetails, Message: msg}
	}

	if c.Number == "" || c.Name == "" || c.Expiry == "" || c.CVV == "" {
		return fail("Preencha todos os dados do cartão.")
	}
	if len(strings.ReplaceAll(c.Number, " ", "")) != 16 {
		return fail("Número do cartão inválido.")
	}

	if !expiryRe.MatchString(c.Expiry) {
		return fail("Data de validade inválida.")
	}
	month, _ := strconv.Atoi(c.Expiry[:2])
	year, _ := strconv.Atoi(c.Expiry[3:])
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if month < 1 || month > 12 || year < curYear || (year == curYear && month < curMonth) {
		return fail("Data de validade inválida.")
	}

	if len(c.CVV) < 3 || len(c.CVV) > 4 {
		return fail("CVV inválido.")
	}
	return nil
}

func validateCash(f Form, total decimal.Decimal) *SectionError {
	fail := func(msg string) *SectionError {
		return &SectionError{Section: SectionPaymentDetails, Message: msg}
	}

	if f.NeedsChange == nil {
		return fail("Por favor, informe se precisa de troco.")
	}
	if !*f.NeedsChange {
		return nil
	}

	amount, ok := f.ChangeAmount()
	if !ok || !amount.IsPositive() {
		return fail("Por favor, informe um valor válido para o troco.")
	}
	if amount.LessThanOrEqual(total) {
		return fail("O valor para troco deve ser maior que o total do pedido.")
	}
	return nil
}
