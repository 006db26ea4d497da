package checkout

import "strings"

// Input masks reshape free text as the user types. They are pure string
// transforms applied on every change, so partially typed values keep a
// stable shape.

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPhone formats a phone number progressively as (DD) DDDDD-DDDD,
// capped at 11 digits. Short inputs keep the parts typed so far:
// "11" -> "11", "119" -> "(11) 9", "1198765432" -> "(11) 98765-432".
func MaskPhone(s string) string {
	d := digitsOnly(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// MaskCardNumber groups card digits in runs of four separated by spaces,
// capped at 16 digits.
func MaskCardNumber(s string) string {
	d := digitsOnly(s)
	if len(d) > 16 {
		d = d[:16]
	}
	var groups []string
	for len(d) > 4 {
		groups = append(groups, d[:4])
		d = d[4:]
	}
	if d != "" {
		groups = append(groups, d)
	}
	return strings.Join(groups, " ")
}

// MaskExpiry inserts the slash of MM/YY after two digits, capped at four
// digits total.
func MaskExpiry(s string) string {
	d := digitsOnly(s)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) > 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

// MaskCVV keeps digits only, capped at four.
func MaskCVV(s string) string {
	d := digitsOnly(s)
	if len(d) > 4 {
		d = d[:4]
	}
	return d
}
