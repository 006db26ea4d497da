// Package nav is the screen navigator: a finite set of screens, an
// explicit transition table, and the admin guard.
package nav

import (
	"time"

	"github.com/lucas178/cupcake-shop/internal/domain/auth"
)

// Screen enumerates every screen of the storefront.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenProfile
	ScreenFlavors
	ScreenOrders
	ScreenCheckout
	ScreenOrderSuccess
	ScreenAdminLogin
	ScreenAdmin
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenProfile:
		return "profile"
	case ScreenFlavors:
		return "flavors"
	case ScreenOrders:
		return "orders"
	case ScreenCheckout:
		return "checkout"
	case ScreenOrderSuccess:
		return "order success"
	case ScreenAdminLogin:
		return "admin login"
	case ScreenAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// transitions is the exhaustive jump table: every screen lists the screens
// reachable from it by a user action. Keep it exhaustive over all screens
// so new ones cannot be forgotten.
var transitions = map[Screen][]Screen{
	ScreenHome:         {ScreenProfile, ScreenFlavors, ScreenOrders, ScreenAdminLogin},
	ScreenProfile:      {ScreenHome},
	ScreenFlavors:      {ScreenHome, ScreenCheckout},
	ScreenOrders:       {ScreenHome},
	ScreenCheckout:     {ScreenFlavors, ScreenOrderSuccess},
	ScreenOrderSuccess: {ScreenHome},
	ScreenAdminLogin:   {ScreenHome, ScreenAdmin},
	ScreenAdmin:        {ScreenHome},
}

// Navigator selects the active screen. Jumps are named screen-to-screen
// transitions; the Admin screen additionally requires the gate to be
// authenticated, otherwise AdminLogin is rendered instead.
type Navigator struct {
	current   Screen
	gate      *auth.Gate
	longPress time.Duration
}

// New creates a Navigator starting at Home. longPress is the minimum hold
// duration of the home-logo gesture that opens the admin login.
func New(gate *auth.Gate, longPress time.Duration) *Navigator {
	return &Navigator{current: ScreenHome, gate: gate, longPress: longPress}
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	return n.current
}

// CanGo reports whether the transition table allows jumping from one screen
// to another.
func CanGo(from, to Screen) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Go jumps to the requested screen if the transition table allows it,
// applying the admin guard. It returns the screen that is now active.
func (n *Navigator) Go(to Screen) Screen {
	if !CanGo(n.current, to) {
		return n.current
	}
	if to == ScreenAdmin && !n.gate.Authenticated() {
		to = ScreenAdminLogin
	}
	n.current = to
	return n.current
}

// LongPress handles the home-logo gesture: a hold of at least the
// configured threshold opens the admin login. It reports whether the
// gesture triggered a jump.
func (n *Navigator) LongPress(held time.Duration) bool {
	if n.current != ScreenHome || held < n.longPress {
		return false
	}
	n.current = ScreenAdminLogin
	return true
}
