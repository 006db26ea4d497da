// Package auth gates the administrative panel behind a single credential
// pair. This is an explicitly non-production stand-in: no lockout, no rate
// limiting, no hashing.
package auth

import "crypto/subtle"

// Gate checks a literal credential pair and tracks the authenticated flag
// for the session.
type Gate struct {
	user          string
	pass          string
	authenticated bool
}

// NewGate creates a Gate for the given credential pair.
func NewGate(user, pass string) *Gate {
	return &Gate{user: user, pass: pass}
}

// Login compares the given pair against the configured credentials in
// constant time. On success it flips the authenticated flag; on failure
// the flag is left untouched and the caller shows a generic error.
func (g *Gate) Login(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(g.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(g.pass)) == 1
	if userOK && passOK {
		g.authenticated = true
		return true
	}
	return false
}

// Logout clears the authenticated flag.
func (g *Gate) Logout() {
	g.authenticated = false
}

// Authenticated reports whether an admin login succeeded this session.
func (g *Gate) Authenticated() bool {
	return g.authenticated
}
