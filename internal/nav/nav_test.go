package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucas178/cupcake-shop/internal/domain/auth"
)

const longPress = 1500 * time.Millisecond

func newTestNavigator() (*Navigator, *auth.Gate) {
	g := auth.NewGate("admin", "admin123")
	return New(g, longPress), g
}

func TestNavigator_StartsAtHome(t *testing.T) {
	n, _ := newTestNavigator()
	assert.Equal(t, ScreenHome, n.Current())
}

func TestNavigator_AllowedJumps(t *testing.T) {
	n, _ := newTestNavigator()

	assert.Equal(t, ScreenFlavors, n.Go(ScreenFlavors))
	assert.Equal(t, ScreenCheckout, n.Go(ScreenCheckout))
	assert.Equal(t, ScreenOrderSuccess, n.Go(ScreenOrderSuccess))
	assert.Equal(t, ScreenHome, n.Go(ScreenHome))
}

func TestNavigator_RejectedJumpKeepsScreen(t *testing.T) {
	n, _ := newTestNavigator()

	// Checkout is not reachable from Home.
	assert.Equal(t, ScreenHome, n.Go(ScreenCheckout))

	n.Go(ScreenFlavors)
	n.Go(ScreenCheckout)
	// Home is not reachable from Checkout; cancel goes back to Flavors.
	assert.Equal(t, ScreenCheckout, n.Go(ScreenHome))
	assert.Equal(t, ScreenFlavors, n.Go(ScreenFlavors))
}

func TestNavigator_AdminGuard(t *testing.T) {
	n, g := newTestNavigator()
	n.Go(ScreenAdminLogin)

	// Unauthenticated requests for Admin land on the login screen.
	assert.Equal(t, ScreenAdminLogin, n.Go(ScreenAdmin))

	require.True(t, g.Login("admin", "admin123"))
	assert.Equal(t, ScreenAdmin, n.Go(ScreenAdmin))
}

func TestNavigator_LongPress(t *testing.T) {
	n, _ := newTestNavigator()

	assert.False(t, n.LongPress(longPress-time.Millisecond))
	assert.Equal(t, ScreenHome, n.Current())

	assert.True(t, n.LongPress(longPress))
	assert.Equal(t, ScreenAdminLogin, n.Current())

	// The gesture only works from Home.
	assert.False(t, n.LongPress(longPress))
	assert.Equal(t, ScreenAdminLogin, n.Current())
}

func TestCanGo_TableIsExhaustive(t *testing.T) {
	screens := []Screen{
		ScreenHome, ScreenProfile, ScreenFlavors, ScreenOrders,
		ScreenCheckout, ScreenOrderSuccess, ScreenAdminLogin, ScreenAdmin,
	}
	for _, s := range screens {
		assert.Contains(t, transitions, s, "screen %s has no transitions", s)
	}
}
