//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entrhq/storewright/pkg/flows"
)

func TestCheckoutPlacesOrder(t *testing.T) {
	sess := newSession(t)

	require.NoError(t, sess.Visit("/products"))
	require.NoError(t, flows.AddToCart(sess, fx.Products[2]))

	orderID, err := flows.Checkout(sess, "Ada Lovelace", "12 Analytical Way")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	count, err := flows.CartItemCount(sess)
	require.NoError(t, err)
	require.Zero(t, count, "cart should be emptied after checkout")
}

func TestCheckoutWithEmptyCartRedirects(t *testing.T) {
	sess := newSession(t)

	require.NoError(t, sess.Visit("/checkout"))
	require.NoError(t, sess.ShouldBeVisible(`[data-testid="products-container"]`))

	url, err := sess.URL()
	require.NoError(t, err)
	require.Contains(t, url, "/products")
}

func TestCheckoutRequiresNameAndAddress(t *testing.T) {
	sess := newSession(t)

	require.NoError(t, sess.Visit("/products"))
	require.NoError(t, flows.AddToCart(sess, fx.Products[0]))

	require.NoError(t, sess.Visit("/checkout"))
	require.NoError(t, sess.Click(`[data-testid="checkout-form"] button[type="submit"]`))
	require.NoError(t, sess.ShouldBeVisible(`[data-testid="checkout-error"]`))

	msg, err := sess.Text(`[data-testid="checkout-error"]`)
	require.NoError(t, err)
	require.Equal(t, "Name and address are required", msg)
}
