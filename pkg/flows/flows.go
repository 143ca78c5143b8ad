// Package flows provides multi-step storefront journeys composed from
// browser.Session commands. Tests call these instead of re-scripting the
// same login or cart sequence per file.
package flows

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/entrhq/storewright/pkg/browser"
	"github.com/entrhq/storewright/pkg/fixtures"
)

var productsURL = regexp.MustCompile(`/products(\?.*)?$`)

// LoginAsTestUser submits the login form and waits until the session has
// left the login page. With bad credentials the URL stays on /login and this
// returns the timeout error, which is the signal invalid-login tests assert.
func LoginAsTestUser(s *browser.Session, email, password string) error {
	if err := s.Visit("/login"); err != nil {
		return err
	}
	if err := s.Type(`[data-testid="email-input"]`, email); err != nil {
		return err
	}
	if err := s.Type(`[data-testid="password-input"]`, password); err != nil {
		return err
	}
	if err := s.Click(`button[type="submit"]`); err != nil {
		return err
	}
	return s.WaitForURL(productsURL)
}

// CartItemCount reads the header cart badge.
func CartItemCount(s *browser.Session) (int, error) {
	text, err := s.Text(`[data-testid="cart-count"]`)
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("cart badge %q is not a number: %w", text, err)
	}
	return count, nil
}

// AddToCart clicks the add-to-cart button on a product card and waits for
// the cart badge to reflect at least one item.
func AddToCart(s *browser.Session, product fixtures.Product) error {
	selector := fmt.Sprintf(`[data-testid="product-%s"] button[data-action="add-to-cart"]`, product.Slug)
	before, err := CartItemCount(s)
	if err != nil {
		return err
	}
	if err := s.Click(selector); err != nil {
		return err
	}
	return s.WaitFor("cart badge to increment", func() (bool, error) {
		count, err := CartItemCount(s)
		if err != nil {
			return false, err
		}
		return count > before, nil
	})
}

// SearchProducts fills the catalog search box, submits it, and waits for the
// results container to render.
func SearchProducts(s *browser.Session, query string) error {
	if err := s.Visit("/products"); err != nil {
		return err
	}
	if err := s.Type(`[data-testid="search-input"]`, query); err != nil {
		return err
	}
	if err := s.Click(`[data-testid="search-form"] button[type="submit"]`); err != nil {
		return err
	}
	return s.ShouldBeVisible(`[data-testid="products-container"]`)
}

// Checkout fills the checkout form and waits for the confirmation block.
// Returns the order number.
func Checkout(s *browser.Session, name, address string) (string, error) {
	if err := s.Visit("/checkout"); err != nil {
		return "", err
	}
	if err := s.Type(`[data-testid="name-input"]`, name); err != nil {
		return "", err
	}
	if err := s.Type(`[data-testid="address-input"]`, address); err != nil {
		return "", err
	}
	if err := s.Click(`[data-testid="checkout-form"] button[type="submit"]`); err != nil {
		return "", err
	}
	if err := s.ShouldBeVisible(`[data-testid="order-confirmation"]`); err != nil {
		return "", err
	}
	return s.Text(`[data-testid="order-number"]`)
}
