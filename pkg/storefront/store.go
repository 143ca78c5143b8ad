package storefront

import (
	"sync"

	"github.com/google/uuid"
)

// store holds the server-side state: carts keyed by cart ID and login
// sessions keyed by session ID. Both IDs travel in cookies. State is
// in-memory only; a restart empties every cart, which is fine for a test
// target.
type store struct {
	mu       sync.Mutex
	carts    map[string]map[string]int // cart ID -> product slug -> quantity
	sessions map[string]string         // session ID -> user email
	orders   map[string][]string       // order ID -> product slugs
}

func newStore() *store {
	return &store{
		carts:    make(map[string]map[string]int),
		sessions: make(map[string]string),
		orders:   make(map[string][]string),
	}
}

func (st *store) newCart() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := uuid.New().String()
	st.carts[id] = make(map[string]int)
	return id
}

func (st *store) addToCart(cartID, slug string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	cart, ok := st.carts[cartID]
	if !ok {
		cart = make(map[string]int)
		st.carts[cartID] = cart
	}
	cart[slug]++
}

func (st *store) removeFromCart(cartID, slug string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if cart, ok := st.carts[cartID]; ok {
		delete(cart, slug)
	}
}

// cartItems returns slug -> quantity for a cart; nil for an unknown cart.
func (st *store) cartItems(cartID string) map[string]int {
	st.mu.Lock()
	defer st.mu.Unlock()
	cart, ok := st.carts[cartID]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(cart))
	for slug, qty := range cart {
		out[slug] = qty
	}
	return out
}

func (st *store) cartCount(cartID string) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	total := 0
	for _, qty := range st.carts[cartID] {
		total += qty
	}
	return total
}

func (st *store) newSession(email string) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := uuid.New().String()
	st.sessions[id] = email
	return id
}

func (st *store) sessionEmail(sessionID string) (string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	email, ok := st.sessions[sessionID]
	return email, ok
}

// placeOrder converts a cart into an order and empties the cart.
func (st *store) placeOrder(cartID string) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	orderID := uuid.New().String()[:8]
	var slugs []string
	for slug := range st.carts[cartID] {
		slugs = append(slugs, slug)
	}
	st.orders[orderID] = slugs
	delete(st.carts, cartID)
	return orderID
}
