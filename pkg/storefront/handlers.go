package storefront

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/entrhq/storewright/pkg/fixtures"
)

const (
	cartCookie    = "sw_cart"
	sessionCookie = "sw_session"
)

// pageData is the payload every template receives: header state plus the
// page-specific fields.
type pageData struct {
	Title     string
	CartCount int
	Email     string

	// page-specific
	Products   []fixtures.Product
	Query      string
	CartItems  []cartItem
	FormError string
	OrderID    string
}

type cartItem struct {
	Product  fixtures.Product
	Quantity int
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/products", s.handleProducts)
	r.Get("/login", s.handleLoginPage)
	r.Post("/login", s.handleLogin)
	r.Get("/cart", s.handleCart)
	r.Post("/cart/add", s.handleCartAdd)
	r.Post("/cart/remove", s.handleCartRemove)
	r.Get("/checkout", s.handleCheckoutPage)
	r.Post("/checkout", s.handleCheckout)
	r.Get("/slow", s.handleSlow)

	return r
}

// base fills the header fields shared by every page.
func (s *Server) base(r *http.Request, title string) pageData {
	data := pageData{Title: title}
	if c, err := r.Cookie(cartCookie); err == nil {
		data.CartCount = s.state.cartCount(c.Value)
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		if email, ok := s.state.sessionEmail(c.Value); ok {
			data.Email = email
		}
	}
	return data
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := s.base(r, "Home")
	data.Products = s.fixtures.Products
	s.render(w, "home", data)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	data := s.base(r, "Products")
	data.Query = strings.TrimSpace(r.URL.Query().Get("q"))

	for _, p := range s.fixtures.Products {
		if data.Query == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(data.Query)) {
			data.Products = append(data.Products, p)
		}
	}
	s.render(w, "products", data)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login", s.base(r, "Sign in"))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	valid := s.fixtures.ValidUser
	if email != valid.Email || password != valid.Password {
		s.log.Infof("rejected login for %s", email)
		data := s.base(r, "Sign in")
		data.FormError = "Invalid email or password"
		w.WriteHeader(http.StatusUnauthorized)
		s.render(w, "login", data)
		return
	}

	id := s.state.newSession(email)
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/", HttpOnly: true})
	s.log.Infof("login ok for %s", email)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// cartID returns the request's cart, creating one (and setting the cookie)
// on first use.
func (s *Server) cartID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartCookie); err == nil {
		return c.Value
	}
	id := s.state.newCart()
	http.SetCookie(w, &http.Cookie{Name: cartCookie, Value: id, Path: "/", HttpOnly: true})
	return id
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	slug := r.PostFormValue("slug")
	if _, ok := s.fixtures.ProductBySlug(slug); !ok {
		http.Error(w, "unknown product", http.StatusBadRequest)
		return
	}
	s.state.addToCart(s.cartID(w, r), slug)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	s.state.removeFromCart(s.cartID(w, r), r.PostFormValue("slug"))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	data := s.base(r, "Cart")

	if c, err := r.Cookie(cartCookie); err == nil {
		items := s.state.cartItems(c.Value)
		slugs := make([]string, 0, len(items))
		for slug := range items {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)
		for _, slug := range slugs {
			if p, ok := s.fixtures.ProductBySlug(slug); ok {
				data.CartItems = append(data.CartItems, cartItem{Product: p, Quantity: items[slug]})
			}
		}
	}
	s.render(w, "cart", data)
}

func (s *Server) handleCheckoutPage(w http.ResponseWriter, r *http.Request) {
	data := s.base(r, "Checkout")
	if data.CartCount == 0 {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	s.render(w, "checkout", data)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(cartCookie)
	if err != nil || s.state.cartCount(c.Value) == 0 {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	if r.PostFormValue("name") == "" || r.PostFormValue("address") == "" {
		data := s.base(r, "Checkout")
		data.FormError = "Name and address are required"
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, "checkout", data)
		return
	}

	orderID := s.state.placeOrder(c.Value)
	s.log.Infof("order %s placed", orderID)

	data := s.base(r, "Order confirmed")
	data.CartCount = 0
	data.OrderID = orderID
	s.render(w, "confirm", data)
}

// handleSlow serves a page whose content appears only after a script delay,
// the shape of page that breaks fixed-duration sleeps.
func (s *Server) handleSlow(w http.ResponseWriter, r *http.Request) {
	s.render(w, "slow", s.base(r, "Slow page"))
}
