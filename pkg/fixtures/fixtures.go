// Package fixtures is the single source of truth for test data: users,
// catalog products, endpoint paths, and named viewports. Tests receive typed
// records from here instead of redefining literals per file, so a credential
// or path changes in exactly one place.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// User is a storefront account used by login flows.
type User struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Product is a catalog entry the storefront serves.
type Product struct {
	Slug  string `yaml:"slug"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Viewport is a named device geometry for responsive checks.
type Viewport struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Paths are the endpoint paths the suite navigates to.
type Paths struct {
	Home     string `yaml:"home"`
	Login    string `yaml:"login"`
	Products string `yaml:"products"`
	Cart     string `yaml:"cart"`
	Checkout string `yaml:"checkout"`
}

// Set is the full fixture catalog for a run.
type Set struct {
	ValidUser   User       `yaml:"valid_user"`
	InvalidUser User       `yaml:"invalid_user"`
	Products    []Product  `yaml:"products"`
	Viewports   []Viewport `yaml:"viewports"`
	Paths       Paths      `yaml:"paths"`
}

// Default returns the embedded fixture set.
func Default() (*Set, error) {
	return parse(defaultFixtures)
}

// Load reads a fixture set from an override file, for runs against a
// deployment with its own accounts and catalog.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Set, error) {
	set := &Set{}
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) validate() error {
	if s.ValidUser.Email == "" || s.ValidUser.Password == "" {
		return fmt.Errorf("valid_user requires email and password")
	}
	if len(s.Products) == 0 {
		return fmt.Errorf("at least one product is required")
	}
	for _, p := range s.Products {
		if p.Slug == "" {
			return fmt.Errorf("product %q has no slug", p.Name)
		}
	}
	if s.Paths.Login == "" || s.Paths.Products == "" {
		return fmt.Errorf("paths require at least login and products")
	}
	return nil
}

// ProductBySlug finds a product in the catalog.
func (s *Set) ProductBySlug(slug string) (Product, bool) {
	for _, p := range s.Products {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// ViewportByName finds a named viewport.
func (s *Set) ViewportByName(name string) (Viewport, bool) {
	for _, v := range s.Viewports {
		if v.Name == name {
			return v, true
		}
	}
	return Viewport{}, false
}
