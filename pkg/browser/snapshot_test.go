package browser

import (
	"strings"
	"testing"
)

const sampleStorefrontHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Acme Storefront</title>
	<meta name="description" content="Demo storefront for browser tests">
</head>
<body>
	<h1>Products</h1>
	<div data-testid="products-container">
		<h2>Mechanical Keyboard</h2>
		<a href="/products/mechanical-keyboard">Details</a>
		<h2>Trackball Mouse</h2>
		<a href="/products/trackball-mouse">Details</a>
	</div>
	<a href="/cart">Cart (0)</a>
</body>
</html>`

func TestParseSnapshot(t *testing.T) {
	snap, err := parseSnapshot(sampleStorefrontHTML)
	if err != nil {
		t.Fatalf("parseSnapshot failed: %v", err)
	}

	if snap.Title != "Acme Storefront" {
		t.Errorf("Expected title 'Acme Storefront', got %q", snap.Title)
	}
	if snap.Description != "Demo storefront for browser tests" {
		t.Errorf("Unexpected description %q", snap.Description)
	}

	wantHeadings := []string{"Products", "Mechanical Keyboard", "Trackball Mouse"}
	if len(snap.Headings) != len(wantHeadings) {
		t.Fatalf("Expected %d headings, got %d: %v", len(wantHeadings), len(snap.Headings), snap.Headings)
	}
	for i, want := range wantHeadings {
		if snap.Headings[i] != want {
			t.Errorf("Heading %d: expected %q, got %q", i, want, snap.Headings[i])
		}
	}

	if len(snap.Links) != 3 {
		t.Fatalf("Expected 3 links, got %d", len(snap.Links))
	}
	if snap.Links[2].Href != "/cart" {
		t.Errorf("Expected cart link last, got %q", snap.Links[2].Href)
	}
}

func TestParseSnapshotCollapsesWhitespace(t *testing.T) {
	snap, err := parseSnapshot(`<html><body><h1>
		Spring
		Sale
	</h1></body></html>`)
	if err != nil {
		t.Fatalf("parseSnapshot failed: %v", err)
	}
	if len(snap.Headings) != 1 || snap.Headings[0] != "Spring Sale" {
		t.Errorf("Expected collapsed heading 'Spring Sale', got %v", snap.Headings)
	}
}

func TestSnapshotString(t *testing.T) {
	snap := &PageSnapshot{
		URL:      "http://127.0.0.1:8080/products",
		Title:    "Acme Storefront",
		Headings: []string{"Products"},
		Links:    []Link{{Text: "Cart (0)", Href: "/cart"}},
	}

	out := snap.String()
	for _, want := range []string{"/products", "Acme Storefront", "heading: Products", "/cart"} {
		if !strings.Contains(out, want) {
			t.Errorf("Snapshot output missing %q:\n%s", want, out)
		}
	}
}
