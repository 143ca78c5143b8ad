package browser

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Element is an opaque handle to a located DOM node. It is valid only within
// the lifetime of the page that produced it and becomes stale on navigation.
// Handles are never cached or pooled; re-query after any Visit or Reload.
type Element struct {
	selector string
	handle   playwright.ElementHandle
}

// Selector returns the selector string that located this element.
func (e *Element) Selector() string { return e.selector }

// Text returns the element's trimmed text content.
func (e *Element) Text() (string, error) {
	text, err := e.handle.TextContent()
	if err != nil {
		return "", fmt.Errorf("text of %q failed: %w", e.selector, err)
	}
	return strings.TrimSpace(text), nil
}

// Attribute returns the named attribute's value, or "" when absent.
func (e *Element) Attribute(name string) (string, error) {
	value, err := e.handle.GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("attribute %q of %q failed: %w", name, e.selector, err)
	}
	return value, nil
}

// Click clicks the element.
func (e *Element) Click() error {
	if err := e.handle.Click(); err != nil {
		return fmt.Errorf("click on %q failed: %w", e.selector, err)
	}
	return nil
}

// Visible reports whether the element currently has non-zero rendered size.
func (e *Element) Visible() (bool, error) {
	visible, err := e.handle.IsVisible()
	if err != nil {
		return false, fmt.Errorf("visibility of %q failed: %w", e.selector, err)
	}
	return visible, nil
}

// BoundingBox returns the element's rendered rectangle, or nil when the
// element is not rendered.
func (e *Element) BoundingBox() (*Rect, error) {
	box, err := e.handle.BoundingBox()
	if err != nil {
		return nil, fmt.Errorf("bounding box of %q failed: %w", e.selector, err)
	}
	if box == nil {
		return nil, nil
	}
	return &Rect{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}, nil
}
