package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// PageSnapshot is a compact summary of the current page, intended for
// failure diagnostics: enough structure to see what the browser was actually
// looking at, without dumping the raw HTML into test output.
type PageSnapshot struct {
	URL         string
	Title       string
	Description string
	Headings    []string
	Links       []Link
}

// Link is a hyperlink captured in a snapshot.
type Link struct {
	Text string
	Href string
}

// Snapshot parses the current page and returns its summary. Valid only in
// the Ready state.
func (s *Session) Snapshot() (*PageSnapshot, error) {
	raw, err := s.Content()
	if err != nil {
		return nil, err
	}

	snap, err := parseSnapshot(raw)
	if err != nil {
		return nil, err
	}
	snap.URL = s.page.URL()
	return snap, nil
}

// String renders the snapshot for test logs.
func (p *PageSnapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "url: %s\ntitle: %q\n", p.URL, p.Title)
	if p.Description != "" {
		fmt.Fprintf(&b, "description: %q\n", p.Description)
	}
	for _, h := range p.Headings {
		fmt.Fprintf(&b, "heading: %s\n", h)
	}
	for _, l := range p.Links {
		fmt.Fprintf(&b, "link: %q -> %s\n", l.Text, l.Href)
	}
	return b.String()
}

func parseSnapshot(rawHTML string) (*PageSnapshot, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	snap := &PageSnapshot{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if snap.Title == "" {
					snap.Title = nodeText(n)
				}
			case "meta":
				if snap.Description == "" {
					snap.Description = metaDescription(n)
				}
			case "h1", "h2", "h3":
				if text := nodeText(n); text != "" {
					snap.Headings = append(snap.Headings, text)
				}
			case "a":
				if href := attrValue(n, "href"); href != "" {
					snap.Links = append(snap.Links, Link{Text: nodeText(n), Href: href})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return snap, nil
}

// nodeText collects and trims the text content beneath a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func metaDescription(n *html.Node) string {
	if attrValue(n, "name") != "description" {
		return ""
	}
	return strings.TrimSpace(attrValue(n, "content"))
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
