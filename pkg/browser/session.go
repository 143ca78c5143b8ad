package browser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/storewright/pkg/logging"
)

// Session is one live browser automation connection. It owns a single page
// and exposes the full command vocabulary tests are allowed to use; the
// underlying Playwright handles are never exposed.
//
// A Session is meant to be used by exactly one test at a time. Element
// handles obtained from it are valid only until the next navigation.
type Session struct {
	id           string
	kind         Kind
	baseURL      string
	headless     bool
	waitBudget   time.Duration
	pollInterval time.Duration
	createdAt    time.Time
	log          *logging.Logger

	mu      sync.Mutex
	state   State
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Kind returns the browser engine this session runs on.
func (s *Session) Kind() Kind { return s.kind }

// BaseURL returns the origin Visit paths are resolved against.
func (s *Session) BaseURL() string { return s.baseURL }

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ensureReady fails with *InvalidSessionStateError unless the session is in
// the Ready state, the only state in which commands are valid.
func (s *Session) ensureReady(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return &InvalidSessionStateError{Op: op, State: s.state}
	}
	return nil
}

// teardown closes all windows and the browser process. Safe to call twice,
// and safe after a partially failed start; close errors on the page and
// context do not abort cleanup of the browser itself.
func (s *Session) teardown() error {
	s.mu.Lock()
	if s.state == StateClosed || s.state == StateTearingDown {
		s.mu.Unlock()
		return nil
	}
	s.state = StateTearingDown
	s.mu.Unlock()

	if s.page != nil {
		_ = s.page.Close()
	}
	if s.context != nil {
		_ = s.context.Close()
	}
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}

	s.mu.Lock()
	s.state = StateClosed
	s.mu.Unlock()

	if s.log != nil {
		s.log.Infof("session %s closed", s.id)
	}
	return err
}

// Visit navigates the session to baseURL+path. A bare path like "/products"
// resolves against the configured base URL; a full URL is used as-is.
func (s *Session) Visit(path string) error {
	if err := s.ensureReady("Visit"); err != nil {
		return err
	}

	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = strings.TrimSuffix(s.baseURL, "/") + path
	}

	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(s.waitBudget.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return nil
}

// Reload reloads the current page.
func (s *Session) Reload() error {
	if err := s.ensureReady("Reload"); err != nil {
		return err
	}
	if _, err := s.page.Reload(); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	return nil
}

// URL returns the current page URL.
func (s *Session) URL() (string, error) {
	if err := s.ensureReady("URL"); err != nil {
		return "", err
	}
	return s.page.URL(), nil
}

// Title returns the current page title.
func (s *Session) Title() (string, error) {
	if err := s.ensureReady("Title"); err != nil {
		return "", err
	}
	title, err := s.page.Title()
	if err != nil {
		return "", fmt.Errorf("title failed: %w", err)
	}
	return title, nil
}

// Click clicks the first visible match of selector, waiting up to the
// session's budget for one to appear. Fails with *ElementNotFoundError when
// nothing clickable matches in time.
func (s *Session) Click(selector string) error {
	if err := s.ensureReady("Click"); err != nil {
		return err
	}
	if err := s.page.Click(selector, playwright.PageClickOptions{
		Timeout: playwright.Float(float64(s.waitBudget.Milliseconds())),
	}); err != nil {
		return &ElementNotFoundError{Selector: selector, Timeout: s.waitBudget, Err: err}
	}
	return nil
}

// Type fills the first visible match of selector with text, replacing any
// existing value. Fails with *ElementNotFoundError when no input matches in
// time.
func (s *Session) Type(selector, text string) error {
	if err := s.ensureReady("Type"); err != nil {
		return err
	}
	if err := s.page.Fill(selector, text, playwright.PageFillOptions{
		Timeout: playwright.Float(float64(s.waitBudget.Milliseconds())),
	}); err != nil {
		return &ElementNotFoundError{Selector: selector, Timeout: s.waitBudget, Err: err}
	}
	return nil
}

// GetOne polls until selector matches exactly one element and returns its
// handle. More than one match fails immediately with
// *AmbiguousSelectorError; zero matches for the whole timeout fails with
// *ElementNotFoundError. Zero timeout means the session's wait budget.
func (s *Session) GetOne(selector string, timeout time.Duration) (*Element, error) {
	if err := s.ensureReady("GetOne"); err != nil {
		return nil, err
	}
	timeout = s.effectiveTimeout(timeout)

	var el *Element
	result, err := Poll(func() (bool, error) {
		handles, err := s.page.QuerySelectorAll(selector)
		if err != nil {
			return false, err
		}
		switch len(handles) {
		case 0:
			return false, nil
		case 1:
			el = &Element{selector: selector, handle: handles[0]}
			return true, nil
		default:
			return false, &AmbiguousSelectorError{Selector: selector, Matches: len(handles)}
		}
	}, timeout, s.pollInterval)

	var ambiguous *AmbiguousSelectorError
	if errors.As(err, &ambiguous) {
		return nil, ambiguous
	}
	if err != nil {
		return nil, err
	}
	if !result.Met {
		return nil, &ElementNotFoundError{Selector: selector, Timeout: timeout}
	}
	return el, nil
}

// GetFirst polls until selector matches at least one element and returns the
// first. Taking the first of many is the deliberate choice here; use GetOne
// when the selector must be unique. Zero timeout means the session's wait
// budget.
func (s *Session) GetFirst(selector string, timeout time.Duration) (*Element, error) {
	if err := s.ensureReady("GetFirst"); err != nil {
		return nil, err
	}
	timeout = s.effectiveTimeout(timeout)

	var el *Element
	result, err := Poll(func() (bool, error) {
		handles, err := s.page.QuerySelectorAll(selector)
		if err != nil {
			return false, err
		}
		if len(handles) == 0 {
			return false, nil
		}
		el = &Element{selector: selector, handle: handles[0]}
		return true, nil
	}, timeout, s.pollInterval)
	if err != nil {
		return nil, err
	}
	if !result.Met {
		return nil, &ElementNotFoundError{Selector: selector, Timeout: timeout}
	}
	return el, nil
}

// GetAll returns handles for every current match of selector. The result
// length equals the number of DOM matches at the moment of the query; there
// is no waiting involved.
func (s *Session) GetAll(selector string) ([]*Element, error) {
	if err := s.ensureReady("GetAll"); err != nil {
		return nil, err
	}

	handles, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("query %q failed: %w", selector, err)
	}
	elements := make([]*Element, 0, len(handles))
	for _, h := range handles {
		elements = append(elements, &Element{selector: selector, handle: h})
	}
	return elements, nil
}

// effectiveTimeout resolves a per-call timeout override; zero or negative
// means the session's wait budget.
func (s *Session) effectiveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return s.waitBudget
	}
	return timeout
}

// visibleWithin builds the wait-for-visible options the selector commands
// share.
func visibleWithin(timeout time.Duration) playwright.PageWaitForSelectorOptions {
	return playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}
}

// ShouldBeVisible polls until a match of selector is present with non-zero
// rendered size. Fails with *VisibilityTimeoutError when nothing becomes
// visible within the wait budget.
func (s *Session) ShouldBeVisible(selector string) error {
	if err := s.ensureReady("ShouldBeVisible"); err != nil {
		return err
	}

	if _, err := s.page.WaitForSelector(selector, visibleWithin(s.waitBudget)); err != nil {
		return &VisibilityTimeoutError{Selector: selector, Timeout: s.waitBudget, Err: err}
	}
	return nil
}

// WaitForGone polls until no element matches selector. Fails with
// *StillPresentError when a match survives the whole timeout; zero timeout
// means the session's wait budget.
func (s *Session) WaitForGone(selector string, timeout time.Duration) error {
	if err := s.ensureReady("WaitForGone"); err != nil {
		return err
	}
	timeout = s.effectiveTimeout(timeout)

	result, err := Poll(func() (bool, error) {
		handles, err := s.page.QuerySelectorAll(selector)
		if err != nil {
			return false, err
		}
		return len(handles) == 0, nil
	}, timeout, s.pollInterval)
	if err != nil {
		return err
	}
	if !result.Met {
		return &StillPresentError{Selector: selector, Timeout: timeout}
	}
	return nil
}

// WaitForURL polls until the current URL matches pattern. Fails with
// *ConditionTimeoutError when it never does within the wait budget.
func (s *Session) WaitForURL(pattern *regexp.Regexp) error {
	return s.WaitFor(fmt.Sprintf("URL matching %s", pattern), func() (bool, error) {
		return pattern.MatchString(s.page.URL()), nil
	})
}

// Text returns the text content of the first visible match of selector.
func (s *Session) Text(selector string) (string, error) {
	if err := s.ensureReady("Text"); err != nil {
		return "", err
	}

	handle, err := s.page.WaitForSelector(selector, visibleWithin(s.waitBudget))
	if err != nil {
		return "", &ElementNotFoundError{Selector: selector, Timeout: s.waitBudget, Err: err}
	}
	text, err := handle.TextContent()
	if err != nil {
		return "", fmt.Errorf("text of %q failed: %w", selector, err)
	}
	return strings.TrimSpace(text), nil
}

// Attribute returns the named attribute of the first match of selector.
func (s *Session) Attribute(selector, name string) (string, error) {
	el, err := s.GetFirst(selector, 0)
	if err != nil {
		return "", err
	}
	return el.Attribute(name)
}

// Eval executes a JavaScript expression in the page and returns its value.
func (s *Session) Eval(js string) (interface{}, error) {
	if err := s.ensureReady("Eval"); err != nil {
		return nil, err
	}
	result, err := s.page.Evaluate(js)
	if err != nil {
		return nil, fmt.Errorf("eval failed: %w", err)
	}
	return result, nil
}

// SetViewport resizes the viewport, for responsive layout checks.
func (s *Session) SetViewport(width, height int) error {
	if err := s.ensureReady("SetViewport"); err != nil {
		return err
	}
	if err := s.page.SetViewportSize(width, height); err != nil {
		return fmt.Errorf("set viewport %dx%d failed: %w", width, height, err)
	}
	return nil
}

// BoundingBox returns the rendered rectangle of the first visible match of
// selector.
func (s *Session) BoundingBox(selector string) (*Rect, error) {
	if err := s.ensureReady("BoundingBox"); err != nil {
		return nil, err
	}

	handle, err := s.page.WaitForSelector(selector, visibleWithin(s.waitBudget))
	if err != nil {
		return nil, &ElementNotFoundError{Selector: selector, Timeout: s.waitBudget, Err: err}
	}
	box, err := handle.BoundingBox()
	if err != nil {
		return nil, fmt.Errorf("bounding box of %q failed: %w", selector, err)
	}
	if box == nil {
		return nil, &VisibilityTimeoutError{Selector: selector, Timeout: s.waitBudget}
	}
	return &Rect{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}, nil
}

// Content returns the full HTML of the current page.
func (s *Session) Content() (string, error) {
	if err := s.ensureReady("Content"); err != nil {
		return "", err
	}
	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("content failed: %w", err)
	}
	return html, nil
}
