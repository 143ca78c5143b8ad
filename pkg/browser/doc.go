// Package browser provides web browser automation for end-to-end storefront
// tests through Playwright.
//
// The package is built around two core concepts:
//
//  1. Session: one live browser automation connection, used by exactly one
//     test at a time, with a base URL and a fixed wait budget
//  2. Manager: owns the Playwright driver and the lifecycle of every session
//
// # Session Lifecycle
//
// Sessions move through a fixed set of states:
//
//	Uninitialized -> Starting -> Ready -> TearingDown -> Closed
//
// Ready is the only state in which command methods are valid; calls in any
// other state fail with *InvalidSessionStateError. Teardown is idempotent and
// safe to call after a partially failed start.
//
// # Command Surface
//
// Session methods are the only way test code touches the browser. The raw
// Playwright handles never escape this package, so individual tests cannot
// hand-roll their own selector or wait policy against the driver.
//
// There is no unconditional sleep in the command surface. Waiting is always
// expressed as a condition: a selector reaching a state (ShouldBeVisible,
// WaitForGone), a URL matching a pattern (WaitForURL), or an arbitrary
// predicate polled on an interval (WaitFor). A timed-out wait is reported as
// a typed error, never as a silent pass.
//
// # Element Targeting
//
// Selector resolution is an explicit choice at the call site: GetOne fails
// with *AmbiguousSelectorError when a selector matches more than one element,
// GetFirst takes the first match deliberately. Click and Type act on the
// first visible match, matching what a user sees.
//
// # Example Usage
//
//	manager := browser.NewManager()
//	if err := manager.Initialize(); err != nil { ... }
//	defer manager.Shutdown()
//
//	session, err := manager.StartSession(browser.SessionOptions{
//	    BaseURL: "http://127.0.0.1:8080",
//	    Kind:    browser.Chromium,
//	})
//	defer manager.CloseSession(session)
//
//	err = session.Visit("/products")
//	err = session.ShouldBeVisible(`[data-testid="products-container"]`)
package browser
