//go:build e2e

// Package e2e drives the demo storefront through real browsers.
//
// The suite is isolated from the standard test run via a build tag. It needs
// the Playwright browsers installed (the manager installs them on first run)
// and is intended for CI pipelines or explicit local runs:
//
//	go test -tags=e2e ./e2e/...
//
// By default each run starts its own storefront server on a random port, so
// the suite is fully hermetic. Point BASE_URL at a deployed storefront to
// run the same tests against it instead.
//
// Environment:
//
//	BASE_URL  target application origin (default: embedded server)
//	BROWSER   chromium | firefox (default: chromium)
//	HEADLESS  force headless on/off (CI=true always forces it on)
//	GREP      glob filter on test names
package e2e
