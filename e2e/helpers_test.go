//go:build e2e

package e2e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entrhq/storewright/pkg/browser"
)

// skipUnlessMatch honors the GREP filter before any browser work happens.
func skipUnlessMatch(t *testing.T) {
	t.Helper()
	if !testFilter.Matches(t.Name()) {
		t.Skipf("GREP=%q does not match %s", testFilter.Pattern(), t.Name())
	}
}

// newSession hands out a Ready session against the suite target and registers
// teardown. On failure the final page snapshot is logged to aid debugging.
func newSession(t *testing.T) *browser.Session {
	t.Helper()
	return newSessionKind(t, browser.ParseKind(cfg.Browser))
}

func newSessionKind(t *testing.T, kind browser.Kind) *browser.Session {
	t.Helper()
	skipUnlessMatch(t)

	sess, err := manager.StartSession(browser.SessionOptions{
		Kind:         kind,
		BaseURL:      baseURL,
		Headless:     cfg.Headless,
		Viewport:     &browser.Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight},
		WaitBudget:   cfg.WaitBudget,
		PollInterval: cfg.PollInterval,
	})
	var startErr *browser.SessionStartError
	if errors.As(err, &startErr) && kind != browser.ParseKind(cfg.Browser) {
		t.Skipf("%s engine unavailable: %v", kind, err)
	}
	require.NoError(t, err, "starting browser session")

	t.Cleanup(func() {
		if t.Failed() {
			if snap, snapErr := sess.Snapshot(); snapErr == nil {
				t.Logf("page at end of failed test:\n%s", snap)
			}
		}
		if err := manager.CloseSession(sess); err != nil {
			t.Errorf("closing session: %v", err)
		}
	})
	return sess
}
