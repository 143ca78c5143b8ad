//go:build e2e

package e2e

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/entrhq/storewright/pkg/browser"
)

func TestLateContentBecomesVisible(t *testing.T) {
	sess := newSession(t)

	require.NoError(t, sess.Visit("/slow"))
	require.NoError(t, sess.ShouldBeVisible(`[data-testid="spinner"]`))

	require.NoError(t, sess.ShouldBeVisible(`[data-testid="late-content"]`))
	require.NoError(t, sess.WaitForGone(".spinner", 0))

	text, err := sess.Text(`[data-testid="late-content"]`)
	require.NoError(t, err)
	require.NotEmpty(t, text)
}

func TestVisibilityTimeoutAfterFullBudget(t *testing.T) {
	sess := newSession(t)

	require.NoError(t, sess.Visit("/products"))

	start := time.Now()
	err := sess.ShouldBeVisible(`[data-testid="does-not-exist"]`)
	elapsed := time.Since(start)

	var timeout *browser.VisibilityTimeoutError
	require.True(t, errors.As(err, &timeout), "want visibility timeout, got %v", err)
	require.GreaterOrEqual(t, elapsed, cfg.WaitBudget, "timeout must not fire before the budget elapses")
}

func TestWaitForCustomCondition(t *testing.T) {
	sess := newSession(t)

	require.NoError(t, sess.Visit("/slow"))
	err := sess.WaitFor("late content revealed", func() (bool, error) {
		out, err := sess.Eval(`document.getElementById("late-content").style.display`)
		if err != nil {
			return false, err
		}
		display, _ := out.(string)
		return display != "none", nil
	})
	require.NoError(t, err)
}
