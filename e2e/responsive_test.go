//go:build e2e

package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entrhq/storewright/pkg/fixtures"
)

func setFixtureViewport(t *testing.T, name string) fixtures.Viewport {
	t.Helper()
	vp, ok := fx.ViewportByName(name)
	require.True(t, ok, "viewport %q not in fixtures", name)
	return vp
}

func TestMenuToggleAppearsOnMobile(t *testing.T) {
	sess := newSession(t)

	mobile := setFixtureViewport(t, "mobile")
	require.NoError(t, sess.SetViewport(mobile.Width, mobile.Height))
	require.NoError(t, sess.Visit("/"))

	require.NoError(t, sess.ShouldBeVisible(`[data-testid="menu-toggle"]`))

	nav, err := sess.GetFirst(`[data-testid="nav-links"]`, 0)
	require.NoError(t, err)
	visible, err := nav.Visible()
	require.NoError(t, err)
	require.False(t, visible, "nav links should collapse behind the toggle on mobile")
}

func TestNavLinksShownOnDesktop(t *testing.T) {
	sess := newSession(t)

	desktop := setFixtureViewport(t, "desktop")
	require.NoError(t, sess.SetViewport(desktop.Width, desktop.Height))
	require.NoError(t, sess.Visit("/"))

	require.NoError(t, sess.ShouldBeVisible(`[data-testid="nav-links"]`))

	toggle, err := sess.GetFirst(`[data-testid="menu-toggle"]`, 0)
	require.NoError(t, err)
	visible, err := toggle.Visible()
	require.NoError(t, err)
	require.False(t, visible, "menu toggle should be hidden on desktop")
}

func TestProductGridCollapsesToSingleColumn(t *testing.T) {
	sess := newSession(t)

	cardBox := func(slug string) (x, y float64) {
		box, err := sess.BoundingBox(fmt.Sprintf(`[data-testid="product-%s"]`, slug))
		require.NoError(t, err)
		return box.X, box.Y
	}

	desktop := setFixtureViewport(t, "desktop")
	require.NoError(t, sess.SetViewport(desktop.Width, desktop.Height))
	require.NoError(t, sess.Visit("/products"))

	_, firstY := cardBox(fx.Products[0].Slug)
	_, secondY := cardBox(fx.Products[1].Slug)
	require.Equal(t, firstY, secondY, "cards should share a row on desktop")

	mobile := setFixtureViewport(t, "mobile")
	require.NoError(t, sess.SetViewport(mobile.Width, mobile.Height))
	require.NoError(t, sess.Reload())

	firstX, firstY := cardBox(fx.Products[0].Slug)
	secondX, secondY := cardBox(fx.Products[1].Slug)
	require.Equal(t, firstX, secondX, "cards should align in one column on mobile")
	require.Greater(t, secondY, firstY, "cards should stack vertically on mobile")
}
