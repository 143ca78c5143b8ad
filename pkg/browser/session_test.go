package browser

import (
	"errors"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Commands are only valid in the Ready state; every other state must fail
// with InvalidSessionStateError before touching the driver.
func TestCommandsRejectedOutsideReadyState(t *testing.T) {
	states := []State{StateUninitialized, StateStarting, StateTearingDown, StateClosed}

	for _, state := range states {
		t.Run(string(state), func(t *testing.T) {
			s := &Session{state: state, waitBudget: time.Second, pollInterval: 10 * time.Millisecond}

			calls := map[string]error{
				"Visit":           s.Visit("/products"),
				"Reload":          s.Reload(),
				"Click":           s.Click("button"),
				"Type":            s.Type("input", "x"),
				"ShouldBeVisible": s.ShouldBeVisible("#x"),
				"WaitForGone":     s.WaitForGone("#x", time.Second),
				"SetViewport":     s.SetViewport(375, 667),
			}
			if _, err := s.GetOne("#x", 0); err != nil {
				calls["GetOne"] = err
			}
			if _, err := s.GetFirst("#x", 0); err != nil {
				calls["GetFirst"] = err
			}
			if _, err := s.URL(); err != nil {
				calls["URL"] = err
			}
			if _, err := s.GetAll("#x"); err != nil {
				calls["GetAll"] = err
			}
			if _, err := s.Text("#x"); err != nil {
				calls["Text"] = err
			}
			if _, err := s.Eval("1+1"); err != nil {
				calls["Eval"] = err
			}
			if _, err := s.Title(); err != nil {
				calls["Title"] = err
			}

			for op, err := range calls {
				var stateErr *InvalidSessionStateError
				if !errors.As(err, &stateErr) {
					t.Errorf("%s in state %s: expected InvalidSessionStateError, got %v", op, state, err)
				}
			}
		})
	}
}

func TestURLOutsideReadyStateFails(t *testing.T) {
	s := &Session{state: StateClosed}

	url, err := s.URL()
	var stateErr *InvalidSessionStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("Expected InvalidSessionStateError for closed session, got %v", err)
	}
	if url != "" {
		t.Errorf("Expected empty URL alongside the error, got %q", url)
	}
}

func TestEffectiveTimeout(t *testing.T) {
	s := &Session{waitBudget: 10 * time.Second}

	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, 10 * time.Second},
		{-time.Second, 10 * time.Second},
		{2 * time.Second, 2 * time.Second},
	}
	for _, tt := range tests {
		if got := s.effectiveTimeout(tt.in); got != tt.want {
			t.Errorf("effectiveTimeout(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestVisibleWithinOptions(t *testing.T) {
	opts := visibleWithin(3 * time.Second)

	if opts.State != playwright.WaitForSelectorStateVisible {
		t.Errorf("Expected visible state, got %v", opts.State)
	}
	if opts.Timeout == nil || *opts.Timeout != 3000 {
		t.Errorf("Expected 3000ms timeout, got %v", opts.Timeout)
	}
}

func TestTeardownIdempotent(t *testing.T) {
	// A session whose start partially failed has no driver handles; teardown
	// must still succeed, and succeed again on a second call.
	s := &Session{state: StateStarting}

	if err := s.teardown(); err != nil {
		t.Fatalf("First teardown failed: %v", err)
	}
	if got := s.State(); got != StateClosed {
		t.Errorf("Expected %s after teardown, got %s", StateClosed, got)
	}
	if err := s.teardown(); err != nil {
		t.Fatalf("Second teardown failed: %v", err)
	}
}

func TestManagerCloseSessionNil(t *testing.T) {
	m := NewManager()
	if err := m.CloseSession(nil); err != nil {
		t.Errorf("CloseSession(nil) must be a no-op, got %v", err)
	}
}

func TestManagerStartSessionWithoutInitialize(t *testing.T) {
	m := NewManager()
	_, err := m.StartSession(SessionOptions{Kind: Chromium})

	var startErr *SessionStartError
	if !errors.As(err, &startErr) {
		t.Fatalf("Expected SessionStartError, got %v", err)
	}
}

func TestManagerShutdownBeforeInitialize(t *testing.T) {
	m := NewManager()
	if err := m.Shutdown(); err != nil {
		t.Errorf("Shutdown of uninitialized manager must be a no-op, got %v", err)
	}
	// And again, to check idempotence.
	if err := m.Shutdown(); err != nil {
		t.Errorf("Second shutdown failed: %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"firefox", Firefox},
		{"chromium", Chromium},
		{"", Chromium},
		{"safari", Chromium}, // unknown engines fall back to the default
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
