package browser

import "time"

// Kind selects the browser engine a session runs on.
type Kind string

const (
	Chromium Kind = "chromium"
	Firefox  Kind = "firefox"
)

// ParseKind maps a BROWSER environment value to a Kind. Unknown values fall
// back to Chromium so a typo degrades to the default engine rather than a
// failed suite.
func ParseKind(s string) Kind {
	switch s {
	case "firefox":
		return Firefox
	default:
		return Chromium
	}
}

// State is the lifecycle state of a Session.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateStarting      State = "starting"
	StateReady         State = "ready"
	StateTearingDown   State = "tearing-down"
	StateClosed        State = "closed"
)

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect is the bounding rectangle of a rendered element, in CSS pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	// Kind selects the browser engine (default: Chromium)
	Kind Kind

	// BaseURL is prepended to every Visit path
	BaseURL string

	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// WaitBudget is the default timeout for locating elements and for
	// condition waits (0 means DefaultWaitBudget)
	WaitBudget time.Duration

	// PollInterval is the delay between condition polls (0 means
	// DefaultPollInterval)
	PollInterval time.Duration
}

// Default values for various operations
const (
	DefaultWaitBudget     = 10 * time.Second
	DefaultPollInterval   = 250 * time.Millisecond
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultMaxSessions    = 5
)
