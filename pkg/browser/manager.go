package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/storewright/pkg/logging"
)

// Manager owns the Playwright driver and the lifecycle of every browser
// session. One Manager serves a whole test run; each test acquires its own
// Session from it.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	playwright  *playwright.Playwright
	maxSessions int
	initialized bool
	log         *logging.Logger
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	log, _ := logging.NewLogger("browser")
	return &Manager{
		sessions:    make(map[string]*Session),
		maxSessions: DefaultMaxSessions,
		log:         log,
	}
}

// Initialize installs (if needed) and starts the Playwright driver.
// This must be called before creating any sessions.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Driver output is noise in test logs, discard it.
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.playwright = pw
	m.initialized = true
	m.log.Infof("playwright driver started")
	return nil
}

// StartSession launches a browser of the requested kind and returns a Ready
// session. Launch failures are reported as *SessionStartError; partially
// created resources are released before returning.
func (m *Manager) StartSession(opts SessionOptions) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, &SessionStartError{Kind: opts.Kind, Err: fmt.Errorf("manager not initialized")}
	}
	if len(m.sessions) >= m.maxSessions {
		return nil, &SessionStartError{Kind: opts.Kind, Err: fmt.Errorf("maximum number of sessions (%d) reached", m.maxSessions)}
	}

	// Set defaults
	if opts.Kind == "" {
		opts.Kind = Chromium
	}
	if opts.Viewport == nil {
		opts.Viewport = &Viewport{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		}
	}
	if opts.WaitBudget == 0 {
		opts.WaitBudget = DefaultWaitBudget
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = DefaultPollInterval
	}

	session := &Session{
		id:           uuid.New().String(),
		kind:         opts.Kind,
		baseURL:      opts.BaseURL,
		headless:     opts.Headless,
		waitBudget:   opts.WaitBudget,
		pollInterval: opts.PollInterval,
		createdAt:    time.Now(),
		state:        StateStarting,
		log:          m.log,
	}

	var browserType playwright.BrowserType
	switch opts.Kind {
	case Firefox:
		browserType = m.playwright.Firefox
	default:
		browserType = m.playwright.Chromium
	}

	b, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		session.state = StateClosed
		return nil, &SessionStartError{Kind: opts.Kind, Err: err}
	}
	session.browser = b

	context, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		},
	})
	if err != nil {
		_ = b.Close()
		session.state = StateClosed
		return nil, &SessionStartError{Kind: opts.Kind, Err: err}
	}
	session.context = context

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = b.Close()
		session.state = StateClosed
		return nil, &SessionStartError{Kind: opts.Kind, Err: err}
	}
	page.SetDefaultTimeout(float64(opts.WaitBudget.Milliseconds()))
	session.page = page

	session.state = StateReady
	m.sessions[session.id] = session
	m.log.Infof("session %s ready (%s, headless=%v, base=%s)", session.id, opts.Kind, opts.Headless, opts.BaseURL)
	return session, nil
}

// CloseSession tears down a session and removes it from the manager. It is
// safe to call for a session that already closed, or whose start partially
// failed: every close is idempotent and close errors do not abort cleanup.
func (m *Manager) CloseSession(s *Session) error {
	if s == nil {
		return nil
	}

	m.mu.Lock()
	delete(m.sessions, s.id)
	m.mu.Unlock()

	return s.teardown()
}

// CloseAll tears down every active session.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	var errs []error
	for _, s := range sessions {
		if err := s.teardown(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing sessions: %v", errs)
	}
	return nil
}

// ActiveSessions returns the number of sessions the manager currently owns.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// SetMaxSessions sets the maximum number of concurrent sessions.
func (m *Manager) SetMaxSessions(max int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxSessions = max
}

// Shutdown closes all sessions and stops the Playwright driver. Safe to call
// twice; a second call is a no-op.
func (m *Manager) Shutdown() error {
	if err := m.CloseAll(); err != nil {
		m.log.Warnf("close-all during shutdown: %v", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.playwright == nil {
		return nil
	}
	if err := m.playwright.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	m.playwright = nil
	m.initialized = false
	m.log.Infof("playwright driver stopped")
	return nil
}
