package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	logins         int
	loginFailures  int
	registrations  int
	statEntries    int
	durations      []float64
	activeSessions float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		durations: make([]float64, 0),
	}
}

func (m *Mock) IncLogins() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins++
}

func (m *Mock) IncLoginFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginFailures++
}

func (m *Mock) IncRegistrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations++
}

func (m *Mock) IncStatEntries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statEntries++
}

func (m *Mock) ObserveRequestDuration(method, route string, status int, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations = append(m.durations, seconds)
}

func (m *Mock) SetActiveSessions(n float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSessions = n
}

// Logins returns the number of times IncLogins was called.
func (m *Mock) Logins() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins
}

// LoginFailures returns the number of times IncLoginFailures was called.
func (m *Mock) LoginFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginFailures
}

// Registrations returns the number of times IncRegistrations was called.
func (m *Mock) Registrations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registrations
}

// StatEntries returns the number of times IncStatEntries was called.
func (m *Mock) StatEntries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statEntries
}

// ActiveSessions returns the last value passed to SetActiveSessions.
func (m *Mock) ActiveSessions() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSessions
}
