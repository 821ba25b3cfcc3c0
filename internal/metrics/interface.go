package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLogins()
	IncLoginFailures()
	IncRegistrations()
	IncStatEntries()
	ObserveRequestDuration(method, route string, status int, seconds float64)
	SetActiveSessions(n float64)
}
