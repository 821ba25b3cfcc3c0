package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hooplog_logins_total",
			Help: "The total number of successful logins.",
		}),
		LoginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hooplog_login_failures_total",
			Help: "The total number of rejected login attempts.",
		}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hooplog_registrations_total",
			Help: "The total number of players registered.",
		}),
		StatEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hooplog_stat_entries_total",
			Help: "The total number of stat entries appended to the ledger.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hooplog_request_duration_seconds",
			Help:    "The duration of HTTP requests by method, route and status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route", "status"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hooplog_active_sessions",
			Help: "The number of sessions that have not expired or been invalidated.",
		}),
	}

	reg.MustRegister(
		s.Logins,
		s.LoginFailures,
		s.Registrations,
		s.StatEntries,
		s.RequestDuration,
		s.ActiveSessions,
	)

	return s
}

func (s *Service) IncLogins() {
	s.Logins.Inc()
}

func (s *Service) IncLoginFailures() {
	s.LoginFailures.Inc()
}

func (s *Service) IncRegistrations() {
	s.Registrations.Inc()
}

func (s *Service) IncStatEntries() {
	s.StatEntries.Inc()
}

func (s *Service) ObserveRequestDuration(method, route string, status int, seconds float64) {
	s.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

func (s *Service) SetActiveSessions(n float64) {
	s.ActiveSessions.Set(n)
}
