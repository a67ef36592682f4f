package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunal77/web-hackathon/models"
)

const namespace = "manu"

// Metrics holds the service's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ManuEvents       *prometheus.CounterVec
	ImportsTotal     *prometheus.CounterVec
	WebsocketClients prometheus.Gauge
	DigestRuns       prometheus.Counter

	OpenManus         prometheus.Gauge
	OverdueManus      prometheus.Gauge
	CriticalManus     prometheus.Gauge
	DistrictsByColour *prometheus.GaugeVec
}

// NewMetrics registers every collector on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route template",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),
		ManuEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Manu store mutations by event type",
		}, []string{"event"}),
		ImportsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Bulk upload previews by variant and format",
		}, []string{"variant", "format"}),
		WebsocketClients: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_clients",
			Help:      "Connected dashboard websocket clients",
		}),
		DigestRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sla_digest_runs_total",
			Help:      "Completed SLA digest runs",
		}),
		OpenManus: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open",
			Help:      "Manus not yet resolved",
		}),
		OverdueManus: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_past_sla",
			Help:      "Open manus pending longer than the SLA target",
		}),
		CriticalManus: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "critical",
			Help:      "Manus with Severe Distress sentiment or Critical risk",
		}),
		DistrictsByColour: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "districts_by_risk_colour",
			Help:      "Districts per map risk colour",
		}, []string{"colour"}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CaseSnapshot is the input for the case gauges
type CaseSnapshot struct {
	Open              int
	OpenPastSLA       int
	Critical          int
	DistrictsByColour map[models.RiskColor]int
}

// SetCaseGauges replaces the case gauges with a fresh snapshot
func (m *Metrics) SetCaseGauges(s CaseSnapshot) {
	m.OpenManus.Set(float64(s.Open))
	m.OverdueManus.Set(float64(s.OpenPastSLA))
	m.CriticalManus.Set(float64(s.Critical))
	for _, c := range []models.RiskColor{models.RiskColorGreen, models.RiskColorYellow, models.RiskColorRed} {
		m.DistrictsByColour.WithLabelValues(string(c)).Set(float64(s.DistrictsByColour[c]))
	}
}
