package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type SnapshotMetrics struct {
	RebuildsTotal     prometheus.Counter
	RebuildDuration   prometheus.Histogram
	LoansTotal        prometheus.Gauge
	InstallmentsTotal prometheus.Gauge
	DelinquencyRate   prometheus.Gauge
}

type AlertMetrics struct {
	RaisedTotal *prometheus.CounterVec
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_dashboard_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credit_dashboard_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	Snapshot = SnapshotMetrics{
		RebuildsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_dashboard_snapshot_rebuilds_total",
				Help: "Total number of portfolio snapshot rebuilds.",
			},
		),
		RebuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "credit_dashboard_snapshot_rebuild_duration_seconds",
				Help:    "Histogram of snapshot generation times.",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
		),
		LoansTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "credit_dashboard_loans",
				Help: "Loans in the current snapshot.",
			},
		),
		InstallmentsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "credit_dashboard_installments",
				Help: "Installments in the current snapshot.",
			},
		),
		DelinquencyRate: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "credit_dashboard_delinquency_rate_percent",
				Help: "Unfiltered delinquency rate of the current snapshot.",
			},
		),
	}

	Alerts = AlertMetrics{
		RaisedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_dashboard_alerts_raised_total",
				Help: "Delinquency alerts raised, by level.",
			},
			[]string{"level"},
		),
	}
)

func RecordHTTPRequest(method, path, code string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func RecordSnapshotRebuild(duration time.Duration, loans, installments int, delinquencyRate float64) {
	Snapshot.RebuildsTotal.Inc()
	Snapshot.RebuildDuration.Observe(duration.Seconds())
	Snapshot.LoansTotal.Set(float64(loans))
	Snapshot.InstallmentsTotal.Set(float64(installments))
	Snapshot.DelinquencyRate.Set(delinquencyRate)
}

func RecordAlertRaised(level string) {
	Alerts.RaisedTotal.WithLabelValues(level).Inc()
}
