package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and histograms exposed at /metrics. A nil
// receiver (or zero value, when registration is disabled) is safe to call.
type Metrics struct {
	jobDuration *prometheus.HistogramVec
	jobSuccess  *prometheus.CounterVec
	jobFailure  *prometheus.CounterVec

	quotesSubmitted prometheus.Counter
	quotesExpired   prometheus.Counter
	bidsSubmitted   prometheus.Counter
	bidsAccepted    prometheus.Counter
	counterOffers   prometheus.Counter
	changeRequests  *prometheus.CounterVec
}

// New registers the application metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "job_duration_seconds",
			Help:    "Duration of cron jobs in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
		jobSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_success",
			Help: "Successful cron job executions.",
		}, []string{"job"}),
		jobFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_failure",
			Help: "Failed cron job executions.",
		}, []string{"job"}),
		quotesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_submitted_total",
			Help: "Quotes published for bidding.",
		}),
		quotesExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_expired_total",
			Help: "Quotes auto-closed past their bidding deadline.",
		}),
		bidsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bids_submitted_total",
			Help: "Bids submitted by logistics partners.",
		}),
		bidsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bids_accepted_total",
			Help: "Bids accepted by galleries.",
		}),
		counterOffers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counter_offers_total",
			Help: "Counter offers issued on change requests.",
		}),
		changeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "change_requests_total",
			Help: "Shipment change requests by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.jobDuration, m.jobSuccess, m.jobFailure,
		m.quotesSubmitted, m.quotesExpired,
		m.bidsSubmitted, m.bidsAccepted,
		m.counterOffers, m.changeRequests,
	)
	return m
}

func (m *Metrics) ObserveJobDuration(job string, d time.Duration) {
	if m == nil || m.jobDuration == nil {
		return
	}
	m.jobDuration.WithLabelValues(jobLabel(job)).Observe(d.Seconds())
}

func (m *Metrics) IncJobSuccess(job string) {
	if m == nil || m.jobSuccess == nil {
		return
	}
	m.jobSuccess.WithLabelValues(jobLabel(job)).Inc()
}

func (m *Metrics) IncJobFailure(job string) {
	if m == nil || m.jobFailure == nil {
		return
	}
	m.jobFailure.WithLabelValues(jobLabel(job)).Inc()
}

func (m *Metrics) IncQuotesSubmitted() {
	if m == nil || m.quotesSubmitted == nil {
		return
	}
	m.quotesSubmitted.Inc()
}

func (m *Metrics) AddQuotesExpired(n int) {
	if m == nil || m.quotesExpired == nil || n <= 0 {
		return
	}
	m.quotesExpired.Add(float64(n))
}

func (m *Metrics) IncBidsSubmitted() {
	if m == nil || m.bidsSubmitted == nil {
		return
	}
	m.bidsSubmitted.Inc()
}

func (m *Metrics) IncBidsAccepted() {
	if m == nil || m.bidsAccepted == nil {
		return
	}
	m.bidsAccepted.Inc()
}

func (m *Metrics) IncCounterOffers() {
	if m == nil || m.counterOffers == nil {
		return
	}
	m.counterOffers.Inc()
}

// IncChangeRequests records a change request transition. Outcome is one of
// created, approved, rejected, countered.
func (m *Metrics) IncChangeRequests(outcome string) {
	if m == nil || m.changeRequests == nil {
		return
	}
	m.changeRequests.WithLabelValues(jobLabel(outcome)).Inc()
}

func jobLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
