package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_bookings_submitted_total",
		Help: "Total booking submissions accepted, by service type",
	}, []string{"service_type"})

	BookingStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_booking_status_updates_total",
		Help: "Total booking status changes, by resulting status",
	}, []string{"status"})

	ContactSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studio_contact_submissions_total",
		Help: "Total contact messages received",
	})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_validation_failures_total",
		Help: "Total public form submissions rejected by validation, by form",
	}, []string{"form"})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_emails_sent_total",
		Help: "Total notification emails attempted, by outcome",
	}, []string{"kind", "status"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_http_requests_total",
		Help: "Total HTTP requests, by method, path and status code",
	}, []string{"method", "path", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "studio_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
