package mail

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emailSendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sends_total",
			Help: "Total number of email send attempts by outcome",
		},
		[]string{"email_type", "category", "status"},
	)

	emailLogUpdateFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_log_update_failures_total",
			Help: "Email log rows whose post-send status update failed",
		},
		[]string{"update"},
	)

	emailDeliveryExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_delivery_exhausted_total",
			Help: "Emails dropped after exhausting all retry attempts",
		},
		[]string{"email"},
	)
)

func recordEmailSend(emailType, category, status string) {
	emailSendsTotal.WithLabelValues(emailType, category, status).Inc()
}

func recordLogUpdateFailure(update string) {
	emailLogUpdateFailures.WithLabelValues(update).Inc()
}

func recordDeliveryExhausted(name string) {
	emailDeliveryExhausted.WithLabelValues(name).Inc()
}
