package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bot message outcomes.
const (
	OutcomeIncome       = "income"
	OutcomeExpense      = "expense"
	OutcomeStart        = "start"
	OutcomeUnrecognized = "unrecognized"
	OutcomeFormatError  = "format_error"
	OutcomeFailed       = "failed"
	OutcomeDuplicate    = "duplicate"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Record metrics
	RecordsCreated *prometheus.CounterVec
	RecordedAmount *prometheus.CounterVec

	// Bot metrics
	BotMessages  *prometheus.CounterVec
	BotSendFails prometheus.Counter

	// Dashboard metrics
	DashboardBuilds         prometheus.Counter
	DashboardSeriesDegraded prometheus.Counter
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dompet_records_created_total",
				Help: "Total number of financial records created by kind",
			},
			[]string{"kind"},
		),
		RecordedAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dompet_recorded_amount_total",
				Help: "Sum of recorded amounts by kind",
			},
			[]string{"kind"},
		),

		BotMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dompet_bot_messages_total",
				Help: "Chat messages handled by outcome",
			},
			[]string{"outcome"},
		),
		BotSendFails: factory.NewCounter(prometheus.CounterOpts{
			Name: "dompet_bot_send_failures_total",
			Help: "Replies that could not be delivered",
		}),

		DashboardBuilds: factory.NewCounter(prometheus.CounterOpts{
			Name: "dompet_dashboard_builds_total",
			Help: "Dashboard aggregations computed",
		}),
		DashboardSeriesDegraded: factory.NewCounter(prometheus.CounterOpts{
			Name: "dompet_dashboard_series_degraded_total",
			Help: "Dashboard responses served with an empty daily series",
		}),
	}
}
