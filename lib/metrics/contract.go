package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type ContractMetrics struct {
	PollsCreatedTotal metrics.Counter
	PollsDeactivated  metrics.Counter
	VotesCastTotal    metrics.Counter
	VoteErrorsTotal   metrics.Counter
	ActivePolls       metrics.Gauge
}

func PromContractMetrics() *ContractMetrics {
	return &ContractMetrics{
		PollsCreatedTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "polls_created_total",
			Help:      "Total number of created polls.",
		}, []string{}),
		PollsDeactivated: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "polls_deactivated_total",
			Help:      "Total number of deactivated polls.",
		}, []string{}),
		VotesCastTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "votes_cast_total",
			Help:      "Total number of accepted votes.",
		}, []string{}),
		VoteErrorsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "vote_errors_total",
			Help:      "Total number of rejected votes.",
		}, []string{"reason"}),
		ActivePolls: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "active_polls",
			Help:      "Number of polls not explicitly deactivated.",
		}, []string{}),
	}
}

func NopContractMetrics() *ContractMetrics {
	return &ContractMetrics{
		PollsCreatedTotal: discard.NewCounter(),
		PollsDeactivated:  discard.NewCounter(),
		VotesCastTotal:    discard.NewCounter(),
		VoteErrorsTotal:   discard.NewCounter(),
		ActivePolls:       discard.NewGauge(),
	}
}
