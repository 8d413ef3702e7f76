package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand, LabelOutcome},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: CommandLatencyBuckets,
		},
		[]string{LabelCommand},
	)

	CommandsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCommandsInFlight,
			Help: HelpTextCommandsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CoinsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsCredited,
			Help: HelpTextCoinsCredited,
		},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	PacksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
		[]string{LabelPack},
	)

	CardsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardsGranted,
			Help: HelpTextCardsGranted,
		},
	)

	CardsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardsConsumed,
			Help: HelpTextCardsConsumed,
		},
	)

	XPAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAdded,
			Help: HelpTextXPAdded,
		},
	)

	ChallengesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChallengesDone,
			Help: HelpTextChallengesDone,
		},
	)

	BundlesGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBundlesGranted,
			Help: HelpTextBundlesGranted,
		},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelSource, LabelType},
	)

	ProgressResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProgressResets,
			Help: HelpTextProgressResets,
		},
	)
)
