package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
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

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Session Metrics
var (
	SessionMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionMessages,
			Help: HelpTextSessionMessages,
		},
		[]string{LabelKind},
	)

	SessionTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionTicks,
			Help: HelpTextSessionTicks,
		},
	)

	IngestRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIngestRejected,
			Help: HelpTextIngestRejected,
		},
		[]string{LabelKind, LabelReason},
	)
)

// Tracker Metrics
var (
	FightsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFightsStarted,
			Help: HelpTextFightsStarted,
		},
	)

	FightsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFightsCompleted,
			Help: HelpTextFightsCompleted,
		},
		[]string{LabelOutcome},
	)

	FightDamage = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFightDamage,
			Help: HelpTextFightDamage,
		},
		[]string{LabelSource},
	)

	FightDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameFightDuration,
			Help:    HelpTextFightDuration,
			Buckets: FightDurationBuckets,
		},
	)

	ChatSignals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatSignals,
			Help: HelpTextChatSignals,
		},
		[]string{LabelSignal},
	)

	TrackerPhase = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTrackerPhase,
			Help: HelpTextTrackerPhase,
		},
	)

	OverlayAttached = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOverlayAttached,
			Help: HelpTextOverlayAttached,
		},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotifications,
			Help: HelpTextNotifications,
		},
		[]string{LabelOutcome},
	)
)
