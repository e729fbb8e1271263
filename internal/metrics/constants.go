package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Session metric names
const (
	MetricNameSessionMessages = "session_messages_total"
	MetricNameSessionTicks    = "session_ticks_total"
	MetricNameIngestRejected  = "ingest_rejected_total"
)

// Tracker metric names
const (
	MetricNameFightsStarted   = "fights_started_total"
	MetricNameFightsCompleted = "fights_completed_total"
	MetricNameFightDamage     = "fight_damage_total"
	MetricNameFightDuration   = "fight_duration_ticks"
	MetricNameChatSignals     = "chat_signals_total"
	MetricNameTrackerPhase    = "tracker_phase"
	MetricNameOverlayAttached = "overlay_attached"
	MetricNameNotifications   = "notifications_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal     = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration   = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight  = "Current number of HTTP requests being served"
	HelpTextEventsPublished       = "Total number of events published"
	HelpTextEventHandlerErrors    = "Total number of event handler errors"
	HelpTextSessionMessages       = "Total number of messages applied by the session loop"
	HelpTextSessionTicks          = "Total number of ticks evaluated by the tracker"
	HelpTextIngestRejected        = "Total number of ingest requests rejected"
	HelpTextFightsStarted         = "Total number of fights started"
	HelpTextFightsCompleted       = "Total number of fights that reached the results dump"
	HelpTextFightDamage           = "Total damage dealt to the boss across fights"
	HelpTextFightDuration         = "Fight duration in ticks"
	HelpTextChatSignals           = "Total number of MVP and drop chat signals observed"
	HelpTextTrackerPhase          = "Current tracker phase (0 idle, 1 active, 2 cooldown)"
	HelpTextOverlayAttached       = "Whether the overlay is attached (1) or detached (0)"
	HelpTextNotifications         = "Total number of fight notifications sent"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelKind    = "kind"
	LabelSource  = "source"
	LabelSignal  = "signal"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
)

const (
	SourceOwn   = "own"
	SourceTotal = "total"

	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Phase gauge values
const (
	PhaseValueIdle     = 0
	PhaseValueActive   = 1
	PhaseValueCooldown = 2
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// FightDurationBuckets covers fights from ~30s to ~30min at 0.6s per tick
var FightDurationBuckets = []float64{50, 100, 200, 300, 500, 750, 1000, 1500, 3000}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
