package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidSurface        = "Invalid surface, expected panel or overlay"
	ErrMsgFightNotFound         = "Fight not found"
	ErrMsgInvalidSetting        = "Invalid setting value"
	ErrMsgSessionUnavailable    = "Tracker session is not running"
	ErrMsgRequestCancelled      = "Request cancelled before it was accepted"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgEncodeFailed          = "Failed to encode JSON response"
	ErrMsgWriteFailed           = "Failed to write response buffer"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Query parameters and defaults
const (
	QueryParamSurface = "surface"
	QueryParamLimit   = "limit"
	URLParamFightID   = "id"

	DefaultFightsLimit = 10
	MaxFightsLimit     = 100
	MaxTicksPerRequest = 100
)

// Ingest rejection reasons, used as metric labels
const (
	RejectReasonInvalid     = "invalid"
	RejectReasonUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request failed validation"
	LogMsgSubmitFailed     = "Failed to submit message to session"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgSettingRejected  = "Rejected client setting change"
)
