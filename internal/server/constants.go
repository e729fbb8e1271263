package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting        = "Server starting"
	LogMsgRequestStarted        = "Request started"
	LogMsgRequestCompleted      = "Request completed"
	LogMsgRequestHeaders        = "Request headers"
	LogMsgAuthFailed            = "Authentication failed"
	LogMsgIngestUnauthenticated = "API_KEY not set, ingest routes accept unauthenticated requests"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Limits
const (
	// MaxRequestBytes caps ingest bodies; a world update is the largest payload
	MaxRequestBytes = 256 << 10

	// DefaultRequestLimit is per IP per window. The game client posts several
	// messages every tick, so this sits well above a single client's rate.
	DefaultRequestLimit = 20000
	RateLimitWindow     = 5 * time.Minute

	FailedAuthAlertThreshold = 5
	HighRateLogEvery         = 100
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
