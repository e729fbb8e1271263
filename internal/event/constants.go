package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	// MetadataKeyFightID carries the fight id on every fight and signal event
	MetadataKeyFightID = "fight_id"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat formats the aggregated error returned by Publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
