package tracker

// =============================================================================
// Target Identity
// =============================================================================

const (
	// TargetMinID and TargetMaxID bound the npc ids of Nex's combat-phase variants (inclusive)
	TargetMinID = 11278
	TargetMaxID = 11282
)

// =============================================================================
// Tick Thresholds
// =============================================================================

const (
	// ResetDelayTicks is the cooldown tick at which the post-fight results are dumped
	ResetDelayTicks = 2

	// OverlayRemoveTicks is the cooldown tick at which the overlay is removed and the tracker goes idle
	OverlayRemoveTicks = 50

	// cooldownStopped marks the cooldown counter as not running
	cooldownStopped = -1
)

// =============================================================================
// Chat Signals
// =============================================================================

const (
	// ChatSignalMVP is the game message sent to the fight's MVP
	ChatSignalMVP = "You were the MVP for this fight"

	// ChatSignalDrop is the game message broadcast when a drop is awarded
	ChatSignalDrop = "received a drop"
)

// =============================================================================
// Configuration Keys
// =============================================================================

const (
	// ConfigGroup is the configuration group the tracker listens to
	ConfigGroup = "nex-droprate-calculator"

	// ConfigKeyShowOverlay toggles whether the overlay may be attached
	ConfigKeyShowOverlay = "showOverlay"

	// ConfigKeyAttributionMode switches the fight-start gating rule
	ConfigKeyAttributionMode = "attributionMode"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgFightStarted       = "Fight started via hitsplat latch"
	LogMsgFightEnded         = "Nex gone, ending fight"
	LogMsgResultsDumped      = "Dumping results (resetting panel)"
	LogMsgOverlayRemoved     = "Removing overlay after cooldown"
	LogMsgOwnContribution    = "Hitsplat applied by local player"
	LogMsgTotalContribution  = "Total contribution updated"
	LogMsgNegativeAmount     = "Ignoring hitsplat with negative amount"
	LogMsgMVPDetected        = "MVP message detected"
	LogMsgDropDetected       = "Drop message detected"
	LogMsgOverlayReconciled  = "Overlay visibility reconciled after config change"
	LogMsgModeChanged        = "Attribution mode changed"
	LogMsgInvalidMode        = "Ignoring invalid attribution mode"
	LogMsgPublishFailed      = "Failed to publish tracker event"
	LogMsgTrackerShutdown    = "Tracker shut down"
)
