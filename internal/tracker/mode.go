package tracker

import (
	"fmt"
	"strings"
)

// AttributionMode selects how a hitsplat is judged to start a fight
type AttributionMode string

const (
	// AttributionStrict requires an interaction between the hit actor and the boss
	AttributionStrict AttributionMode = "strict"

	// AttributionLoose starts the fight on any player hitsplat while the boss is present
	AttributionLoose AttributionMode = "loose"
)

// ParseAttributionMode parses a configured mode; empty defaults to strict
func ParseAttributionMode(s string) (AttributionMode, error) {
	switch AttributionMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", AttributionStrict:
		return AttributionStrict, nil
	case AttributionLoose:
		return AttributionLoose, nil
	default:
		return "", fmt.Errorf("unknown attribution mode %q", s)
	}
}
