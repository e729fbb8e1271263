package domain

// ChatCategoryGameMessage is the only chat category scanned for fight signals
const ChatCategoryGameMessage = "GAMEMESSAGE"

// DamageEvent is a single hitsplat applied to an actor.
//
// ActorID/ActorKind identify the actor the hitsplat landed on. InteractingWith*
// describe who that actor is currently interacting with (its combat target).
type DamageEvent struct {
	ActorID             int        `json:"actor_id"`
	ActorKind           EntityKind `json:"actor_kind"`
	InteractingWithID   int        `json:"interacting_with_id"`
	InteractingWithKind EntityKind `json:"interacting_with_kind,omitempty"`
	Amount              int        `json:"amount"`
	IsHealing           bool       `json:"is_healing"`
	// Mine is set when the hitsplat was caused by the local player
	Mine bool `json:"mine"`
	// TargetIsLocalPlayer is set when the struck actor is targeting the local player.
	// It is ignored when InteractingWithID is reported.
	TargetIsLocalPlayer bool `json:"target_is_local_player"`
}

// ChatEvent is a chat line observed by the client
type ChatEvent struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// ConfigChangeEvent reports a changed configuration key
type ConfigChangeEvent struct {
	Group    string `json:"group"`
	Key      string `json:"key"`
	NewValue string `json:"new_value"`
}
