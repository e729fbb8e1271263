package tracker

import "github.com/osse101/NexTracker_Go/internal/domain"

// IsTargetID reports whether an npc id belongs to one of the boss variants
func IsTargetID(id int) bool {
	return id >= TargetMinID && id <= TargetMaxID
}

// FindTarget returns the first present entity that is a boss variant
func FindTarget(world WorldObserver) (domain.Entity, bool) {
	for _, e := range world.ListPresentEntities() {
		if e.Kind == domain.EntityKindNPC && IsTargetID(e.ID) {
			return e, true
		}
	}
	return domain.Entity{}, false
}

// isTargetHit reports whether the hitsplat landed on the present target
func isTargetHit(ev domain.DamageEvent, target domain.Entity) bool {
	return ev.ActorKind == domain.EntityKindNPC && ev.ActorID == target.ID
}

// isFightTrigger decides whether a hitsplat starts a fight.
//
// Strict mode accepts a player who is interacting with the target, or the
// target itself while it is interacting with the local player. Loose mode
// accepts any player hitsplat while the target is present.
//
// A reported interaction is authoritative. TargetIsLocalPlayer is only
// consulted for events that carry no interaction.
func isFightTrigger(ev domain.DamageEvent, target domain.Entity, localPlayerID int, mode AttributionMode) bool {
	if ev.ActorKind == domain.EntityKindPlayer {
		if mode == AttributionLoose {
			return true
		}
		return ev.InteractingWithKind == domain.EntityKindNPC && ev.InteractingWithID == target.ID
	}

	if !isTargetHit(ev, target) || localPlayerID == 0 {
		return false
	}
	if ev.InteractingWithID == 0 {
		return ev.TargetIsLocalPlayer
	}
	return ev.InteractingWithKind == domain.EntityKindPlayer && ev.InteractingWithID == localPlayerID
}
