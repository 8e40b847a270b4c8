package core

// EventType classifies engine output events. Rendering, audio and reward
// computation subscribe to these; none of that logic lives here.
type EventType uint8

const (
	EventCollectibleTaken EventType = iota
	EventPowerNodeTaken
	EventEvadeStarted
	EventEvadeEnded
	EventTeleportWarning
	EventTeleported
	EventPursuerDisabled
	EventPursuerRespawned
	EventPlayerCaught
	EventObjectiveComplete
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventCollectibleTaken:
		return "collectible_taken"
	case EventPowerNodeTaken:
		return "power_node_taken"
	case EventEvadeStarted:
		return "evade_started"
	case EventEvadeEnded:
		return "evade_ended"
	case EventTeleportWarning:
		return "teleport_warning"
	case EventTeleported:
		return "teleported"
	case EventPursuerDisabled:
		return "pursuer_disabled"
	case EventPursuerRespawned:
		return "pursuer_respawned"
	case EventPlayerCaught:
		return "player_caught"
	case EventObjectiveComplete:
		return "objective_complete"
	default:
		return "unknown"
	}
}

// Event is one engine occurrence during a tick. Pursuer is -1 for events
// not tied to a specific pursuer.
type Event struct {
	Type    EventType
	Tick    uint64
	Pursuer int
	Pos     Coord
}
