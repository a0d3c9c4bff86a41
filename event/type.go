package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is reserved; fsm transitions with Event 0 are tick transitions
	EventNone EventType = iota

	// EventActivate signals the player's fire input
	// Trigger: input (space, enter, down, j)
	// Consumer: HookSystem | Payload: nil
	EventActivate

	// EventHookCatch pairs an extending hook with a riding object
	// Trigger: hook.Machine.Catch, internal to the hook fsm | Payload: nil
	EventHookCatch

	// EventHookEscape pairs an extending hook with an escaping object
	// Trigger: hook.Machine.Catch, internal to the hook fsm | Payload: nil
	EventHookEscape

	// EventRopeBreak signals the rope snapped
	// Trigger: rope.Stress breach or forced break
	// Consumer: HookSystem, FeedbackSystem, AudioSystem | Payload: *RopeBreakPayload
	EventRopeBreak

	// EventRopeRepaired signals the end of the repair interval
	// Trigger: rope.Stress repair timer
	// Consumer: HookSystem, AudioSystem | Payload: nil
	EventRopeRepaired

	// EventStressPenalty carries the penalty of a typed stress hit
	// Trigger: rope.Stress.ApplyTypedStress
	// Consumer: HookSystem | Payload: *StressPenaltyPayload
	EventStressPenalty

	// EventRopeCountChanged signals a change of the rope stock
	// Trigger: rope.Inventory (break, grant, purchase, reset)
	// Consumer: FeedbackSystem | Payload: *RopeCountPayload
	EventRopeCountChanged

	// EventDroughtStarted signals the free rope countdown began
	// Trigger: rope.Inventory.OnBreak at zero ropes
	// Consumer: FeedbackSystem | Payload: *DroughtPayload
	EventDroughtStarted

	// EventFloatingText requests transient text at a world position
	// Trigger: hook, collectibles, feedback translation
	// Consumer: FeedbackSystem | Payload: *FloatingTextPayload
	EventFloatingText

	// EventExplosion signals a detonation
	// Trigger: dynamite fuse
	// Consumer: FeedbackSystem, AudioSystem | Payload: *ExplosionPayload
	EventExplosion

	// EventDelivered signals an object reached the miner
	// Trigger: hook.Machine on arrival
	// Consumer: FeedbackSystem, AudioSystem | Payload: *DeliveredPayload
	EventDelivered

	// EventCaught signals an object was attached to the hook
	// Trigger: hook.Machine.Catch
	// Consumer: AudioSystem | Payload: *CaughtPayload
	EventCaught

	// EventLevelEnded signals the level countdown reached zero
	// Trigger: LevelSystem
	// Consumer: game | Payload: *LevelEndedPayload
	EventLevelEnded

	// EventPurchase signals a store purchase result
	// Trigger: game.Buy
	// Consumer: AudioSystem | Payload: *PurchasePayload
	EventPurchase
)

var eventNames = map[EventType]string{
	EventNone:             "None",
	EventActivate:         "Activate",
	EventHookCatch:        "HookCatch",
	EventHookEscape:       "HookEscape",
	EventRopeBreak:        "RopeBreak",
	EventRopeRepaired:     "RopeRepaired",
	EventStressPenalty:    "StressPenalty",
	EventRopeCountChanged: "RopeCountChanged",
	EventDroughtStarted:   "DroughtStarted",
	EventFloatingText:     "FloatingText",
	EventExplosion:        "Explosion",
	EventDelivered:        "Delivered",
	EventCaught:           "Caught",
	EventLevelEnded:       "LevelEnded",
	EventPurchase:         "Purchase",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64 // Simulation tick at emission, zero when unknown
}
