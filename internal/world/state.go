package world

// State is the read-only view of a session handed to describers.
type State interface {
	// Location is the id of the room the player stands in.
	Location() string
	// Holding reports whether the named item is in the inventory. The name is
	// normalized with NormalizeItem before the lookup.
	Holding(item string) bool
	Won() bool
}

// Player is the part of a session a use-effect is allowed to change.
type Player interface {
	State
	Win()
}
