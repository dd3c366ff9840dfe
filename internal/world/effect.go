package world

import "fmt"

// EffectKind tags what a use-effect does besides narrating.
type EffectKind int

const (
	// Narrate only returns its text.
	Narrate EffectKind = iota + 1
	// Win returns its text and ends the game in the player's favour.
	Win
)

func (k EffectKind) String() string {
	switch k {
	case Narrate:
		return "narrate"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// Effect is what happens when an item is used in a particular room.
type Effect struct {
	Kind EffectKind
	Text string
}

// Apply performs the effect against p and returns its narration.
func (e Effect) Apply(p Player) string {
	if e.Kind == Win {
		p.Win()
	}
	return e.Text
}

func (e Effect) valid() bool {
	return e.Kind == Narrate || e.Kind == Win
}
