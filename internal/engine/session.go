package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/tatianab/castle-adventure/internal/world"
)

// Fixed responses.
const (
	MsgUnknownCommand = "Sorry, I don't know how to do that."
	MsgNoDirection    = "There's nothing in that direction."
	MsgTakeWhat       = "Take what?"
	MsgUseWhat        = "Use what?"
)

// Session is one playthrough: where the player is, what they carry and
// whether they have won. A Session is not safe for concurrent use; callers
// must serialize Start and Input.
type Session struct {
	ID uuid.UUID

	world     *world.World
	log       *slog.Logger
	room      string
	inventory []string
	won       bool
}

// Location is the id of the current room.
func (s *Session) Location() string { return s.room }

// Inventory returns the held items, normalized, in the order they were taken.
func (s *Session) Inventory() []string { return slices.Clone(s.inventory) }

// Won reports whether a use-effect has ended the game. Once true it stays true.
func (s *Session) Won() bool { return s.won }

// Holding reports whether the item is held. name is normalized first.
func (s *Session) Holding(name string) bool {
	return s.holds(world.NormalizeItem(name))
}

func (s *Session) holds(item string) bool {
	return slices.Contains(s.inventory, item)
}

// Start puts the player in the start room and returns the intro followed by
// the exits from there.
func (s *Session) Start() string {
	s.room = s.world.Start()
	s.log.Info("session started", "room", s.room)
	return s.world.Intro(s.view()) + "\n\n" + s.routes()
}

// Input interprets one line of player input and returns the narration.
func (s *Session) Input(text string) string {
	cmd, arg := parse(text)
	s.log.Debug("input", "command", cmd, "arg", arg)

	var resp string
	switch cmd {
	case "look":
		resp = s.Look()
	case "go", "move":
		resp = s.Move(arg)
	case "take":
		resp = s.Take(arg)
	case "use":
		resp = s.Use(arg)
	default:
		resp = MsgUnknownCommand
	}

	if s.won {
		resp += "\n\n" + s.world.End(s.view())
	}
	return resp
}

// parse folds and trims text, then splits off the first word as the command.
// The argument is everything after the first run of whitespace.
func parse(text string) (cmd, arg string) {
	text = strings.TrimSpace(world.Fold(text))
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimLeftFunc(text[i:], unicode.IsSpace)
}

// Look describes the current room without listing exits.
func (s *Session) Look() string {
	return s.current().Describe(s.view())
}

// Move follows the first exit whose direction starts with prefix. An empty
// prefix matches nothing.
func (s *Session) Move(prefix string) string {
	prefix = world.Fold(prefix)
	if prefix == "" {
		return MsgNoDirection
	}

	for _, exit := range s.current().Exits() {
		if !strings.HasPrefix(exit.Direction, prefix) {
			continue
		}
		s.log.Debug("moved", "from", s.room, "to", exit.Destination, "direction", exit.Direction)
		s.room = exit.Destination
		return s.current().Describe(s.view()) + "\n\n" + s.routes()
	}
	return MsgNoDirection
}

// Take adds an item offered by the current room to the inventory. Rooms keep
// offering an item after it is taken; holding it is what stops a second take.
func (s *Session) Take(name string) string {
	if strings.TrimSpace(name) == "" {
		return MsgTakeWhat
	}
	item := world.NormalizeItem(name)

	if s.current().HasItem(item) && !s.holds(item) {
		s.inventory = append(s.inventory, item)
		s.log.Debug("took item", "item", item, "room", s.room)
		return fmt.Sprintf("You took the %s.", item)
	}
	return fmt.Sprintf("There is no %s to take.", item)
}

// Use applies the current room's effect for a held item.
func (s *Session) Use(name string) string {
	if strings.TrimSpace(name) == "" {
		return MsgUseWhat
	}
	item := world.NormalizeItem(name)

	if !s.holds(item) {
		return fmt.Sprintf("You have no %s to use.", item)
	}
	effect, ok := s.current().Effect(item)
	if !ok {
		return fmt.Sprintf("It makes no sense to use the %s here.", item)
	}

	s.log.Debug("using item", "item", item, "room", s.room, "effect", effect.Kind)
	return effect.Apply(player{stateView{s}})
}

func (s *Session) routes() string {
	exits := s.current().Exits()
	lines := make([]string, 0, len(exits))
	for _, exit := range exits {
		lines = append(lines, fmt.Sprintf("The %s is to the [%s].", exit.Destination, exit.Direction))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) current() *world.Room {
	// Exits are validated when the world is built, so the room always exists.
	r, _ := s.world.Room(s.room)
	return r
}

func (s *Session) view() world.State { return stateView{s} }

// stateView exposes a session to describers without its mutators.
type stateView struct {
	s *Session
}

func (v stateView) Location() string         { return v.s.Location() }
func (v stateView) Holding(name string) bool { return v.s.Holding(name) }
func (v stateView) Won() bool                { return v.s.Won() }

// player is the view handed to use-effects.
type player struct {
	stateView
}

func (p player) Win() {
	if !p.s.won {
		p.s.log.Info("session won", "room", p.s.room)
	}
	p.s.won = true
}
