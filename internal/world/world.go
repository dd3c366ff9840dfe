// Package world holds the static room graph a game is played in.
//
// A World is built once from a Config, validated, and then only read. Any
// number of sessions may share it.
package world

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidRoom   = errors.New("invalid room")
	ErrDuplicateRoom = errors.New("duplicate room")
	ErrUnknownRoom   = errors.New("unknown room")
	ErrInvalidExit   = errors.New("invalid exit")
	ErrDuplicateExit = errors.New("duplicate exit")
	ErrInvalidItem   = errors.New("invalid item")
	ErrDuplicateItem = errors.New("duplicate item")
	ErrInvalidEffect = errors.New("invalid effect")
	ErrTemplate      = errors.New("invalid template")
)

// Exit is a directed edge from a room, labelled with a direction.
type Exit struct {
	Direction   string
	Destination string
}

// RoomConfig describes one room before validation.
type RoomConfig struct {
	ID          string
	Description Describer
	Exits       []Exit            // Order is kept; it decides prefix-match priority.
	Items       []string          // Names are normalized with NormalizeItem.
	Effects     map[string]Effect // Item name → effect; keys are normalized.
}

// Config describes a whole world before validation.
type Config struct {
	Title string
	Start string
	Intro Describer
	End   Describer
	Rooms []RoomConfig
}

// Room is a validated, immutable room.
type Room struct {
	id        string
	describer Describer
	exits     []Exit
	items     []string
	effects   map[string]Effect
}

func (r *Room) ID() string { return r.id }

// Describe evaluates the room description against s.
func (r *Room) Describe(s State) string { return r.describer.Describe(s) }

// Exits returns the exits in definition order.
func (r *Room) Exits() []Exit { return slices.Clone(r.exits) }

// Items returns the normalized item names found in the room.
func (r *Room) Items() []string { return slices.Clone(r.items) }

// HasItem reports whether the room offers the item. The name must already be
// normalized.
func (r *Room) HasItem(item string) bool { return slices.Contains(r.items, item) }

// Effect returns the use-effect for a normalized item name.
func (r *Room) Effect(item string) (Effect, bool) {
	e, ok := r.effects[item]
	return e, ok
}

// World is the validated room graph plus its opening and closing text.
type World struct {
	title string
	start string
	intro Describer
	end   Describer
	rooms map[string]*Room
	order []string
}

// New validates cfg and builds a World. Every problem found is reported, joined
// into a single error.
func New(cfg Config) (*World, error) {
	w := &World{
		title: cfg.Title,
		start: cfg.Start,
		intro: cfg.Intro,
		end:   cfg.End,
		rooms: make(map[string]*Room, len(cfg.Rooms)),
	}
	if w.intro == nil {
		w.intro = Text("")
	}
	if w.end == nil {
		w.end = Text("")
	}

	var errs []error
	for _, rc := range cfg.Rooms {
		room, err := buildRoom(rc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := w.rooms[room.id]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateRoom, room.id))
			continue
		}
		w.rooms[room.id] = room
		w.order = append(w.order, room.id)
	}

	if _, ok := w.rooms[w.start]; !ok {
		errs = append(errs, fmt.Errorf("%w: start room %q", ErrUnknownRoom, w.start))
	}
	for _, id := range w.order {
		for _, exit := range w.rooms[id].exits {
			if _, ok := w.rooms[exit.Destination]; !ok {
				errs = append(errs, fmt.Errorf("%w: exit %q of room %q leads to %q",
					ErrUnknownRoom, exit.Direction, id, exit.Destination))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	errs = append(errs, check("intro", w.intro, probe{room: w.start}))
	errs = append(errs, check("end", w.end, probe{room: w.start}))
	for _, id := range w.order {
		errs = append(errs, check("room "+id, w.rooms[id].describer, probe{room: id}))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return w, nil
}

func buildRoom(rc RoomConfig) (*Room, error) {
	if strings.TrimSpace(rc.ID) == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidRoom)
	}
	if rc.Description == nil {
		return nil, fmt.Errorf("%w: room %q has no description", ErrInvalidRoom, rc.ID)
	}

	room := &Room{
		id:        rc.ID,
		describer: rc.Description,
		effects:   make(map[string]Effect, len(rc.Effects)),
	}

	var errs []error
	for _, exit := range rc.Exits {
		dir := Fold(strings.TrimSpace(exit.Direction))
		switch {
		case dir == "":
			errs = append(errs, fmt.Errorf("%w: room %q has an exit without a direction", ErrInvalidExit, rc.ID))
		case slices.ContainsFunc(room.exits, func(e Exit) bool { return e.Direction == dir }):
			errs = append(errs, fmt.Errorf("%w: room %q direction %q", ErrDuplicateExit, rc.ID, dir))
		default:
			room.exits = append(room.exits, Exit{Direction: dir, Destination: exit.Destination})
		}
	}

	for _, name := range rc.Items {
		item := NormalizeItem(name)
		switch {
		case item == "":
			errs = append(errs, fmt.Errorf("%w: room %q has an empty item name", ErrInvalidItem, rc.ID))
		case slices.Contains(room.items, item):
			errs = append(errs, fmt.Errorf("%w: room %q item %q", ErrDuplicateItem, rc.ID, item))
		default:
			room.items = append(room.items, item)
		}
	}

	for name, effect := range rc.Effects {
		item := NormalizeItem(name)
		switch {
		case item == "":
			errs = append(errs, fmt.Errorf("%w: room %q has an effect without an item", ErrInvalidEffect, rc.ID))
		case !effect.valid():
			errs = append(errs, fmt.Errorf("%w: room %q item %q has kind %s", ErrInvalidEffect, rc.ID, item, effect.Kind))
		default:
			if _, ok := room.effects[item]; ok {
				errs = append(errs, fmt.Errorf("%w: room %q item %q defined twice", ErrInvalidEffect, rc.ID, item))
				continue
			}
			room.effects[item] = effect
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return room, nil
}

func check(what string, d Describer, s State) error {
	c, ok := d.(checker)
	if !ok {
		return nil
	}
	if err := c.check(s); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (w *World) Title() string { return w.title }

// Start is the id of the room every session begins in.
func (w *World) Start() string { return w.start }

func (w *World) Intro(s State) string { return w.intro.Describe(s) }

func (w *World) End(s State) string { return w.end.Describe(s) }

// Room looks up a room by id.
func (w *World) Room(id string) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// RoomIDs lists room ids in definition order.
func (w *World) RoomIDs() []string { return slices.Clone(w.order) }
