package world

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/tatianab/castle-adventure/internal/models"
)

//go:embed worlds/castle.yaml
var castleYAML []byte

// Castle builds the built-in Castle Adventure world.
func Castle() (*World, error) {
	def, err := models.ParseWorld(castleYAML)
	if err != nil {
		return nil, fmt.Errorf("castle: %w", err)
	}
	return FromDefinition(def)
}

// Load builds the world stored at path, or the castle when path is empty.
func Load(path string) (*World, error) {
	if path == "" {
		return Castle()
	}
	def, err := models.LoadWorld(path)
	if err != nil {
		return nil, err
	}
	w, err := FromDefinition(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// FromDefinition compiles the templates of def and validates the result.
// Rooms are added in id order.
func FromDefinition(def *models.WorldDefinition) (*World, error) {
	var errs []error
	compile := func(name, text string) Describer {
		d, err := Template(name, text)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}

	cfg := Config{
		Title: def.Title,
		Start: def.Start,
		Intro: compile("intro", def.Intro),
		End:   compile("end", def.End),
	}

	ids := make([]string, 0, len(def.Rooms))
	for id := range def.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rd := def.Rooms[id]
		rc := RoomConfig{
			ID:          id,
			Description: compile(id, rd.Description),
			Items:       rd.Items,
		}
		for _, exit := range rd.Exits {
			rc.Exits = append(rc.Exits, Exit{Direction: exit.Direction, Destination: exit.Destination})
		}
		if len(rd.Effects) > 0 {
			rc.Effects = make(map[string]Effect, len(rd.Effects))
			for item, ed := range rd.Effects {
				kind := Narrate
				if ed.Win {
					kind = Win
				}
				rc.Effects[item] = Effect{Kind: kind, Text: ed.Text}
			}
		}
		cfg.Rooms = append(cfg.Rooms, rc)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return New(cfg)
}
