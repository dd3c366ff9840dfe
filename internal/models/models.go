package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WorldDefinition is a world as authored in a YAML file.
type WorldDefinition struct {
	Title     string                    `yaml:"title"`
	ShortName string                    `yaml:"short_name"` // e.g., "castle"
	Start     string                    `yaml:"start"`      // id of the opening room
	Intro     string                    `yaml:"intro"`      // template, shown by start
	End       string                    `yaml:"end"`        // template, appended once the game is won
	Rooms     map[string]RoomDefinition `yaml:"rooms"`      // Keyed by room id
}

// RoomDefinition is one room of a WorldDefinition.
type RoomDefinition struct {
	Description string                      `yaml:"description"` // template over the session state
	Exits       Exits                       `yaml:"exits,omitempty"`
	Items       []string                    `yaml:"items,omitempty"`
	Effects     map[string]EffectDefinition `yaml:"effects,omitempty"` // item → effect
}

// EffectDefinition is what using an item in a room does.
type EffectDefinition struct {
	Text string `yaml:"text"`
	Win  bool   `yaml:"win,omitempty"`
}

// Exit is a single direction → room id entry.
type Exit struct {
	Direction   string
	Destination string
}

// Exits is written as a YAML mapping but keeps the order the author used,
// since direction prefixes are matched in that order.
type Exits []Exit

func (e *Exits) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: exits must be a mapping of direction to room", node.Line)
	}

	exits := make(Exits, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var dir, dest string
		if err := node.Content[i].Decode(&dir); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&dest); err != nil {
			return err
		}
		exits = append(exits, Exit{Direction: dir, Destination: dest})
	}
	*e = exits
	return nil
}

func (e Exits) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, exit := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: exit.Direction},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: exit.Destination},
		)
	}
	return node, nil
}
