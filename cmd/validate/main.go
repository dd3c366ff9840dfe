package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tatianab/castle-adventure/internal/models"
	"github.com/tatianab/castle-adventure/internal/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml | dir>...\n", os.Args[0])
		os.Exit(1)
	}

	files, err := expand(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, filename := range files {
		v := &WorldValidator{}
		if err := v.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

// expand replaces directory arguments with the world files inside them.
func expand(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		worlds, err := models.ListWorlds(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, worlds...)
	}
	return files, nil
}

type WorldValidator struct {
	errors []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	def, err := models.LoadWorld(filename)
	if err != nil {
		return err
	}

	v.errors = nil
	v.validateDefinition(def)

	if _, err := world.FromDefinition(def); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			v.addError(line)
		}
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

// validateDefinition lints naming; structural checks belong to world.New.
func (v *WorldValidator) validateDefinition(def *models.WorldDefinition) {
	if strings.TrimSpace(def.Title) == "" {
		v.addError("title is empty")
	}
	v.validateIDFormat("start", def.Start)

	for roomID, room := range def.Rooms {
		v.validateIDFormat("room ID", roomID)
		if strings.TrimSpace(room.Description) == "" {
			v.addError(fmt.Sprintf("room %s has no description", roomID))
		}
		for _, exit := range room.Exits {
			v.validateIDFormat(fmt.Sprintf("room %s exit direction", roomID), exit.Direction)
		}
		for item, effect := range room.Effects {
			if strings.TrimSpace(effect.Text) == "" {
				v.addError(fmt.Sprintf("room %s effect for %s has no text", roomID, item))
			}
		}
	}
}

func (v *WorldValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
