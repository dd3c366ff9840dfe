package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// WorldDir is where ListWorlds looks when no directory is given.
var WorldDir = "worlds"

// ParseWorld decodes a world definition. Unknown fields are rejected so typos
// in a world file surface at load time.
func ParseWorld(data []byte) (*WorldDefinition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def WorldDefinition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("world definition is empty")
		}
		return nil, err
	}
	return &def, nil
}

// LoadWorld reads and decodes the world definition at path.
func LoadWorld(path string) (*WorldDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := ParseWorld(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.ShortName == "" {
		def.ShortName = worldName(path)
	}
	return def, nil
}

// ListWorlds returns the paths of the world files (.yaml or .yml) in dir,
// sorted by name. An empty dir means WorldDir.
func ListWorlds(dir string) ([]string, error) {
	if dir == "" {
		dir = WorldDir
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var worlds []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			worlds = append(worlds, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(worlds)
	return worlds, nil
}

func worldName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
