package config

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PresetInfo describes one preset file in a preset directory.
type PresetInfo struct {
	ID     string
	Name   string
	File   string
	Preset Preset
}

// DefaultPresetDir returns PRESET_DIR, or examples/presses under the working directory.
func DefaultPresetDir() string {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "presses")
		} else {
			dir = "./examples/presses"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ListPresets loads every *.yaml preset in dir, sorted by ID.
// Files that fail to parse are logged and skipped; a missing directory yields an empty list.
func ListPresets(dir string) ([]PresetInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Config] Preset directory not found: %s", dir)
			return []PresetInfo{}, nil
		}
		return nil, err
	}

	out := []PresetInfo{}
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := LoadUnchecked(path)
		if err != nil {
			log.Printf("[Config] Skipping preset %s: %v", path, err)
			continue
		}
		id := strings.TrimSuffix(strings.TrimSuffix(e.Name(), ".yaml"), ".yml")
		name := p.Name
		if name == "" {
			name = id
		}
		out = append(out, PresetInfo{ID: id, Name: name, File: path, Preset: *p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ResolvePreset finds the preset file for id in dir. The id is a bare file name without extension.
func ResolvePreset(dir, id string) (string, bool) {
	if id == "" || id != filepath.Base(id) {
		return "", false
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
