// Package project persists PaintQuote data as JSON files: projects,
// pricing tables, the paint catalog, room templates, proposal profiles,
// app configuration, and full-data backups.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/PaintQuote/internal/model"
)

// writeJSON marshals v with two-space indentation and writes it to path,
// creating parent directories as needed. Every store in this package
// saves through here so the on-disk format stays uniform.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveProject writes a project to the specified JSON file, creating
// parent directories if needed.
func SaveProject(path string, p model.Project) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project from the specified JSON file. Nil object
// slices are normalized to empty so callers can append without checks.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Rooms == nil {
		p.Rooms = []model.Room{}
	}
	if p.Staircases == nil {
		p.Staircases = []model.Staircase{}
	}
	if p.Fireplaces == nil {
		p.Fireplaces = []model.Fireplace{}
	}
	if p.BrickWalls == nil {
		p.BrickWalls = []model.BrickWall{}
	}
	return p, nil
}

// RememberRecentProject prepends a project path to the recent list in the
// config, deduplicating and keeping at most max entries.
func RememberRecentProject(config *model.AppConfig, path string, max int) {
	recent := []string{path}
	for _, r := range config.RecentProjects {
		if r != path {
			recent = append(recent, r)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	config.RecentProjects = recent
}
