package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/PaintQuote/internal/model"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string                  `json:"version"`
	CreatedAt string                  `json:"created_at"`
	Config    model.AppConfig         `json:"config"`
	Pricing   model.PricingTable      `json:"pricing"`
	Catalog   model.Catalog           `json:"catalog"`
	Templates model.TemplateStore     `json:"templates"`
	Profiles  []model.ProposalProfile `json:"profiles"`
}

// ExportAllData exports all application data (config, pricing, catalog,
// templates and custom profiles) to a single JSON file at the specified path.
func ExportAllData(exportPath string, config model.AppConfig, pricing model.PricingTable, cat model.Catalog, templates model.TemplateStore, profiles []model.ProposalProfile) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Pricing:   pricing,
		Catalog:   cat,
		Templates: templates,
		Profiles:  profiles,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config and stores.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure nil slices are never handed back
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.RoomTemplate{}
	}
	if backup.Profiles == nil {
		backup.Profiles = []model.ProposalProfile{}
	}
	return backup, nil
}
