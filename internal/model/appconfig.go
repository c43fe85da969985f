package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultCoats           int     `json:"default_coats"`
	DefaultProposalProfile string  `json:"default_proposal_profile"`
	TapeWastePercent       float64 `json:"tape_waste_percent"`
	TapeRollPrice          float64 `json:"tape_roll_price"`
	DropClothPrice         float64 `json:"drop_cloth_price"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	SettingsPIN    string   `json:"settings_pin,omitempty"` // Gates pricing edits when set
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCoats:           2,
		DefaultProposalProfile: "Classic",
		TapeWastePercent:       10.0,
		TapeRollPrice:          8.50,
		DropClothPrice:         24.0,
		RecentProjects:         []string{},
	}
}

// ApplyToProject copies the config defaults into a new project.
func (c AppConfig) ApplyToProject(p *Project) {
	p.Coats = c.DefaultCoats
}
