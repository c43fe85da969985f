package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/PaintQuote/internal/model"
)

// DefaultProfilesPath returns the default file path for custom proposal
// profiles. This is located at ~/.paintquote/profiles.json.
func DefaultProfilesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".paintquote", "profiles.json"), nil
}

// SaveCustomProfiles saves custom proposal profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.ProposalProfile) error {
	return writeJSON(path, profiles)
}

// LoadCustomProfiles loads custom proposal profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.ProposalProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.ProposalProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.ProposalProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// SaveCustomProfilesToDefault saves custom profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.ProposalProfile) error {
	path, err := DefaultProfilesPath()
	if err != nil {
		return err
	}
	return SaveCustomProfiles(path, profiles)
}

// LoadCustomProfilesFromDefault loads custom profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.ProposalProfile, error) {
	path, err := DefaultProfilesPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomProfiles(path)
}

// ExportProfile exports a single profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.ProposalProfile) error {
	profile.IsBuiltIn = false
	return writeJSON(path, profile)
}

// ImportProfile imports a single profile from a JSON file.
func ImportProfile(path string) (model.ProposalProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ProposalProfile{}, err
	}

	var profile model.ProposalProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.ProposalProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.ProposalProfile{}, errors.New("imported profile has no name")
	}
	return profile, nil
}

// AllProfiles returns the built-in profiles followed by the given custom
// profiles. Custom profiles shadow built-ins with the same name.
func AllProfiles(custom []model.ProposalProfile) []model.ProposalProfile {
	byName := make(map[string]bool, len(custom))
	for _, p := range custom {
		byName[p.Name] = true
	}
	var all []model.ProposalProfile
	for _, p := range model.ProposalProfiles {
		if !byName[p.Name] {
			all = append(all, p)
		}
	}
	return append(all, custom...)
}
