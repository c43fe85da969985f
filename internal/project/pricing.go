package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/PaintQuote/internal/model"
)

// DefaultPricingPath returns the default file path for the pricing table.
// This is located at ~/.paintquote/pricing.json.
func DefaultPricingPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".paintquote", "pricing.json"), nil
}

// SavePricing writes the pricing table to the specified JSON file.
func SavePricing(path string, pricing model.PricingTable) error {
	return writeJSON(path, pricing)
}

// LoadPricing reads the pricing table from the specified JSON file.
// If the file does not exist, it returns the default pricing and saves it.
func LoadPricing(path string) (model.PricingTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			pricing := model.DefaultPricing()
			if saveErr := SavePricing(path, pricing); saveErr != nil {
				return pricing, saveErr
			}
			return pricing, nil
		}
		return model.PricingTable{}, err
	}
	var pricing model.PricingTable
	if err := json.Unmarshal(data, &pricing); err != nil {
		return model.PricingTable{}, err
	}
	return pricing, nil
}

// LoadOrCreatePricing loads the pricing table from the default path.
// If the file does not exist, it creates one with default rates.
func LoadOrCreatePricing() (model.PricingTable, string, error) {
	path, err := DefaultPricingPath()
	if err != nil {
		return model.DefaultPricing(), "", err
	}
	pricing, err := LoadPricing(path)
	return pricing, path, err
}

// DefaultSettingsPath returns the default file path for the calculation
// settings. This is located at ~/.paintquote/settings.json.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".paintquote", "settings.json"), nil
}

// SaveSettings writes the calculation settings to the specified JSON file.
func SaveSettings(path string, settings model.CalculationSettings) error {
	return writeJSON(path, settings)
}

// LoadSettings reads the calculation settings from the specified JSON
// file. If the file does not exist, it returns the defaults.
func LoadSettings(path string) (model.CalculationSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultCalculationSettings(), nil
		}
		return model.CalculationSettings{}, err
	}
	var settings model.CalculationSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.CalculationSettings{}, err
	}
	return settings, nil
}
