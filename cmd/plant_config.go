package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plantsim/plantsim/sim"
)

// LoadPlantConfig reads a plant configuration document. The format follows
// the file extension: .json is decoded as JSON, everything else as YAML.
func LoadPlantConfig(path string) (*sim.PlantConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plant config: %w", err)
	}

	var cfg sim.PlantConfig
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// mergeSettings fills plant-document fields the operator left unset from
// the settings file defaults.
func mergeSettings(cfg *sim.PlantConfig, s *Settings) {
	if cfg.HoursPerDay == 0 {
		cfg.HoursPerDay = s.HoursPerDay
	}
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = s.HorizonDays
	}
	if !cfg.StrictChangeovers {
		cfg.StrictChangeovers = s.StrictChangeovers
	}
	cfg.ApplyDefaults()
}
