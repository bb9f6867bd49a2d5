package cmd

import (
	"errors"

	"github.com/spf13/viper"
)

// Settings are operator-level defaults kept outside the plant document:
// the plant configuration carries what to simulate, the settings file
// carries how. Any value the plant document sets explicitly wins.
type Settings struct {
	HoursPerDay       float64  `mapstructure:"hours_per_day"`
	HorizonDays       float64  `mapstructure:"horizon_days"`
	Policies          []string `mapstructure:"policies"`
	StrictChangeovers bool     `mapstructure:"strict_changeovers"`
}

// LoadSettings reads the optional settings file. With an empty path it
// looks for plantsim.yaml in the working directory; a missing file just
// yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("hours_per_day", 24.0)
	v.SetDefault("horizon_days", 30.0)
	v.SetDefault("policies", []string{"fifo", "edd", "critical-ratio"})
	v.SetDefault("strict_changeovers", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("plantsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
