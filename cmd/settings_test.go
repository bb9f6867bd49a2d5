package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettings_DefaultsWhenFileAbsent(t *testing.T) {
	s, err := LoadSettings("")
	assert.NoError(t, err)
	assert.Equal(t, 24.0, s.HoursPerDay)
	assert.Equal(t, 30.0, s.HorizonDays)
	assert.Equal(t, []string{"fifo", "edd", "critical-ratio"}, s.Policies)
	assert.False(t, s.StrictChangeovers)
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "hours_per_day: 8\npolicies: [edd]\nstrict_changeovers: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	s, err := LoadSettings(path)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, s.HoursPerDay)
	assert.Equal(t, 30.0, s.HorizonDays, "unset values keep defaults")
	assert.Equal(t, []string{"edd"}, s.Policies)
	assert.True(t, s.StrictChangeovers)
}

func TestLoadSettings_ExplicitMissingFileIsAnError(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
