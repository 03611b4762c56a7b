package theme_test

import (
	"errors"
	"routineTracker/internal/theme"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPalettes_Complete тестирует полноту палитр
func TestPalettes_Complete(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		t.Run(th.Name, func(t *testing.T) {
			assert.Empty(t, th.MissingRoles())

			roles := th.Roles()
			for _, role := range theme.RequiredRoles {
				assert.NotEmpty(t, roles[role], role)
			}
			assert.Equal(t, 8, th.Roundness)
		})
	}

	darkRoles := theme.Dark.Roles()
	assert.Equal(t, lipgloss.Color("#e0e0e0"), darkRoles[theme.RoleOnBackground])
	assert.Equal(t, lipgloss.Color("#e0e0e0"), darkRoles[theme.RoleOnSurface])

	lightRoles := theme.Light.Roles()
	assert.Len(t, lightRoles, len(theme.RequiredRoles))
}

func TestPalettes_Values(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#6200ee"), theme.Light.Colors.Primary)
	assert.Equal(t, lipgloss.Color("#b00020"), theme.Light.Colors.Error)
	assert.Equal(t, lipgloss.Color("#bb86fc"), theme.Dark.Colors.Primary)
	assert.Equal(t, lipgloss.Color("#121212"), theme.Dark.Colors.Background)
	assert.Equal(t, theme.Light.Colors.Secondary, theme.Dark.Colors.Secondary)
}

func TestMissingRoles(t *testing.T) {
	broken := theme.Dark
	broken.Colors.Surface = ""
	broken.Colors.OnSurface = ""
	assert.Equal(t, []string{theme.RoleSurface, theme.RoleOnSurface}, broken.MissingRoles())

	// светлой палитре on-цвета не нужны
	light := theme.Light
	light.Colors.Error = ""
	assert.Equal(t, []string{theme.RoleError}, light.MissingRoles())
}

// TestSelect тестирует выбор палитры
func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		pref       theme.Preference
		systemDark bool
		expected   string
	}{
		{name: "light", pref: theme.PreferenceLight, systemDark: true, expected: "light"},
		{name: "dark", pref: theme.PreferenceDark, systemDark: false, expected: "dark"},
		{name: "system dark", pref: theme.PreferenceSystem, systemDark: true, expected: "dark"},
		{name: "system light", pref: theme.PreferenceSystem, systemDark: false, expected: "light"},
		{name: "unknown falls back to dark", pref: "sepia", systemDark: false, expected: "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, theme.Select(tt.pref, tt.systemDark).Name)
		})
	}
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		raw      string
		expected theme.Preference
		wantErr  bool
	}{
		{raw: "light", expected: theme.PreferenceLight},
		{raw: " DARK ", expected: theme.PreferenceDark},
		{raw: "System", expected: theme.PreferenceSystem},
		{raw: "", expected: theme.PreferenceDark},
		{raw: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			pref, err := theme.ParsePreference(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, theme.ErrUnknownPreference))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pref)
		})
	}
}

func TestForeground(t *testing.T) {
	assert.Equal(t, theme.Dark.Colors.OnSurface, theme.Dark.Foreground())
	assert.NotEmpty(t, theme.Light.Foreground())

	dark := theme.Dark
	dark.Colors.OnSurface = ""
	assert.Equal(t, lipgloss.Color("#e0e0e0"), dark.Foreground())
}
