package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// общий радиус скругления для обеих палитр
const Roundness = 8

// пустой цвет - роль не задана
type Colors struct {
	Primary      lipgloss.Color `json:"primary" yaml:"primary"`
	Secondary    lipgloss.Color `json:"secondary" yaml:"secondary"`
	Background   lipgloss.Color `json:"background" yaml:"background"`
	Surface      lipgloss.Color `json:"surface" yaml:"surface"`
	Error        lipgloss.Color `json:"error" yaml:"error"`
	OnBackground lipgloss.Color `json:"onBackground,omitempty" yaml:"on_background,omitempty"`
	OnSurface    lipgloss.Color `json:"onSurface,omitempty" yaml:"on_surface,omitempty"`
}

type Theme struct {
	Name      string `json:"name"`
	Dark      bool   `json:"dark"`
	Colors    Colors `json:"colors"`
	Roundness int    `json:"roundness"`
}

const (
	RolePrimary      = "primary"
	RoleSecondary    = "secondary"
	RoleBackground   = "background"
	RoleSurface      = "surface"
	RoleError        = "error"
	RoleOnBackground = "onBackground"
	RoleOnSurface    = "onSurface"
)

var RequiredRoles = []string{RolePrimary, RoleSecondary, RoleBackground, RoleSurface, RoleError}

// нужны только тёмной палитре
var DarkOnlyRoles = []string{RoleOnBackground, RoleOnSurface}

var Light = Theme{
	Name: "light",
	Dark: false,
	Colors: Colors{
		Primary:    lipgloss.Color("#6200ee"),
		Secondary:  lipgloss.Color("#03dac6"),
		Background: lipgloss.Color("#fafafa"),
		Surface:    lipgloss.Color("#ffffff"),
		Error:      lipgloss.Color("#b00020"),
	},
	Roundness: Roundness,
}

var Dark = Theme{
	Name: "dark",
	Dark: true,
	Colors: Colors{
		Primary:      lipgloss.Color("#bb86fc"),
		Secondary:    lipgloss.Color("#03dac6"),
		Background:   lipgloss.Color("#121212"),
		Surface:      lipgloss.Color("#1e1e1e"),
		Error:        lipgloss.Color("#cf6679"),
		OnBackground: lipgloss.Color("#e0e0e0"),
		OnSurface:    lipgloss.Color("#e0e0e0"),
	},
	Roundness: Roundness,
}

// Roles возвращает только заданные роли
func (t Theme) Roles() map[string]lipgloss.Color {
	all := map[string]lipgloss.Color{
		RolePrimary:      t.Colors.Primary,
		RoleSecondary:    t.Colors.Secondary,
		RoleBackground:   t.Colors.Background,
		RoleSurface:      t.Colors.Surface,
		RoleError:        t.Colors.Error,
		RoleOnBackground: t.Colors.OnBackground,
		RoleOnSurface:    t.Colors.OnSurface,
	}
	for role, c := range all {
		if c == "" {
			delete(all, role)
		}
	}
	return all
}

// MissingRoles - обязательные роли без цвета, в порядке объявления
func (t Theme) MissingRoles() []string {
	roles := t.Roles()
	required := RequiredRoles
	if t.Dark {
		required = append(append([]string{}, RequiredRoles...), DarkOnlyRoles...)
	}

	var missing []string
	for _, role := range required {
		if _, ok := roles[role]; !ok {
			missing = append(missing, role)
		}
	}
	return missing
}

// цвет текста на surface; у светлой палитры on-цветов нет
func (t Theme) Foreground() lipgloss.Color {
	if t.Colors.OnSurface != "" {
		return t.Colors.OnSurface
	}
	if t.Dark {
		return lipgloss.Color("#e0e0e0")
	}
	return lipgloss.Color("#1c1b1f")
}

type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

const DefaultPreference = PreferenceDark

var ErrUnknownPreference = errors.New("unknown theme preference")

func ParsePreference(raw string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(raw))); p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return p, nil
	case "":
		return DefaultPreference, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreference, raw)
	}
}

// Select выбирает палитру. systemDark учитывается только для system,
// неизвестное значение даёт палитру по умолчанию.
func Select(pref Preference, systemDark bool) Theme {
	switch pref {
	case PreferenceLight:
		return Light
	case PreferenceDark:
		return Dark
	case PreferenceSystem:
		if systemDark {
			return Dark
		}
		return Light
	default:
		return Select(DefaultPreference, systemDark)
	}
}
