package main

import (
	"bytes"
	"os"
	"path/filepath"
	"routineTracker/internal/shell"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, systemDark bool, args ...string) (string, error) {
	t.Helper()
	// пустой файл конфига, чтобы не зависеть от рабочей директории
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{}\n"), 0644))

	cmd := newRootCmd(func() bool { return systemDark })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", cfgPath))

	err := cmd.Execute()
	return out.String(), err
}

func TestScreenCommand(t *testing.T) {
	out, err := run(t, true, "screen")
	require.NoError(t, err)
	assert.Contains(t, out, shell.Heading)
	assert.Contains(t, out, shell.CardBody)
}

// TestThemeCommand тестирует вывод палитры
func TestThemeCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		systemDark bool
		contains   []string
		missing    []string
	}{
		{
			name:     "default is dark",
			args:     []string{"theme"},
			contains: []string{"#bb86fc", "onSurface"},
		},
		{
			name:     "explicit light",
			args:     []string{"theme", "--theme", "light"},
			contains: []string{"#6200ee", "#b00020"},
			missing:  []string{"onSurface"},
		},
		{
			name:       "system follows terminal",
			args:       []string{"theme", "-t", "system"},
			systemDark: false,
			contains:   []string{"#fafafa"},
			missing:    []string{"#121212"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.systemDark, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestThemeCommand_UnknownPreference(t *testing.T) {
	_, err := run(t, true, "theme", "--theme", "sepia")
	assert.Error(t, err)
}
