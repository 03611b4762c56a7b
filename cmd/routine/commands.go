package main

import (
	"fmt"
	"routineTracker/internal/config"
	"routineTracker/internal/shell"
	"routineTracker/internal/theme"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newRootCmd принимает детектор системной темы, чтобы тесты не зависели от терминала
func newRootCmd(systemDark func() bool) *cobra.Command {
	var configPath string
	var preference string

	rootCmd := &cobra.Command{
		Use:           "routine",
		Short:         "Routine tracker shell",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yml (default $ROUTINE_CONFIG or ./config.yml)")
	rootCmd.PersistentFlags().StringVarP(&preference, "theme", "t", "", "theme preference: light, dark or system")

	resolve := func() (theme.Theme, error) {
		cfg, err := config.Load(config.Path(configPath))
		if err != nil {
			return theme.Theme{}, err
		}

		pref := cfg.ThemePreference()
		if preference != "" {
			pref, err = theme.ParsePreference(preference)
			if err != nil {
				return theme.Theme{}, err
			}
		}

		// на терминале системная тема берётся из фона, а не из конфига
		dark := cfg.Theme.SystemDark
		if pref == theme.PreferenceSystem {
			dark = systemDark()
		}
		return theme.Select(pref, dark), nil
	}

	var width int
	screenCmd := &cobra.Command{
		Use:   "screen",
		Short: "Render the start screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolve()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shell.Render(th, width))
			return nil
		},
	}
	screenCmd.Flags().IntVarP(&width, "width", "w", shell.DefaultWidth, "screen width in cells")

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the selected palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolve()
			if err != nil {
				return err
			}
			printPalette(cmd, th)
			return nil
		},
	}

	rootCmd.AddCommand(screenCmd, themeCmd)
	return rootCmd
}

func printPalette(cmd *cobra.Command, th theme.Theme) {
	roles := th.Roles()
	names := make([]string, 0, len(roles))
	for role := range roles {
		names = append(names, role)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%s (roundness %d)", th.Name, th.Roundness))
	t.AppendHeader(table.Row{"Role", "Color", "Swatch"})

	for _, role := range names {
		c := roles[role]
		swatch := lipgloss.NewStyle().Background(c).Render("      ")
		t.AppendRow(table.Row{role, string(c), swatch})
	}
	t.Render()
}
