package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

func main() {
	if err := newRootCmd(lipgloss.HasDarkBackground).Execute(); err != nil {
		os.Exit(1)
	}
}
