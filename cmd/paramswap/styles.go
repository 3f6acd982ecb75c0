package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	okColor     = lipgloss.Color("#00AA00")
	warnColor   = lipgloss.Color("#FFA500")
	errColor    = lipgloss.Color("#A40000")
	mutedColor  = lipgloss.Color("#888888")
	strongColor = lipgloss.Color("#FFFFFF")
)

var (
	okMark = lipgloss.NewStyle().
		Bold(true).
		Foreground(okColor)

	badMark = lipgloss.NewStyle().
		Bold(true).
		Foreground(errColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(strongColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warnColor)

	translatedStyle = lipgloss.NewStyle().Foreground(okColor)
	quantizedStyle  = lipgloss.NewStyle().Foreground(warnColor)
	defaultedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	droppedStyle    = lipgloss.NewStyle().Foreground(errColor)
)

// printError prints an error message to stderr.
func printError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), message)
}
