package ui

import (
	"algolab/internal/algorithms"
	"algolab/internal/insight"

	"github.com/charmbracelet/lipgloss"
)

// This file centralizes the lipgloss styles used across the TUI.

var (
	// Algorithm colours, shared by the chart, table and visualizer.
	iterativeColor = lipgloss.Color("#22C55E") // Green
	recursiveColor = lipgloss.Color("#A855F7") // Purple
	sortColor      = lipgloss.Color("#F59E0B") // Amber
	brandColor     = lipgloss.Color("#7D56F4")

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(brandColor).
			Bold(true).
			Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")). // Light purple
				Bold(true).
				MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	// Visualizer cells
	cellStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	frameStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// KindColor returns the colour associated with an algorithm.
func KindColor(k algorithms.Kind) lipgloss.Color {
	switch k {
	case algorithms.Recursive:
		return recursiveColor
	case algorithms.Sort:
		return sortColor
	default:
		return iterativeColor
	}
}

func kindStyle(k algorithms.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(KindColor(k))
}

func activeCellStyle(k algorithms.Kind) lipgloss.Style {
	return cellStyle.
		BorderForeground(KindColor(k)).
		Foreground(lipgloss.Color("#FFF")).
		Background(KindColor(k)).
		Bold(true)
}

func severityStyle(s insight.Severity) lipgloss.Style {
	switch s {
	case insight.Success:
		return lipgloss.NewStyle().Foreground(iterativeColor).Bold(true)
	case insight.Warning:
		return lipgloss.NewStyle().Foreground(sortColor).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	}
}

func confidenceStyle(l insight.Level) lipgloss.Style {
	switch l {
	case insight.High:
		return lipgloss.NewStyle().Foreground(iterativeColor)
	case insight.Medium:
		return lipgloss.NewStyle().Foreground(sortColor)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	}
}
