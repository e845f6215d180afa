package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kwsdr/gridmenu/internal/surface"
)

// Styles for the chrome around the simulated panel.
var (
	// PanelStyle frames the character grid like the bezel of the TFT.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	// TitleStyle is for the simulator header line.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	// StatusStyle is for the mode/status line under the panel.
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// EditingStyle highlights the status line while a value is edited.
	EditingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)
)

// termColor converts an RGB565 panel color to a truecolor lipgloss color.
func termColor(c surface.Color) lipgloss.Color {
	r := (uint32(c) >> 11) & 0x1F
	g := (uint32(c) >> 5) & 0x3F
	b := uint32(c) & 0x1F
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r<<3, g<<2, b<<3))
}
