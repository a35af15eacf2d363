package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	canvasBG, _ = colorful.Hex("#1e1e22")

	chromeBG  = c("#141418")
	chromeFG  = c("#a0a0a8")
	accentFG  = c("#9a7bff")
	warningFG = c("#e6403a")

	statusStyle = lipgloss.NewStyle().Background(chromeBG).Foreground(chromeFG)
	accentStyle = lipgloss.NewStyle().Background(chromeBG).Foreground(accentFG).Bold(true)
	hintStyle   = lipgloss.NewStyle().Background(chromeBG).Foreground(warningFG)

	menuTitleStyle = lipgloss.NewStyle().
			Background(c("#3a3a44")).
			Foreground(c("#ffffff")).
			Bold(true)
	menuItemStyle = lipgloss.NewStyle().
			Background(c("#2a2a30")).
			Foreground(c("#d0d0d8"))
	menuSelectedStyle = lipgloss.NewStyle().
				Background(c("#6633ff")).
				Foreground(c("#ffffff"))

	tooltipStyle = lipgloss.NewStyle().
			Background(c("#f0e6b4")).
			Foreground(c("#202020")).
			Padding(0, 1)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentFG).
			Background(chromeBG).
			Padding(1, 2)
)
