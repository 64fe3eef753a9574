package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/clave/rhythm"
)

const (
	primaryHex  = "#FF5F87"
	strongHex   = "#FFAF00"
	ordinaryHex = "#5FAFFF"
	restHex     = "#303030"
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	selected lipgloss.Style
	spinner  lipgloss.Style

	// lit is used for the beat being played, dim for the rest of the bar
	lit map[rhythm.Accent]lipgloss.Style
	dim map[rhythm.Accent]lipgloss.Style
}

func newStyles() styles {
	rest := mustHex(restHex)
	accents := map[rhythm.Accent]colorful.Color{
		rhythm.AccentPrimary:  mustHex(primaryHex),
		rhythm.AccentStrong:   mustHex(strongHex),
		rhythm.AccentOrdinary: mustHex(ordinaryHex),
	}

	s := styles{
		app:      lipgloss.NewStyle().Margin(1, 2, 0, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(primaryHex)),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(strongHex)),
		spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		lit:      map[rhythm.Accent]lipgloss.Style{},
		dim:      map[rhythm.Accent]lipgloss.Style{},
	}

	for accent, c := range accents {
		cell := lipgloss.NewStyle().Padding(0, 1).Bold(true)
		s.lit[accent] = cell.Copy().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(c.Hex()))
		s.dim[accent] = cell.Copy().
			Foreground(lipgloss.Color(c.BlendLab(rest, 0.6).Clamped().Hex()))
	}
	return s
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
