package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/oh-lucy/themegen/internal/color"
	"github.com/oh-lucy/themegen/internal/palettes"
)

// Styles are the lipgloss styles used for human-readable output, derived
// from a palette's colors.
type Styles struct {
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// BuildStyles converts palette colors into styles. Missing or unparseable
// keys leave the style uncolored.
func BuildStyles(p *palettes.Palette) Styles {
	fg := func(key string) lipgloss.Style {
		style := lipgloss.NewStyle()
		if p == nil {
			return style
		}
		value, ok := p.Colors[key]
		if !ok {
			return style
		}
		c, err := color.Parse(value)
		if err != nil {
			return style
		}
		return style.Foreground(lipgloss.Color(c.HexRGB()))
	}

	return Styles{
		Title:  fg("fg").Bold(true),
		Text:   fg("fg"),
		Muted:  fg("fg_muted"),
		Accent: fg("purple"),
	}
}

// swatch renders a block filled with value. Alpha is dropped because
// terminals cannot show it.
func swatch(value string) string {
	c, err := color.Parse(value)
	if err != nil {
		return "   "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.HexRGB())).Render("   ")
}
