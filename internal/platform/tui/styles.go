package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ferrovax/huematch/internal/colorspace"
)

// Shared styles for the game views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	hiddenSwatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
)

// swatchWidth is the width of a rendered color block in cells.
const swatchWidth = 18

// renderSwatch draws a solid block of the given color. The hex caption is
// only shown when revealHex is set: the target swatch keeps its code
// hidden so the player cannot just type the answer into the hex field.
func renderSwatch(c colorspace.Color, label string, revealHex bool) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", swatchWidth))

	caption := hiddenSwatchStyle.Render("???")
	if revealHex {
		caption = valueStyle.Render(c.Hex())
	}

	lines := []string{
		labelStyle.Render(label),
		block,
		block,
		block,
		caption,
	}
	return strings.Join(lines, "\n")
}

// renderHiddenSwatch draws a placeholder block for blind mode.
func renderHiddenSwatch(label string) string {
	row := hiddenSwatchStyle.Render(strings.Repeat("░", swatchWidth))
	lines := []string{
		labelStyle.Render(label),
		row,
		row,
		row,
		hiddenSwatchStyle.Render("???"),
	}
	return strings.Join(lines, "\n")
}

// channelNames label the slider rows.
var channelNames = [colorspace.ChannelCount]string{"R", "G", "B"}

// channelBarStyles color each slider's filled portion.
var channelBarStyles = [colorspace.ChannelCount]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// sliderWidth is the bar length of a channel slider in cells.
const sliderWidth = 32

// renderSlider draws one channel slider row.
func renderSlider(ch int, value uint8, selected bool) string {
	filled := int(value) * sliderWidth / 255
	bar := channelBarStyles[ch].Render(strings.Repeat("█", filled)) +
		labelStyle.Render(strings.Repeat("─", sliderWidth-filled))

	name := channelNames[ch]
	marker := "  "
	if selected {
		marker = selectedStyle.Render("> ")
		name = selectedStyle.Render(name)
	} else {
		name = labelStyle.Render(name)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		marker,
		name,
		" ",
		bar,
		" ",
		valueStyle.Render(fmt.Sprintf("%3d", value)),
	)
}
