// Package styles holds the color palette for interactive prompts.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors for prompt rendering.
var (
	Primary color.Color = lipgloss.Color("62")  // cyan/teal (titles)
	Accent  color.Color = lipgloss.Color("212") // pink/magenta (selected items)
	Muted   color.Color = lipgloss.Color("240") // dark gray (descriptions)
)
