package window

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var (
	background = colornames.Midnightblue
	actorColor = colornames.Crimson
	eyeColor   = colornames.White
)

// palette maps level colours to RGBA. Unknown colours fall back to
// colornames.Seagreen, the ground colour of the prototype.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.Seagreen,
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Seagreen,
	core.ColorYellow:        colornames.Goldenrod,
	core.ColorBlue:          colornames.Steelblue,
	core.ColorMagenta:       colornames.Mediumorchid,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.Gainsboro,
	core.ColorBrightRed:     colornames.Tomato,
	core.ColorBrightGreen:   colornames.Limegreen,
	core.ColorBrightYellow:  colornames.Gold,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Violet,
	core.ColorBrightCyan:    colornames.Aqua,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Darkorange,
	core.ColorGray:          colornames.Slategray,
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.Seagreen
}
