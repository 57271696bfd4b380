package core

// Color is a semantic foreground color for a screen cell. The platform maps
// each value to a terminal color through the configured theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorYellow
	ColorGreen
	ColorWall
	ColorFloor
	ColorDestination
	ColorHUD
	ColorHighlight
)

// String returns the theme key for the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorWall:
		return "wall"
	case ColorFloor:
		return "floor"
	case ColorDestination:
		return "destination"
	case ColorHUD:
		return "hud"
	case ColorHighlight:
		return "highlight"
	default:
		return "default"
	}
}
