package core

// Color is a hex colour string ("#rrggbb"). The empty string means the
// terminal default.
type Color string

// Fixed colours used by the play field.
const (
	ColorDefault    Color = ""
	ColorBackground Color = "#111111"
	ColorOutline    Color = "#000000"
	ColorFood       Color = "#ff0000"
	ColorGold       Color = "#ffd700"
	ColorSilver     Color = "#c0c0c0"
	ColorBronze     Color = "#cd7f32"
	ColorWhite      Color = "#ffffff"
	ColorPhosphor   Color = "#33ff33"
	ColorDim        Color = "#0b2b0b"
)
