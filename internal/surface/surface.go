package surface

// Color is an RGB565 color value as understood by ST7735-class display
// controllers.
type Color uint16

// Standard ST7735 palette.
const (
	Black   Color = 0x0000
	Blue    Color = 0x001F
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	White   Color = 0xFFFF
)

// Default geometry for a 160x128 ST7735 panel with a 6x8 pixel font.
const (
	// DefaultRows is the number of text rows on the panel.
	DefaultRows = 16
	// DefaultCols is the number of text columns on the panel.
	DefaultCols = 26
)

// Surface is a character-grid display.
//
// DrawText writes text starting at cell (col, row). When clean is true the
// pad+len(text) cells starting at col are first filled with bg, erasing
// whatever was there. pad cells of background-colored spaces are then written
// ahead of the text, which is how callers right-align a value against the
// edge of the grid.
//
// The bool results report whether the write reached the display; they carry
// no other meaning.
type Surface interface {
	Clear() bool
	DrawText(col, row int, text string, clean bool, fg, bg Color, pad int) bool
}
