package core

// Color is the foreground of a screen cell. The platform maps each value to
// a terminal color; the zero value leaves the terminal default.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorGreen              // snake body and tail
	ColorBrightGreen        // snake head
	ColorBrightRed          // food
	ColorYellow             // overlay frame
	ColorBrightYellow       // overlay title
	ColorBrightWhite        // status line
	ColorGray               // board border and separator
)
