package cards

// Draw commands are the engine's only output. Coordinates are points in the
// page coordinate system with the origin at the top-left corner and y
// increasing downward, matching the PDF backend.

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Gray  = RGB{128, 128, 128}
)

// Command is one drawing primitive on a page.
type Command interface {
	command()
}

// RectCommand draws a rectangle, optionally rounded, stroked and/or filled.
type RectCommand struct {
	X, Y, W, H float64
	Radius     float64
	LineWidth  float64
	Stroke     *RGB
	Fill       *RGB
}

// TextCommand draws a single line of text at a baseline position. When
// Centered is set, X is the horizontal center of the rendered string.
type TextCommand struct {
	X, Y     float64
	Text     string
	Font     Font
	Color    RGB
	Centered bool
}

// ImageCommand blits a raster image into the given box. Name must be stable
// for identical image bytes so backends can deduplicate registrations.
type ImageCommand struct {
	X, Y, W, H float64
	Name       string
	PNG        []byte
}

func (RectCommand) command()  {}
func (TextCommand) command()  {}
func (ImageCommand) command() {}

// Page is the ordered list of draw commands for one output page.
type Page []Command
