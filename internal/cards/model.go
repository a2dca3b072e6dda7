package cards

// Variant selects how much of a card's content is rendered.
type Variant string

const (
	// VariantDetailed renders the full card: title, stats, photo, QR code,
	// CTA badge and category label.
	VariantDetailed Variant = "detailed"
	// VariantBlank renders only the centered QR code inside the card border.
	VariantBlank Variant = "blank"
)

// Photo is a decoded raster image ready for embedding. Width and Height are
// the intrinsic pixel dimensions; PNG holds the re-encoded bytes.
type Photo struct {
	PNG    []byte
	Width  int
	Height int
}

// CardContent is everything the layout engine needs to draw one card.
// It is resolved once at the item repository boundary and read-only during
// rendering.
type CardContent struct {
	Title         string
	StatLines     []string
	Photo         *Photo
	CodePayload   string
	CategoryLabel string
	CategoryColor string
}

// Font identifies a typeface for measurement and drawing. Style is "" for
// regular or "B" for bold, matching PDF core-font conventions.
type Font struct {
	Name  string
	Style string
	Size  float64
}

// FontMetrics measures rendered string widths in page units (points).
type FontMetrics interface {
	StringWidth(s string, f Font) float64
}

// CodeProvider turns a payload string into a scannable code raster (PNG).
type CodeProvider interface {
	Generate(payload string) ([]byte, error)
}
