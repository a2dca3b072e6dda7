package cards

import "fmt"

// Inch is one inch expressed in points, the page unit used throughout.
const Inch = 72.0

// Template is the fixed geometric configuration for a batch render. Cards
// are stacked vertically down the page, CardsPerPage per sheet.
type Template struct {
	Name string

	PageWidth  float64
	PageHeight float64
	CardWidth  float64
	CardHeight float64

	CardsPerPage int
	CardGap      float64

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	// Padding is the inner margin between the card border and its content.
	Padding float64

	CodeSize       float64
	ImageMaxWidth  float64
	ImageMaxHeight float64

	// TitleMaxLines caps the wrapped title; excess lines are dropped.
	TitleMaxLines int

	// CallToAction is the badge text; lines are separated by "\n".
	CallToAction string
}

const defaultCallToAction = "Scan to notify Logistics\nit's time to reorder me!"

// Avery5388 lays three 5"x3" cards down a letter page, matching the
// pre-perforated Avery Template 5388 stock. No cutting marks are drawn.
func Avery5388() Template {
	return Template{
		Name:           "avery-5388",
		PageWidth:      8.5 * Inch,
		PageHeight:     11 * Inch,
		CardWidth:      5 * Inch,
		CardHeight:     3 * Inch,
		CardsPerPage:   3,
		CardGap:        0.5 * Inch,
		MarginTop:      1.0 * Inch,
		MarginBottom:   1.0 * Inch,
		MarginLeft:     1.75 * Inch,
		MarginRight:    1.75 * Inch,
		Padding:        0.15 * Inch,
		CodeSize:       0.8 * Inch,
		ImageMaxWidth:  2.0 * Inch,
		ImageMaxHeight: 2.0 * Inch,
		TitleMaxLines:  2,
		CallToAction:   defaultCallToAction,
	}
}

// SingleCard renders one 5"x3" card per page, page sized to the card. Used
// for previews and one-off prints on plain index stock.
func SingleCard() Template {
	return Template{
		Name:           "single-5x3",
		PageWidth:      5 * Inch,
		PageHeight:     3 * Inch,
		CardWidth:      5 * Inch,
		CardHeight:     3 * Inch,
		CardsPerPage:   1,
		CardGap:        0,
		MarginTop:      0,
		MarginBottom:   0,
		MarginLeft:     0,
		MarginRight:    0,
		Padding:        0.15 * Inch,
		CodeSize:       0.8 * Inch,
		ImageMaxWidth:  2.0 * Inch,
		ImageMaxHeight: 2.0 * Inch,
		TitleMaxLines:  2,
		CallToAction:   defaultCallToAction,
	}
}

// ByName returns a preset template. Unknown names fall back to Avery5388.
func ByName(name string) Template {
	switch name {
	case "single-5x3":
		return SingleCard()
	default:
		return Avery5388()
	}
}

// Validate checks that the template geometry can place CardsPerPage
// non-overlapping cards inside the page margins.
func (t Template) Validate() error {
	if t.CardsPerPage < 1 {
		return fmt.Errorf("%w: cards per page must be >= 1", ErrBadTemplate)
	}
	if t.CardWidth <= 0 || t.CardHeight <= 0 || t.PageWidth <= 0 || t.PageHeight <= 0 {
		return fmt.Errorf("%w: non-positive dimensions", ErrBadTemplate)
	}
	if t.CardWidth > t.PageWidth-t.MarginLeft-t.MarginRight {
		return fmt.Errorf("%w: card wider than printable area", ErrBadTemplate)
	}
	if _, err := t.cardGap(); err != nil {
		return err
	}
	if t.CodeSize > t.CardWidth || t.CodeSize > t.CardHeight {
		return fmt.Errorf("%w: code larger than card", ErrBadTemplate)
	}
	return nil
}

// cardGap returns the vertical gap between stacked cards, shrinking the
// configured gap when needed so the full column still fits the margins.
func (t Template) cardGap() (float64, error) {
	available := t.PageHeight - t.MarginTop - t.MarginBottom
	cardsHeight := float64(t.CardsPerPage) * t.CardHeight
	if t.CardsPerPage == 1 {
		if cardsHeight > available {
			return 0, fmt.Errorf("%w: card taller than printable area", ErrBadTemplate)
		}
		return 0, nil
	}
	gaps := float64(t.CardsPerPage - 1)
	if cardsHeight+gaps*t.CardGap <= available {
		return t.CardGap, nil
	}
	adjusted := (available - cardsHeight) / gaps
	if adjusted < 0 {
		return 0, fmt.Errorf("%w: %d cards do not fit the page column", ErrBadTemplate, t.CardsPerPage)
	}
	return adjusted, nil
}

// CardOrigin returns the top-left corner of card i (0-based) on its page.
func (t Template) CardOrigin(i int) (x, y float64) {
	gap, _ := t.cardGap()
	x = t.MarginLeft
	y = t.MarginTop + float64(i)*(t.CardHeight+gap)
	return x, y
}
