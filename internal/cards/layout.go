package cards

import (
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

var (
	// ErrNoItems is returned when a render is requested with no content.
	ErrNoItems = errors.New("at least one item is required to render index cards")
	// ErrBadTemplate is returned for template geometry that cannot place
	// its cards without overlap.
	ErrBadTemplate = errors.New("invalid card template geometry")
)

var (
	titleFont = Font{Name: "Helvetica", Style: "B", Size: 16}
	statFont  = Font{Name: "Helvetica", Style: "B", Size: 11}
	ctaFont   = Font{Name: "Helvetica", Style: "B", Size: 8}
	labelFont = Font{Name: "Helvetica", Size: 8}
)

const (
	titleLeading = 18.0
	statLeading  = 14.0
	ctaLineStep  = 10.0
	ctaPadding   = 3.0
	borderRadius = 12.0
)

var (
	titleColor   = RGB{0x1F, 0x29, 0x37}
	statColor    = RGB{0x11, 0x18, 0x27}
	defaultBadge = RGB{0x25, 0x63, 0xEB}
)

// Engine lays out cards onto pages of draw commands. It holds no mutable
// state between calls; concurrent renders need no coordination.
type Engine struct {
	codes   CodeProvider
	metrics FontMetrics
}

func NewEngine(codes CodeProvider, metrics FontMetrics) *Engine {
	return &Engine{codes: codes, metrics: metrics}
}

// RenderPages partitions contents into groups of CardsPerPage, preserving
// input order, and renders one page per group. It is a pure function of its
// inputs aside from code-image generation, whose failures propagate.
func (e *Engine) RenderPages(tpl Template, contents []CardContent, variant Variant) ([]Page, error) {
	if len(contents) == 0 {
		return nil, ErrNoItems
	}
	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	pages := make([]Page, 0, (len(contents)+tpl.CardsPerPage-1)/tpl.CardsPerPage)
	for start := 0; start < len(contents); start += tpl.CardsPerPage {
		end := min(start+tpl.CardsPerPage, len(contents))
		var page Page
		for i, content := range contents[start:end] {
			x, y := tpl.CardOrigin(i)
			cmds, err := e.RenderCard(tpl, content, variant, x, y)
			if err != nil {
				return nil, err
			}
			page = append(page, cmds...)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// RenderCard renders a single card with its top-left corner at (ox, oy).
func (e *Engine) RenderCard(tpl Template, c CardContent, variant Variant, ox, oy float64) ([]Command, error) {
	border := Black
	cmds := []Command{RectCommand{
		X: ox, Y: oy, W: tpl.CardWidth, H: tpl.CardHeight,
		Radius: borderRadius, LineWidth: 1, Stroke: &border,
	}}

	code, err := e.codes.Generate(c.CodePayload)
	if err != nil {
		return nil, fmt.Errorf("generating code image: %w", err)
	}
	codeName := fmt.Sprintf("code-%08x", crc32.ChecksumIEEE(code))

	if variant == VariantBlank {
		cmds = append(cmds, ImageCommand{
			X:    ox + (tpl.CardWidth-tpl.CodeSize)/2,
			Y:    oy + (tpl.CardHeight-tpl.CodeSize)/2,
			W:    tpl.CodeSize,
			H:    tpl.CodeSize,
			Name: codeName,
			PNG:  code,
		})
		return cmds, nil
	}

	innerX := ox + tpl.Padding
	innerTop := oy + tpl.Padding
	innerBottom := oy + tpl.CardHeight - tpl.Padding
	availWidth := tpl.CardWidth - 2*tpl.Padding

	// Title spans the full inner width; excess lines are dropped silently.
	titleLines := Wrap(c.Title, availWidth, titleFont, e.metrics)
	if tpl.TitleMaxLines > 0 && len(titleLines) > tpl.TitleMaxLines {
		titleLines = titleLines[:tpl.TitleMaxLines]
	}
	y := innerTop
	for _, line := range titleLines {
		y += titleLeading
		cmds = append(cmds, TextCommand{X: innerX, Y: y, Text: line, Font: titleFont, Color: titleColor})
	}
	cursor := innerTop + float64(len(titleLines))*titleLeading + 0.3*Inch

	// Left section holds stats and the photo, right section the code and
	// CTA badge.
	leftX := innerX
	leftW := tpl.CardWidth * 0.6
	rightX := innerX + leftW
	rightW := tpl.CardWidth * 0.4

	statsBottom := cursor + 0.1*Inch
	maxStatWidth := leftW - 0.1*Inch
statLoop:
	for _, line := range c.StatLines {
		if line == "" {
			continue
		}
		for _, frag := range Wrap(line, maxStatWidth, statFont, e.metrics) {
			if statsBottom+statLeading > innerBottom {
				break statLoop
			}
			statsBottom += statLeading
			cmds = append(cmds, TextCommand{X: leftX, Y: statsBottom, Text: frag, Font: statFont, Color: statColor})
		}
	}

	cmds = e.appendPhoto(cmds, tpl, c, leftX, leftW, statsBottom+0.1*Inch, innerBottom)

	// The colored category drives three decisions: a frame around the code
	// for light colors, the badge fill, and the label color for dark ones.
	catColor, catOK := ParseColor(c.CategoryColor)
	catLight := catOK && IsLight(catColor)

	ctaLines := strings.Split(tpl.CallToAction, "\n")
	boxH := float64(len(ctaLines))*ctaLineStep + 2*ctaPadding
	boxW := rightW - 0.2*Inch
	categorySpace := 0.1 * Inch
	if c.CategoryLabel != "" {
		categorySpace = 0.25 * Inch
	}

	qrTop := cursor
	boxTop := qrTop + tpl.CodeSize + 0.1*Inch
	if tpl.CodeSize+0.1*Inch+boxH > innerBottom-categorySpace-cursor {
		// Tight fit: nudge the code up and close the gap.
		qrTop = cursor - 0.05*Inch
		boxTop = qrTop + tpl.CodeSize + 0.05*Inch
	}
	if maxBoxTop := innerBottom - categorySpace - boxH; boxTop > maxBoxTop {
		boxTop = maxBoxTop
	}

	qrX := rightX + (rightW-tpl.CodeSize)/2
	if catLight {
		framePad := 0.05 * Inch
		frame := catColor
		cmds = append(cmds, RectCommand{
			X: qrX - framePad, Y: qrTop - framePad,
			W: tpl.CodeSize + 2*framePad, H: tpl.CodeSize + 2*framePad,
			LineWidth: 2, Stroke: &frame,
		})
	}
	cmds = append(cmds, ImageCommand{
		X: qrX, Y: qrTop, W: tpl.CodeSize, H: tpl.CodeSize,
		Name: codeName, PNG: code,
	})

	badge := ParseColorOrDefault(c.CategoryColor, defaultBadge)
	cmds = append(cmds, RectCommand{
		X: rightX + 0.05*Inch, Y: boxTop, W: boxW, H: boxH,
		Radius: 3, Fill: &badge,
	})
	ctaColorInput := c.CategoryColor
	if ctaColorInput == "" {
		ctaColorInput = "#2563eb"
	}
	ctaColor := ChooseTextColor(ctaColorInput)
	baseline := boxTop + ctaPadding + ctaFont.Size
	for _, line := range ctaLines {
		cmds = append(cmds, TextCommand{
			X: rightX + rightW/2, Y: baseline,
			Text: line, Font: ctaFont, Color: ctaColor, Centered: true,
		})
		baseline += ctaLineStep
	}

	if c.CategoryLabel != "" {
		labelColor := Gray
		if catOK && !catLight {
			labelColor = catColor
		}
		cmds = append(cmds, TextCommand{
			X: innerX, Y: innerBottom - 0.05*Inch,
			Text: "Category: " + c.CategoryLabel, Font: labelFont, Color: labelColor,
		})
	}

	return cmds, nil
}

// appendPhoto fits the photo under the stats column, preserving aspect ratio
// and never upscaling past 1:1. Missing photos and exhausted space both skip
// the zone.
func (e *Engine) appendPhoto(cmds []Command, tpl Template, c CardContent, leftX, leftW, top, innerBottom float64) []Command {
	if c.Photo == nil || c.Photo.Width <= 0 || c.Photo.Height <= 0 {
		return cmds
	}
	availH := innerBottom - 0.3*Inch - top
	if availH <= 0 {
		return cmds
	}
	maxW := min(tpl.ImageMaxWidth, leftW-0.2*Inch)
	maxH := min(tpl.ImageMaxHeight, availH)
	scale := min(maxW/float64(c.Photo.Width), maxH/float64(c.Photo.Height), 1)
	drawW := float64(c.Photo.Width) * scale
	drawH := float64(c.Photo.Height) * scale
	return append(cmds, ImageCommand{
		X:    leftX + (leftW-drawW)/2,
		Y:    top,
		W:    drawW,
		H:    drawH,
		Name: fmt.Sprintf("photo-%08x", crc32.ChecksumIEEE(c.Photo.PNG)),
		PNG:  c.Photo.PNG,
	})
}
