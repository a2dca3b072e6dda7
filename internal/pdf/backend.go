// Package pdf replays card draw commands into a paginated PDF document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/uid0/openmakersuite/internal/cards"
)

// Backend owns one fpdf document per render. Not safe for concurrent use;
// create a fresh Backend per render call.
type Backend struct {
	doc *fpdf.Fpdf
}

func NewBackend(tpl cards.Template) *Backend {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: tpl.PageWidth, Ht: tpl.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	// A current font must be set before measuring strings.
	doc.SetFont("Helvetica", "", 12)
	return &Backend{doc: doc}
}

// Metrics exposes the document's Helvetica string measurement for the layout
// engine's word wrapping.
func (b *Backend) Metrics() cards.FontMetrics {
	return metrics{doc: b.doc}
}

type metrics struct {
	doc *fpdf.Fpdf
}

func (m metrics) StringWidth(s string, f cards.Font) float64 {
	m.doc.SetFont(f.Name, f.Style, f.Size)
	return m.doc.GetStringWidth(s)
}

// Write replays the pages into the document and returns the finished PDF
// bytes. The backend is spent afterwards.
func (b *Backend) Write(pages []cards.Page) ([]byte, error) {
	registered := map[string]bool{}
	for _, page := range pages {
		b.doc.AddPage()
		for _, cmd := range page {
			switch c := cmd.(type) {
			case cards.RectCommand:
				b.rect(c)
			case cards.TextCommand:
				b.text(c)
			case cards.ImageCommand:
				b.image(c, registered)
			}
		}
	}
	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Backend) rect(c cards.RectCommand) {
	style := ""
	if c.Stroke != nil {
		b.doc.SetDrawColor(int(c.Stroke.R), int(c.Stroke.G), int(c.Stroke.B))
		b.doc.SetLineWidth(c.LineWidth)
		style += "D"
	}
	if c.Fill != nil {
		b.doc.SetFillColor(int(c.Fill.R), int(c.Fill.G), int(c.Fill.B))
		style += "F"
	}
	if style == "" {
		return
	}
	if c.Radius > 0 {
		b.doc.RoundedRect(c.X, c.Y, c.W, c.H, c.Radius, "1234", style)
	} else {
		b.doc.Rect(c.X, c.Y, c.W, c.H, style)
	}
}

func (b *Backend) text(c cards.TextCommand) {
	b.doc.SetFont(c.Font.Name, c.Font.Style, c.Font.Size)
	b.doc.SetTextColor(int(c.Color.R), int(c.Color.G), int(c.Color.B))
	x := c.X
	if c.Centered {
		x -= b.doc.GetStringWidth(c.Text) / 2
	}
	b.doc.Text(x, c.Y, c.Text)
}

func (b *Backend) image(c cards.ImageCommand, registered map[string]bool) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	if !registered[c.Name] {
		b.doc.RegisterImageOptionsReader(c.Name, opts, bytes.NewReader(c.PNG))
		registered[c.Name] = true
	}
	b.doc.ImageOptions(c.Name, c.X, c.Y, c.W, c.H, false, opts, 0, "")
}
