// Package render wires the layout engine to its collaborators: item records
// in, PDF bytes out.
package render

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uid0/openmakersuite/internal/cards"
	"github.com/uid0/openmakersuite/internal/inventory"
	"github.com/uid0/openmakersuite/internal/pdf"
	"github.com/uid0/openmakersuite/internal/storage"
)

// PhotoLoader resolves an item's image reference into an embeddable photo.
type PhotoLoader interface {
	Load(ref string) (*cards.Photo, error)
}

// Service renders inventory items to index-card PDFs.
type Service struct {
	Codes    cards.CodeProvider
	Photos   PhotoLoader
	Store    *storage.BlobStore
	BaseURL  string
	Template cards.Template
}

func NewService(codes cards.CodeProvider, photos PhotoLoader, store *storage.BlobStore, baseURL string, tpl cards.Template) *Service {
	return &Service{
		Codes:    codes,
		Photos:   photos,
		Store:    store,
		BaseURL:  baseURL,
		Template: tpl,
	}
}

// BuildContent resolves one item into read-only card content. Photo lookup
// failures degrade to a card without a photo zone.
func (s *Service) BuildContent(item inventory.Item) cards.CardContent {
	stats := []string{
		"Target: " + cards.Pluralize(item.DesiredStock(), "unit"),
		"Reorder: " + cards.Pluralize(item.ReorderQuantity, "unit"),
	}
	if item.AverageLeadTime > 0 {
		stats = append(stats, "Lead: "+cards.Pluralize(item.AverageLeadTime, "day"))
	}

	content := cards.CardContent{
		Title:       item.Name,
		StatLines:   stats,
		CodePayload: inventory.ReorderURL(s.BaseURL, item.ID),
	}
	if item.Category != nil {
		content.CategoryLabel = item.Category.Name
		content.CategoryColor = item.Category.Color
	}
	if item.ImagePath != "" && s.Photos != nil {
		photo, err := s.Photos.Load(item.ImagePath)
		if err != nil {
			log.WithError(err).WithField("item", item.ID).Warn("skipping item photo")
		} else {
			content.Photo = photo
		}
	}
	return content
}

// RenderDocument renders the items onto pages of the given template and
// returns PDF bytes.
func (s *Service) RenderDocument(tpl cards.Template, items []inventory.Item, variant cards.Variant) ([]byte, error) {
	if len(items) == 0 {
		return nil, cards.ErrNoItems
	}
	contents := make([]cards.CardContent, 0, len(items))
	for _, item := range items {
		contents = append(contents, s.BuildContent(item))
	}

	backend := pdf.NewBackend(tpl)
	engine := cards.NewEngine(s.Codes, backend.Metrics())
	pages, err := engine.RenderPages(tpl, contents, variant)
	if err != nil {
		return nil, err
	}
	return backend.Write(pages)
}

// RenderPreview renders a single item with the service's default template.
func (s *Service) RenderPreview(item inventory.Item, variant cards.Variant) ([]byte, error) {
	return s.RenderDocument(s.Template, []inventory.Item{item}, variant)
}

// RenderBatchToStorage renders items and persists the PDF in the blob store.
func (s *Service) RenderBatchToStorage(items []inventory.Item, filename string, variant cards.Variant) (storage.SavedFile, error) {
	name := storage.NormalizeFilename(filename, time.Now())
	if variant == cards.VariantBlank {
		name = strings.Replace(name, ".pdf", "_blank.pdf", 1)
	}
	data, err := s.RenderDocument(s.Template, items, variant)
	if err != nil {
		return storage.SavedFile{}, err
	}
	return s.Store.Save(name, data)
}

// PreviewPayload is the JSON body returned for single-card previews.
type PreviewPayload struct {
	ItemID      string `json:"item_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Preview     string `json:"preview"`
	CardType    string `json:"card_type"`
}

// BuildPreviewPayload renders a base64-encoded preview for quick display.
func (s *Service) BuildPreviewPayload(item inventory.Item, variant cards.Variant) (PreviewPayload, error) {
	data, err := s.RenderPreview(item, variant)
	if err != nil {
		return PreviewPayload{}, err
	}
	name := item.SKU
	if name == "" {
		name = item.ID.String()
	}
	return PreviewPayload{
		ItemID:      item.ID.String(),
		Filename:    fmt.Sprintf("%s_%s_preview.pdf", name, variant),
		ContentType: "application/pdf",
		Preview:     base64.StdEncoding.EncodeToString(data),
		CardType:    string(variant),
	}, nil
}
