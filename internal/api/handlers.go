package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/uid0/openmakersuite/internal/cards"
	imagepkg "github.com/uid0/openmakersuite/internal/image"
	"github.com/uid0/openmakersuite/internal/inventory"
	"github.com/uid0/openmakersuite/internal/render"
)

// Handlers bundles the collaborators the HTTP layer needs.
type Handlers struct {
	Svc  *render.Service
	Repo inventory.Repository
	QR   *imagepkg.QRProvider
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func variantFor(blank bool) cards.Variant {
	if blank {
		return cards.VariantBlank
	}
	return cards.VariantDetailed
}

// previewHandler returns a base64-encoded single-card PDF preview.
func (h *Handlers) previewHandler(c *gin.Context) {
	var req struct {
		ItemID    string `json:"item_id" binding:"required"`
		BlankCard bool   `json:"blank_card"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := uuid.Parse(req.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id must be a UUID"})
		return
	}
	item, err := h.Repo.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	payload, err := h.Svc.BuildPreviewPayload(item, variantFor(req.BlankCard))
	if err != nil {
		log.WithError(err).Error("preview render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payload)
}

// batchHandler renders cards for the requested items, in request order, and
// persists the PDF to the blob store.
func (h *Handlers) batchHandler(c *gin.Context) {
	var req struct {
		ItemIDs    []string `json:"item_ids" binding:"required"`
		Filename   string   `json:"filename"`
		BlankCards bool     `json:"blank_cards"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ItemIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_ids must not be empty"})
		return
	}

	items := make([]inventory.Item, 0, len(req.ItemIDs))
	var missing []string
	for _, raw := range req.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_ids must be UUIDs"})
			return
		}
		item, err := h.Repo.Get(id)
		if err != nil {
			if errors.Is(err, inventory.ErrNotFound) {
				missing = append(missing, raw)
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		items = append(items, item)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		c.JSON(http.StatusNotFound, gin.H{
			"detail":      "Some requested inventory items were not found.",
			"missing_ids": missing,
		})
		return
	}

	variant := variantFor(req.BlankCards)
	generated, err := h.Svc.RenderBatchToStorage(items, req.Filename, variant)
	if err != nil {
		log.WithError(err).Error("batch render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"file_path":     generated.Path,
		"file_url":      generated.URL,
		"absolute_path": generated.AbsolutePath,
		"count":         len(items),
		"card_type":     string(variant),
	})
}

// qrHandler returns a PNG of a QR code for the "text" query param.
func (h *Handlers) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query param is required"})
		return
	}
	provider := *h.QR
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil && v > 0 {
			provider.Size = v
		}
	}
	b, err := provider.Generate(text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
