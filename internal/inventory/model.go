// Package inventory holds the item records the card renderer feeds on.
package inventory

import (
	"strings"

	"github.com/google/uuid"
)

// Category groups items and carries the hex color used on printed cards.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Item is one stocked inventory entry.
type Item struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SKU             string    `json:"sku"`
	CurrentStock    int       `json:"current_stock"`
	MinimumStock    int       `json:"minimum_stock"`
	ReorderQuantity int       `json:"reorder_quantity"`
	AverageLeadTime int       `json:"average_lead_time"` // days, 0 when unknown
	ImagePath       string    `json:"image_path"`
	Category        *Category `json:"category,omitempty"`
}

// DesiredStock is the target stock level shown on cards: enough to cover the
// minimum plus one reorder, but never less than one reorder.
func (i Item) DesiredStock() int {
	return max(i.MinimumStock+i.ReorderQuantity, i.ReorderQuantity)
}

// ReorderURL builds the scan target encoded into an item's QR code.
func ReorderURL(baseURL string, id uuid.UUID) string {
	return strings.TrimRight(baseURL, "/") + "/scan/" + id.String()
}
